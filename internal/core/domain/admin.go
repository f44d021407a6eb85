package domain

// AdminRole is the privilege level of a back-office account.
type AdminRole string

const (
	RoleSuperAdmin AdminRole = "super_admin"
	RoleAdmin      AdminRole = "admin"
	RoleModerator  AdminRole = "moderator"
)

// Permission names an action on the dashboard API that depends on role.
type Permission string

const (
	PermManageAdmins  Permission = "admins:write"
	PermManageCatalog Permission = "catalog:write"
)

var rolePermissions = map[AdminRole][]Permission{
	RoleSuperAdmin: {PermManageAdmins, PermManageCatalog},
	RoleAdmin:      {PermManageAdmins, PermManageCatalog},
	RoleModerator:  {PermManageCatalog},
}

// Can reports whether r grants p. Unknown roles grant nothing.
func (r AdminRole) Can(p Permission) bool {
	for _, granted := range rolePermissions[r] {
		if granted == p {
			return true
		}
	}
	return false
}

// Admin is a back-office account as returned by the dashboard API.
type Admin struct {
	ID           int64     `json:"admin_id" bson:"_id"`
	Username     string    `json:"username" bson:"username"`
	FirstName    string    `json:"first_name" bson:"first_name"`
	LastName     string    `json:"last_name" bson:"last_name"`
	Email        string    `json:"email" bson:"email"`
	PhoneNumber  string    `json:"phone_number,omitempty" bson:"phone_number,omitempty"`
	Role         AdminRole `json:"role" bson:"role"`
	IsActive     int       `json:"is_active" bson:"is_active"`
	RegisteredAt Time      `json:"registered_at" bson:"registered_at"`
	LastLoginAt  *Time     `json:"last_login_at,omitempty" bson:"last_login_at,omitempty"`
}

func (a Admin) Key() int64 { return a.ID }

func (a Admin) WithKey(id int64) Admin {
	a.ID = id
	return a
}

// FullName joins first and last name.
func (a Admin) FullName() string { return joinName(a.FirstName, a.LastName) }

// AdminInput is the create/update payload for admins. Password is only
// honoured by the API when non-empty.
type AdminInput struct {
	Username    string    `json:"username" form:"username" validate:"required,min=3,max=50"`
	FirstName   string    `json:"first_name" form:"first_name" validate:"required"`
	LastName    string    `json:"last_name" form:"last_name" validate:"required"`
	Email       string    `json:"email" form:"email" validate:"required,email"`
	PhoneNumber string    `json:"phone_number,omitempty" form:"phone_number" validate:"omitempty,max=20"`
	Role        AdminRole `json:"role" form:"role" validate:"required,oneof=super_admin admin moderator"`
	IsActive    int       `json:"is_active" form:"is_active" validate:"min=0,max=2"`
	Password    string    `json:"password,omitempty" form:"password" validate:"omitempty,min=8"`
}

func (in AdminInput) Apply(current Admin, now Time) Admin {
	current.Username = in.Username
	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.Email = in.Email
	current.PhoneNumber = in.PhoneNumber
	current.Role = in.Role
	current.IsActive = in.IsActive
	if current.RegisteredAt.IsZero() {
		current.RegisteredAt = now
	}
	return current
}

// Credential is the login secret stored for an admin by the API.
type Credential struct {
	AdminID      int64  `json:"admin_id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// LoginResponse is the body returned by POST /auth/login.
type LoginResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Token   string `json:"token,omitempty"`
	Admin   *Admin `json:"admin,omitempty"`
}

// CurrentAdminResponse is the body returned by GET /auth/me.
type CurrentAdminResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Admin   *Admin `json:"admin,omitempty"`
}
