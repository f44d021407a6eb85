package domain

// Passenger is a registered rider account.
type Passenger struct {
	ID           int64  `json:"passenger_id" bson:"_id"`
	FirstName    string `json:"first_name" bson:"first_name"`
	LastName     string `json:"last_name" bson:"last_name"`
	MiddleName   string `json:"middle_name,omitempty" bson:"middle_name,omitempty"`
	Username     string `json:"username" bson:"username"`
	DateOfBirth  Time   `json:"date_of_birth" bson:"date_of_birth"`
	PhoneNumber  string `json:"phone_number" bson:"phone_number"`
	Email        string `json:"email" bson:"email"`
	PasswordHash string `json:"password_hash" bson:"password_hash"`
	RegisteredAt Time   `json:"registered_at" bson:"registered_at"`
}

func (p Passenger) Key() int64 { return p.ID }

func (p Passenger) WithKey(id int64) Passenger {
	p.ID = id
	return p
}

func (p Passenger) FullName() string { return joinName(p.FirstName, p.MiddleName, p.LastName) }

// PassengerInput is the create/update payload for passengers. The API hashes
// Password into PasswordHash before Apply runs.
type PassengerInput struct {
	FirstName    string `json:"first_name" validate:"required"`
	LastName     string `json:"last_name" validate:"required"`
	MiddleName   string `json:"middle_name,omitempty"`
	Username     string `json:"username" validate:"required,min=3,max=50"`
	DateOfBirth  Time   `json:"date_of_birth"`
	PhoneNumber  string `json:"phone_number" validate:"required,max=20"`
	Email        string `json:"email" validate:"required,email"`
	Password     string `json:"password,omitempty" validate:"omitempty,min=8"`
	PasswordHash string `json:"-"`
}

func (in PassengerInput) Apply(current Passenger, now Time) Passenger {
	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.MiddleName = in.MiddleName
	current.Username = in.Username
	current.DateOfBirth = in.DateOfBirth
	current.PhoneNumber = in.PhoneNumber
	current.Email = in.Email
	if in.PasswordHash != "" {
		current.PasswordHash = in.PasswordHash
	}
	if current.RegisteredAt.IsZero() {
		current.RegisteredAt = now
	}
	return current
}
