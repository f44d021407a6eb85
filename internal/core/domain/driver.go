package domain

import "strings"

type LicenseStatus string

const (
	LicenseActive    LicenseStatus = "active"
	LicenseExpired   LicenseStatus = "expired"
	LicenseSuspended LicenseStatus = "suspended"
	LicenseRevoked   LicenseStatus = "revoked"
)

type VehicleOwnership string

const (
	OwnershipOwned   VehicleOwnership = "owned"
	OwnershipRented  VehicleOwnership = "rented"
	OwnershipCompany VehicleOwnership = "company"
	OwnershipOther   VehicleOwnership = "other"
)

// Driver is a registered driver with licence and vehicle details.
type Driver struct {
	ID                    int64            `json:"driver_id" bson:"_id"`
	FirstName             string           `json:"first_name" bson:"first_name"`
	LastName              string           `json:"last_name" bson:"last_name"`
	MiddleName            string           `json:"middle_name,omitempty" bson:"middle_name,omitempty"`
	DateOfBirth           Time             `json:"date_of_birth" bson:"date_of_birth"`
	AddressRegion         string           `json:"address_region" bson:"address_region"`
	AddressProvince       string           `json:"address_province" bson:"address_province"`
	AddressCity           string           `json:"address_city" bson:"address_city"`
	AddressBarangay       string           `json:"address_barangay" bson:"address_barangay"`
	AddressStreet         string           `json:"address_street" bson:"address_street"`
	PhoneNumber           string           `json:"phone_number" bson:"phone_number"`
	LicenseNumber         string           `json:"license_number" bson:"license_number"`
	LicenseExpirationDate Time             `json:"license_expiration_date" bson:"license_expiration_date"`
	LicenseStatus         LicenseStatus    `json:"license_status" bson:"license_status"`
	VehicleOwnership      VehicleOwnership `json:"vehicle_ownership" bson:"vehicle_ownership"`
	VehiclePlateNumber    string           `json:"vehicle_plate_number" bson:"vehicle_plate_number"`
	QRCode                string           `json:"qr_code" bson:"qr_code"`
	RegisteredAt          Time             `json:"registered_at" bson:"registered_at"`
}

func (d Driver) Key() int64 { return d.ID }

func (d Driver) WithKey(id int64) Driver {
	d.ID = id
	return d
}

func (d Driver) FullName() string { return joinName(d.FirstName, d.MiddleName, d.LastName) }

// Address renders the address parts from street to region.
func (d Driver) Address() string {
	return joinNonEmpty(", ", d.AddressStreet, d.AddressBarangay, d.AddressCity, d.AddressProvince, d.AddressRegion)
}

// DriverInput is the create/update payload for drivers.
type DriverInput struct {
	FirstName             string           `json:"first_name" validate:"required"`
	LastName              string           `json:"last_name" validate:"required"`
	MiddleName            string           `json:"middle_name,omitempty"`
	DateOfBirth           Time             `json:"date_of_birth"`
	AddressRegion         string           `json:"address_region" validate:"required"`
	AddressProvince       string           `json:"address_province" validate:"required"`
	AddressCity           string           `json:"address_city" validate:"required"`
	AddressBarangay       string           `json:"address_barangay" validate:"required"`
	AddressStreet         string           `json:"address_street"`
	PhoneNumber           string           `json:"phone_number" validate:"required,max=20"`
	LicenseNumber         string           `json:"license_number" validate:"required"`
	LicenseExpirationDate Time             `json:"license_expiration_date"`
	LicenseStatus         LicenseStatus    `json:"license_status" validate:"required,oneof=active expired suspended revoked"`
	VehicleOwnership      VehicleOwnership `json:"vehicle_ownership" validate:"required,oneof=owned rented company other"`
	VehiclePlateNumber    string           `json:"vehicle_plate_number" validate:"required"`
	QRCode                string           `json:"qr_code"`
}

func (in DriverInput) Apply(current Driver, now Time) Driver {
	current.FirstName = in.FirstName
	current.LastName = in.LastName
	current.MiddleName = in.MiddleName
	current.DateOfBirth = in.DateOfBirth
	current.AddressRegion = in.AddressRegion
	current.AddressProvince = in.AddressProvince
	current.AddressCity = in.AddressCity
	current.AddressBarangay = in.AddressBarangay
	current.AddressStreet = in.AddressStreet
	current.PhoneNumber = in.PhoneNumber
	current.LicenseNumber = in.LicenseNumber
	current.LicenseExpirationDate = in.LicenseExpirationDate
	current.LicenseStatus = in.LicenseStatus
	current.VehicleOwnership = in.VehicleOwnership
	current.VehiclePlateNumber = in.VehiclePlateNumber
	if in.QRCode != "" {
		current.QRCode = in.QRCode
	}
	if current.RegisteredAt.IsZero() {
		current.RegisteredAt = now
	}
	return current
}

func joinName(parts ...string) string { return joinNonEmpty(" ", parts...) }

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
