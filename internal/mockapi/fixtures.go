package mockapi

import "github.com/commutersec/admin-dashboard/internal/core/domain"

// Seed data loaded into an empty store on startup.

var at = domain.MustTime

func adminFixtures() []domain.Admin {
	return []domain.Admin{
		{
			ID: 1, Username: "jojoKing", FirstName: "Joe", LastName: "King",
			Email: "joeking@gmail.com", Role: domain.RoleModerator, IsActive: 2,
			RegisteredAt: at("2023-01-15T10:00:00Z"), LastLoginAt: at("2024-06-10T08:30:00Z").Ptr(),
		},
		{
			ID: 2, Username: "sara565", FirstName: "Sara", LastName: "Liu",
			Email: "saraliu77@gmail.com", Role: domain.RoleAdmin, IsActive: 1,
			RegisteredAt: at("2022-11-20T14:45:00Z"), LastLoginAt: at("2026-01-19T16:15:00Z").Ptr(),
		},
		{
			ID: 3, Username: "mikeT99", FirstName: "Mike", LastName: "Tyson",
			Email: "mikeyty10@work.com", Role: domain.RoleSuperAdmin, IsActive: 1,
			RegisteredAt: at("2023-05-05T09:20:00Z"), LastLoginAt: at("2026-01-21T09:40:00Z").Ptr(),
		},
	}
}

func driverFixtures() []domain.Driver {
	return []domain.Driver{
		{
			ID: 101, FirstName: "John", LastName: "Doe", MiddleName: "Arsol",
			DateOfBirth: at("1985-06-15"),
			AddressRegion: "Region 1", AddressProvince: "Province A", AddressCity: "City X",
			AddressBarangay: "Barangay 5", AddressStreet: "123 Main St",
			PhoneNumber: "09171234567",
			LicenseNumber: "D1234567", LicenseExpirationDate: at("2026-12-31"), LicenseStatus: domain.LicenseActive,
			VehicleOwnership: domain.OwnershipOwned, VehiclePlateNumber: "ABC-1234",
			QRCode: "QR1234567890", RegisteredAt: at("2020-01-10"),
		},
		{
			ID: 102, FirstName: "Jane", LastName: "Smith", MiddleName: "Marie",
			DateOfBirth: at("1990-03-22"),
			AddressRegion: "Region 2", AddressProvince: "Province B", AddressCity: "City Y",
			AddressBarangay: "Barangay 6", AddressStreet: "456 Oak Ave",
			PhoneNumber: "09179876543",
			LicenseNumber: "D7654321", LicenseExpirationDate: at("2025-08-15"), LicenseStatus: domain.LicenseExpired,
			VehicleOwnership: domain.OwnershipOwned, VehiclePlateNumber: "XYZ-9999",
			QRCode: "QR9999999999", RegisteredAt: at("2021-03-15"),
		},
		{
			ID: 103, FirstName: "Mike", LastName: "Johnson", MiddleName: "Lee",
			DateOfBirth: at("1988-11-05"),
			AddressRegion: "Region 3", AddressProvince: "Province C", AddressCity: "City Z",
			AddressBarangay: "Barangay 7", AddressStreet: "789 Pine St",
			PhoneNumber: "09175551234",
			LicenseNumber: "D1111111", LicenseExpirationDate: at("2027-05-20"), LicenseStatus: domain.LicenseSuspended,
			VehicleOwnership: domain.OwnershipRented, VehiclePlateNumber: "DEF-5678",
			QRCode: "QR5678567856", RegisteredAt: at("2019-07-01"),
		},
	}
}

// Passenger password hashes are set at seed time.
func passengerFixtures() []domain.Passenger {
	return []domain.Passenger{
		{
			ID: 201, FirstName: "Alice", LastName: "Johnson", MiddleName: "Lynn", Username: "alicej",
			DateOfBirth: at("2000-07-15"), PhoneNumber: "09171234568", Email: "alice_johnson@gmail.com",
			RegisteredAt: at("2022-05-20"),
		},
		{
			ID: 202, FirstName: "Ben", LastName: "Cruz", Username: "bencruz",
			DateOfBirth: at("1997-02-03"), PhoneNumber: "09181112222", Email: "ben.cruz@gmail.com",
			RegisteredAt: at("2022-08-11"),
		},
		{
			ID: 203, FirstName: "Carla", LastName: "Reyes", Username: "carlar",
			DateOfBirth: at("1995-10-30"), PhoneNumber: "09193334444", Email: "carla.reyes@yahoo.com",
			RegisteredAt: at("2023-02-01"),
		},
	}
}

func rideFixtures() []domain.Ride {
	eastwood := domain.Ride{
		DriverID: 103, PassengerID: 203,
		PickupLatitude: 14.5764, PickupLongitude: 121.0851, PickupAddress: "Eastwood City, Quezon City",
		DropoffLatitude: 14.5995, DropoffLongitude: 120.9842, DropoffAddress: "SM North EDSA",
		RideDistanceKm: 6.7, RideDurationMinutes: 20,
		StartedAt: at("2024-01-20T10:00:00"), CompletedAt: at("2024-01-20T10:20:00"),
	}
	rides := []domain.Ride{
		{
			ID: 1, DriverID: 101, PassengerID: 201,
			PickupLatitude: 14.5995, PickupLongitude: 120.9842, PickupAddress: "SM North EDSA, Quezon City",
			DropoffLatitude: 14.5547, DropoffLongitude: 121.0244, DropoffAddress: "BGC, Taguig City",
			RideDistanceKm: 12.5, RideDurationMinutes: 35,
			StartedAt: at("2024-01-20T08:30:00"), CompletedAt: at("2024-01-20T09:05:00"),
		},
		{
			ID: 2, DriverID: 102, PassengerID: 202,
			PickupLatitude: 14.6091, PickupLongitude: 121.0223, PickupAddress: "Ortigas Center, Pasig City",
			DropoffLatitude: 14.5378, DropoffLongitude: 121.0199, DropoffAddress: "Makati CBD",
			RideDistanceKm: 8.3, RideDurationMinutes: 25,
			StartedAt: at("2024-01-20T09:15:00"), CompletedAt: at("2024-01-20T09:40:00"),
		},
		eastwood.WithKey(3),
		eastwood.WithKey(4),
		eastwood.WithKey(5),
	}
	return joinNames(rides, driverFixtures(), passengerFixtures())
}

func feedbackFixtures() []domain.Feedback {
	return []domain.Feedback{
		{ID: 301, RideID: 101, PassengerID: 201, DriverID: 401, Rating: 4, Comments: "Great ride, friendly driver.", CreatedAt: at("2023-09-10T10:30:00Z")},
		{ID: 302, RideID: 102, PassengerID: 202, DriverID: 402, Rating: 3, Comments: "Average experience.", CreatedAt: at("2023-09-11T14:20:00Z")},
		{ID: 303, RideID: 103, PassengerID: 203, DriverID: 403, Rating: 5, Comments: "Excellent service! the driver is very nice and professional.", CreatedAt: at("2023-09-12T09:15:00Z")},
		{ID: 304, RideID: 104, PassengerID: 204, DriverID: 404, Rating: 2, Comments: "Could be better.", CreatedAt: at("2023-09-13T16:45:00Z")},
	}
}

// joinNames fills the driver and passenger names of each ride.
func joinNames(rides []domain.Ride, drivers []domain.Driver, passengers []domain.Passenger) []domain.Ride {
	driverByID := make(map[int64]domain.Driver, len(drivers))
	for _, d := range drivers {
		driverByID[d.ID] = d
	}
	passengerByID := make(map[int64]domain.Passenger, len(passengers))
	for _, p := range passengers {
		passengerByID[p.ID] = p
	}

	for i, r := range rides {
		if d, ok := driverByID[r.DriverID]; ok {
			rides[i].DriverFirstName, rides[i].DriverLastName = d.FirstName, d.LastName
		}
		if p, ok := passengerByID[r.PassengerID]; ok {
			rides[i].PassengerFirstName, rides[i].PassengerLastName = p.FirstName, p.LastName
		}
	}
	return rides
}
