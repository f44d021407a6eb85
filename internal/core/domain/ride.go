package domain

// Ride is a completed trip joined with driver and passenger names.
type Ride struct {
	ID                  int64   `json:"ride_id" bson:"_id"`
	DriverID            int64   `json:"driver_id" bson:"driver_id"`
	PassengerID         int64   `json:"passenger_id" bson:"passenger_id"`
	PickupLatitude      float64 `json:"pickup_latitude" bson:"pickup_latitude"`
	PickupLongitude     float64 `json:"pickup_longitude" bson:"pickup_longitude"`
	PickupAddress       string  `json:"pickup_address" bson:"pickup_address"`
	DropoffLatitude     float64 `json:"dropoff_latitude" bson:"dropoff_latitude"`
	DropoffLongitude    float64 `json:"dropoff_longitude" bson:"dropoff_longitude"`
	DropoffAddress      string  `json:"dropoff_address" bson:"dropoff_address"`
	RideDistanceKm      float64 `json:"ride_distance_km" bson:"ride_distance_km"`
	RideDurationMinutes int     `json:"ride_duration_minutes" bson:"ride_duration_minutes"`
	StartedAt           Time    `json:"started_at" bson:"started_at"`
	CompletedAt         Time    `json:"completed_at" bson:"completed_at"`
	DriverFirstName     string  `json:"driver_first_name" bson:"driver_first_name"`
	DriverLastName      string  `json:"driver_last_name" bson:"driver_last_name"`
	PassengerFirstName  string  `json:"passenger_first_name" bson:"passenger_first_name"`
	PassengerLastName   string  `json:"passenger_last_name" bson:"passenger_last_name"`
}

func (r Ride) Key() int64 { return r.ID }

func (r Ride) WithKey(id int64) Ride {
	r.ID = id
	return r
}

// Apply lets a Ride be its own write payload.
func (r Ride) Apply(current Ride, _ Time) Ride { return r.WithKey(current.ID) }

// Feedback is a passenger's rating of a ride.
type Feedback struct {
	ID          int64  `json:"feedback_id" bson:"_id"`
	RideID      int64  `json:"ride_id" bson:"ride_id"`
	PassengerID int64  `json:"passenger_id" bson:"passenger_id"`
	DriverID    int64  `json:"driver_id" bson:"driver_id"`
	Rating      int    `json:"rating" bson:"rating"`
	Comments    string `json:"comments,omitempty" bson:"comments,omitempty"`
	CreatedAt   Time   `json:"created_at" bson:"created_at"`
}

func (f Feedback) Key() int64 { return f.ID }

func (f Feedback) WithKey(id int64) Feedback {
	f.ID = id
	return f
}

func (f Feedback) Apply(current Feedback, now Time) Feedback {
	f.ID = current.ID
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	return f
}

// DashboardStats are the headline counters shown on the dashboard page.
type DashboardStats struct {
	TotalPassengers int `json:"totalPassengers"`
	TotalDrivers    int `json:"totalDrivers"`
	TotalRides      int `json:"totalRides"`
	TotalAdmins     int `json:"totalAdmins"`
	TodayRides      int `json:"todayRides"`
	ActiveDrivers   int `json:"activeDrivers"`
}
