package domain

// Business validation constants. The HTTP layer's validator tags carry the
// same bounds; these constants back the usecase-level semantic checks.
const (
	MinPassengerNameLength = 2
	MaxPassengerNameLength = 100
	MinAddressLength       = 5
	MaxAddressLength       = 300

	// MinPassengers..MaxPassengers bound the party size per ride.
	// Earlier form revisions used a bound of 3; the canonical bound is 8.
	MinPassengers = 1
	MaxPassengers = 8

	MaxSpecialRequirementsLength = 500
	MaxCancellationReasonLength  = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
