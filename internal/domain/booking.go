package domain

import (
	"time"

	"github.com/festive-rides/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// DestinationCategory is one of the fixed trip purposes offered on the form
type DestinationCategory string

const (
	DestinationDoctor         DestinationCategory = "doctor"
	DestinationChurch         DestinationCategory = "church"
	DestinationSupermarket    DestinationCategory = "supermarket"
	DestinationChristmasEvent DestinationCategory = "christmas-events"
	DestinationWhanauVisit    DestinationCategory = "whanau-visits"
	DestinationOther          DestinationCategory = "other"
)

// DestinationCategories lists all valid trip purposes in form order
var DestinationCategories = []DestinationCategory{
	DestinationDoctor,
	DestinationChurch,
	DestinationSupermarket,
	DestinationChristmasEvent,
	DestinationWhanauVisit,
	DestinationOther,
}

// IsValidDestinationCategory reports whether s names a known trip purpose
func IsValidDestinationCategory(s string) bool {
	for _, c := range DestinationCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

// Booking represents one community ride booking.
// At most one booking with StatusConfirmed may exist per TimeSlot; the
// partial unique index on the bookings table is the authoritative guard.
type Booking struct {
	ID                  int64
	PassengerName       string
	PassengerPhone      string
	PassengerEmail      string
	TimeSlot            types.TimeString
	PickupAddress       string
	DestinationCategory DestinationCategory
	DestinationAddress  string
	NumPassengers       int
	SpecialRequirements *string
	BookingReference    string
	Status              BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
}

// IsConfirmed returns true if the booking currently occupies its slot
func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled.
// Only confirmed bookings may transition; a cancelled booking never
// becomes confirmed again.
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed
}
