package domain

import "github.com/festive-rides/booking-service/pkg/types"

// TimeSlot is one of the fixed bookable pickup windows for the service day
type TimeSlot struct {
	Time  types.TimeString // canonical "HH:MM" key
	Label string           // human display string
	Value string           // "HH:MM:SS" storage representation
}

// TimeSlots is the full ordered catalog of pickup slots for the one
// supported service date. It is the single source of truth for slot
// identity: the form, the availability view and the allocator all
// validate against it.
var TimeSlots = []TimeSlot{
	{Time: "09:00", Label: "9:00 AM", Value: "09:00:00"},
	{Time: "10:30", Label: "10:30 AM", Value: "10:30:00"},
	{Time: "12:00", Label: "12:00 PM (Noon)", Value: "12:00:00"},
	{Time: "13:30", Label: "1:30 PM", Value: "13:30:00"},
	{Time: "15:00", Label: "3:00 PM", Value: "15:00:00"},
	{Time: "16:30", Label: "4:30 PM", Value: "16:30:00"},
}

// IsValidTimeSlot reports whether s matches a catalog slot key.
// Values carrying a seconds component are normalized first.
func IsValidTimeSlot(s string) bool {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return false
	}
	for _, slot := range TimeSlots {
		if slot.Time == ts {
			return true
		}
	}
	return false
}

// FormatTimeSlot returns the display label for a slot key, or the key
// itself if it is not in the catalog
func FormatTimeSlot(ts types.TimeString) string {
	for _, slot := range TimeSlots {
		if slot.Time == ts {
			return slot.Label
		}
	}
	return ts.String()
}
