package check_availability

import (
	"time"

	"github.com/festive-rides/booking-service/internal/domain"
	checkAvailability "github.com/festive-rides/booking-service/internal/usecase/check_availability"
)

// SlotStatusResponse статус одного временного слота
type SlotStatusResponse struct {
	Available bool   `json:"available"`
	Booked    bool   `json:"booked"`
	Label     string `json:"label"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Slots          map[string]SlotStatusResponse `json:"slots"`
	TotalAvailable int                           `json:"total_available"`
	LastUpdated    string                        `json:"last_updated"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	slots := make(map[string]SlotStatusResponse, len(resp.Slots))
	for _, slot := range domain.TimeSlots {
		key := slot.Time.String()
		status := resp.Slots[key]
		slots[key] = SlotStatusResponse{
			Available: status.Available,
			Booked:    status.Booked,
			Label:     slot.Label,
		}
	}

	return &AvailabilityResponse{
		Slots:          slots,
		TotalAvailable: resp.TotalAvailable,
		LastUpdated:    resp.LastUpdated.Format(time.RFC3339),
	}
}
