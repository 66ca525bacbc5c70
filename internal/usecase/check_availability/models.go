package check_availability

import "time"

// SlotStatus статус одного слота каталога
type SlotStatus struct {
	Available bool
	Booked    bool
}

// Response карта доступности по всем слотам каталога
type Response struct {
	Slots          map[string]SlotStatus // ключ — каноническое время слота "HH:MM"
	TotalAvailable int
	LastUpdated    time.Time
}
