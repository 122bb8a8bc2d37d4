package booking

import (
	"strings"
	"time"
)

type Availability struct {
	Available bool       `json:"available"`
	Conflicts []*Booking `json:"conflictingBookings"`
}

// Conflicts returns the bookings that hold date and timeSlot. Rejected
// bookings release their slot. Matching is exact.
func Conflicts(bookings []*Booking, date, timeSlot string) []*Booking {
	out := []*Booking{}
	if !validSlot(date, timeSlot) {
		return out
	}
	for _, b := range bookings {
		if b.Date == date && b.TimeSlot == timeSlot && b.AdminApproval.Blocks() {
			out = append(out, b)
		}
	}
	return out
}

func validSlot(date, timeSlot string) bool {
	if strings.TrimSpace(date) == "" || strings.TrimSpace(timeSlot) == "" {
		return false
	}
	_, err := time.Parse(DateLayout, date)
	return err == nil
}
