package domain

// SlotStatus represents whether a slot can still be booked
type SlotStatus string

const (
	SlotFree  SlotStatus = "free"
	SlotTaken SlotStatus = "taken"
)

// Slot occupancy of one work-hour grid time on a given date
type Slot struct {
	Time      string
	Status    SlotStatus
	Available int
	Capacity  int
}

// IsFull returns true if the slot has no available capacity
func (s *Slot) IsFull() bool {
	return s.Available <= 0
}

// NewSlot builds a slot from capacity and occupancy, clamping availability at zero
func NewSlot(time string, capacity, occupied int) Slot {
	available := capacity - occupied
	if available < 0 {
		available = 0
	}
	status := SlotFree
	if available <= 0 {
		status = SlotTaken
	}
	return Slot{
		Time:      time,
		Status:    status,
		Available: available,
		Capacity:  capacity,
	}
}
