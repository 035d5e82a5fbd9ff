package get_available_slots

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	err          error

	gotDate    time.Time
	gotStylist *string
}

func (r *fakeRepo) ListActiveByDate(_ context.Context, date time.Time, stylist *string) ([]*domain.Appointment, error) {
	r.gotDate = date
	r.gotStylist = stylist
	if r.err != nil {
		return nil, r.err
	}

	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if !a.Date.Equal(date) || !a.IsActive() {
			continue
		}
		if stylist != nil && (a.Stylist == nil || *a.Stylist != *stylist) {
			continue
		}
		result = append(result, a)
	}
	return result, nil
}

func salon(stylists ...string) *domain.Salon {
	return &domain.Salon{
		Services:     map[string]int{"haircut": 30},
		WorkHours:    []string{"09:00", "10:00", "11:00"},
		Stylists:     stylists,
		PhonePattern: regexp.MustCompile(domain.DefaultPhonePattern),
	}
}

var day = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func booked(slot string, stylist *string, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{Date: day, Time: slot, Stylist: stylist, Status: status}
}

func TestUseCase_EmptyDayFullRoster(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, salon("Iva", "Maria", "Desi"), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})

	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	for _, s := range resp.Slots {
		assert.Equal(t, 3, s.Available)
		assert.Equal(t, domain.SlotFree, s.Status)
	}
	assert.Equal(t, []string{"09:00", "10:00", "11:00"},
		[]string{resp.Slots[0].Time, resp.Slots[1].Time, resp.Slots[2].Time})
}

func TestUseCase_Occupancy(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		booked("09:00", ptr.Ptr("Iva"), domain.StatusPending),
		booked("09:00", nil, domain.StatusConfirmed),
		booked("10:00", ptr.Ptr("Maria"), domain.StatusRejected),
		booked("11:00", ptr.Ptr("Iva"), domain.StatusConfirmed),
	}}
	uc := NewUseCase(repo, salon("Iva", "Maria"), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})

	require.NoError(t, err)
	assert.Equal(t, domain.Slot{Time: "09:00", Status: domain.SlotTaken, Available: 0, Capacity: 2}, resp.Slots[0])
	assert.Equal(t, domain.Slot{Time: "10:00", Status: domain.SlotFree, Available: 2, Capacity: 2}, resp.Slots[1])
	assert.Equal(t, domain.Slot{Time: "11:00", Status: domain.SlotFree, Available: 1, Capacity: 2}, resp.Slots[2])
}

func TestUseCase_ForStylist(t *testing.T) {
	repo := &fakeRepo{appointments: []*domain.Appointment{
		booked("09:00", ptr.Ptr("Iva"), domain.StatusPending),
		booked("10:00", ptr.Ptr("Maria"), domain.StatusPending),
	}}
	uc := NewUseCase(repo, salon("Iva", "Maria"), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Stylist: ptr.Ptr(" Iva ")})

	require.NoError(t, err)
	assert.Equal(t, "Iva", *repo.gotStylist)
	assert.Equal(t, domain.SlotTaken, resp.Slots[0].Status)
	assert.Equal(t, 0, resp.Slots[0].Available)
	assert.Equal(t, domain.SlotFree, resp.Slots[1].Status)
	assert.Equal(t, 1, resp.Slots[1].Available)
}

func TestUseCase_AvailableNeverNegative(t *testing.T) {
	repo := &fakeRepo{}
	for i := 0; i < 5; i++ {
		repo.appointments = append(repo.appointments, booked("09:00", nil, domain.StatusPending))
	}
	uc := NewUseCase(repo, salon("Iva"), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})

	require.NoError(t, err)
	for _, s := range resp.Slots {
		assert.GreaterOrEqual(t, s.Available, 0)
		assert.LessOrEqual(t, s.Available, 1)
	}
	assert.Equal(t, domain.SlotTaken, resp.Slots[0].Status)
}

func TestUseCase_NoRosterMeansCapacityOne(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, salon(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Slots[0].Available)
}

func TestUseCase_Validation(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, salon("Iva"), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: "10.03.2025"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: "2025-03-10", Stylist: ptr.Ptr("Nobody")})
	assert.ErrorIs(t, err, ErrInvalidStylist)
}

func TestUseCase_RepositoryError(t *testing.T) {
	uc := NewUseCase(&fakeRepo{err: errors.New("connection refused")}, salon("Iva"), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10"})

	assert.ErrorIs(t, err, ErrInternal)
}
