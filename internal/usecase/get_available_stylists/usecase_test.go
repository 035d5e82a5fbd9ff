package get_available_stylists

import (
	"context"
	"errors"
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
}

func (r *fakeRepo) ListActiveBySlot(_ context.Context, date time.Time, slotTime string) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	result := make([]*domain.Appointment, 0)
	for _, a := range r.appointments {
		if a.Date.Equal(date) && a.Time == slotTime && a.IsActive() {
			result = append(result, a)
		}
	}
	return result, nil
}

func testSalon() *domain.Salon {
	return &domain.Salon{
		Services:  map[string]int{"haircut": 30},
		WorkHours: []string{"09:00", "10:00"},
		Stylists:  []string{"Iva", "Maria", "Desi"},
	}
}

func TestUseCase_Execute(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{appointments: []*domain.Appointment{
		{Date: day, Time: "09:00", Stylist: ptr.Ptr("Maria"), Status: domain.StatusPending},
		{Date: day, Time: "09:00", Stylist: ptr.Ptr("Desi"), Status: domain.StatusRejected},
		{Date: day, Time: "09:00", Stylist: nil, Status: domain.StatusConfirmed},
		{Date: day, Time: "10:00", Stylist: ptr.Ptr("Iva"), Status: domain.StatusConfirmed},
	}}
	uc := NewUseCase(repo, testSalon(), logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Iva", "Desi"}, resp.Stylists)

	resp, err = uc.Execute(context.Background(), &Request{Date: "2025-03-11", Time: "09:00"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Iva", "Maria", "Desi"}, resp.Stylists)
}

func TestUseCase_Errors(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, testSalon(), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: "2025/03/10", Time: "09:00"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "08:00"})
	assert.ErrorIs(t, err, ErrInvalidTime)

	uc = NewUseCase(&fakeRepo{err: errors.New("db down")}, testSalon(), logger.NewNop())
	_, err = uc.Execute(context.Background(), &Request{Date: "2025-03-10", Time: "09:00"})
	assert.ErrorIs(t, err, ErrInternal)
}
