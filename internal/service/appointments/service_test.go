package appointments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type fakeRepo struct {
	appointments []*domain.Appointment
	gotFilter    domain.AppointmentsFilter
	err          error
}

func (r *fakeRepo) find(match func(a *domain.Appointment) bool) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, a := range r.appointments {
		if match(a) {
			cp := *a
			return &cp, nil
		}
	}
	return nil, appointmentRepo.ErrAppointmentNotFound
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	return r.find(func(a *domain.Appointment) bool { return a.ID == id })
}

func (r *fakeRepo) GetByCode(_ context.Context, code string) (*domain.Appointment, error) {
	return r.find(func(a *domain.Appointment) bool { return strings.EqualFold(a.ConfirmationCode, code) })
}

func (r *fakeRepo) List(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	r.gotFilter = filter
	if r.err != nil {
		return nil, r.err
	}
	return r.appointments, nil
}

func (r *fakeRepo) UpdateClientName(_ context.Context, id int64, name string) error {
	if r.err != nil {
		return r.err
	}
	for _, a := range r.appointments {
		if a.ID == id {
			a.ClientName = name
			return nil
		}
	}
	return appointmentRepo.ErrAppointmentNotFound
}

func newService(appointments ...*domain.Appointment) (*Service, *fakeRepo) {
	repo := &fakeRepo{appointments: appointments}
	salon := &domain.Salon{MaxNameLength: 10}
	return NewService(repo, salon, logger.NewNop()), repo
}

func sample() *domain.Appointment {
	return &domain.Appointment{
		ID:               1,
		Date:             time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:             "10:00",
		Service:          "haircut",
		Stylist:          ptr.Ptr("Iva"),
		ClientName:       "Ana",
		ClientPhone:      "0887123456",
		Status:           domain.StatusPending,
		ConfirmationCode: "SLN-AB12CD",
	}
}

func TestService_GetStatus(t *testing.T) {
	svc, _ := newService(sample())

	first, err := svc.GetStatus(context.Background(), "sln-ab12cd")
	require.NoError(t, err)
	assert.Equal(t, &models.StatusResponse{
		Code:    "SLN-AB12CD",
		Date:    "2025-03-10",
		Time:    "10:00",
		Service: "haircut",
		Stylist: ptr.Ptr("Iva"),
		Status:  "pending",
	}, first)

	second, err := svc.GetStatus(context.Background(), "SLN-AB12CD")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_GetStatus_Errors(t *testing.T) {
	svc, repo := newService(sample())

	_, err := svc.GetStatus(context.Background(), "SLN-ZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetStatus(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrNotFound)

	repo.err = errors.New("db down")
	_, err = svc.GetStatus(context.Background(), "SLN-AB12CD")
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_List(t *testing.T) {
	svc, repo := newService(sample())

	resp, err := svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("Pending"), Date: ptr.Ptr("2025-03-10")})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, "0887123456", resp.Appointments[0].ClientPhone)
	require.NotNil(t, repo.gotFilter.Status)
	assert.Equal(t, domain.StatusPending, *repo.gotFilter.Status)
	require.NotNil(t, repo.gotFilter.Date)
	assert.Equal(t, "2025-03-10", repo.gotFilter.Date.Format(domain.DateFormat))

	_, err = svc.List(context.Background(), &models.ListRequest{Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListRequest{Date: ptr.Ptr("yesterday")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateClientName(t *testing.T) {
	svc, repo := newService(sample())

	resp, err := svc.UpdateClientName(context.Background(), 1, &models.UpdateClientNameRequest{ClientName: " <Maria Petrova> "})

	require.NoError(t, err)
	assert.Equal(t, "Maria Petr", resp.ClientName)
	assert.Equal(t, "Maria Petr", repo.appointments[0].ClientName)

	_, err = svc.UpdateClientName(context.Background(), 1, &models.UpdateClientNameRequest{ClientName: "<>"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateClientName(context.Background(), 99, &models.UpdateClientNameRequest{ClientName: "Ana"})
	assert.ErrorIs(t, err, ErrNotFound)
}
