package moderate_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/ptr"
)

type fakeRepo struct {
	appointments map[int64]*domain.Appointment
	getErr       error
	updateErr    error
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	if r.getErr != nil {
		return nil, r.getErr
	}
	a, ok := r.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	a, ok := r.appointments[id]
	if !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	a.Status = status
	return nil
}

type fakeTxManager struct{}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	mu          sync.Mutex
	reply       bool
	confirmed   []int64
	rejected    []int64
	hadDeadline bool
}

func (n *fakeNotifier) SendConfirmation(ctx context.Context, a *domain.Appointment) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, n.hadDeadline = ctx.Deadline()
	n.confirmed = append(n.confirmed, a.ID)
	return n.reply
}

func (n *fakeNotifier) SendRejection(_ context.Context, a *domain.Appointment) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rejected = append(n.rejected, a.ID)
	return n.reply
}

type fakeMetrics struct {
	records []string
}

func (m *fakeMetrics) RecordModeration(action, result string) {
	m.records = append(m.records, action+":"+result)
}

type fixture struct {
	repo      *fakeRepo
	messenger *fakeNotifier
	mailer    *fakeNotifier
	metrics   *fakeMetrics
	uc        *UseCase
}

func newFixture(appointments ...*domain.Appointment) *fixture {
	f := &fixture{
		repo:      &fakeRepo{appointments: make(map[int64]*domain.Appointment)},
		messenger: &fakeNotifier{reply: true},
		mailer:    &fakeNotifier{reply: true},
		metrics:   &fakeMetrics{},
	}
	for _, a := range appointments {
		f.repo.appointments[a.ID] = a
	}
	f.uc = NewUseCase(f.repo, &fakeTxManager{}, f.messenger, f.mailer, f.metrics, time.Second, logger.NewNop())
	return f
}

func pending(id int64, email *string) *domain.Appointment {
	return &domain.Appointment{
		ID:               id,
		Date:             time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Time:             "09:00",
		Service:          "haircut",
		ClientName:       "Ana",
		ClientPhone:      "0887123456",
		ClientEmail:      email,
		Status:           domain.StatusPending,
		ConfirmationCode: "SLN-ABC123",
	}
}

func TestUseCase_ConfirmWithEmail(t *testing.T) {
	f := newFixture(pending(1, ptr.Ptr("ana@example.com")))

	resp, err := f.uc.Execute(context.Background(), &Request{ID: 1, Action: ActionConfirm})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.Equal(t, Notifications{Telegram: true, Email: true}, resp.Notifications)
	assert.Equal(t, domain.StatusConfirmed, f.repo.appointments[1].Status)
	assert.Equal(t, []int64{1}, f.messenger.confirmed)
	assert.Equal(t, []int64{1}, f.mailer.confirmed)
	assert.True(t, f.mailer.hadDeadline)
	assert.Equal(t, []string{"confirm:applied"}, f.metrics.records)
}

func TestUseCase_EmailOutcomeReflectedInResponse(t *testing.T) {
	f := newFixture(pending(1, ptr.Ptr("ana@example.com")))
	f.mailer.reply = false

	resp, err := f.uc.Execute(context.Background(), &Request{ID: 1, Action: ActionConfirm})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, Notifications{Telegram: true, Email: false}, resp.Notifications)
	assert.Equal(t, domain.StatusConfirmed, f.repo.appointments[1].Status)
}

func TestUseCase_ConfirmWithoutEmail(t *testing.T) {
	f := newFixture(pending(1, nil))

	resp, err := f.uc.Execute(context.Background(), &Request{ID: 1, Action: ActionConfirm})

	require.NoError(t, err)
	assert.Equal(t, Notifications{Telegram: true}, resp.Notifications)
	assert.Empty(t, f.mailer.confirmed)
}

func TestUseCase_RejectSendsEmailOnly(t *testing.T) {
	f := newFixture(pending(2, ptr.Ptr("ana@example.com")))

	resp, err := f.uc.Execute(context.Background(), &Request{ID: 2, Action: ActionReject})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, f.repo.appointments[2].Status)
	assert.Equal(t, Notifications{Email: true}, resp.Notifications)
	assert.Empty(t, f.messenger.confirmed)
	assert.Equal(t, []int64{2}, f.mailer.rejected)
}

func TestUseCase_Errors(t *testing.T) {
	t.Run("invalid action checked first", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), &Request{ID: 404, Action: "approve"})
		assert.ErrorIs(t, err, ErrInvalidAction)
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Execute(context.Background(), &Request{ID: 404, Action: ActionReject})
		assert.ErrorIs(t, err, ErrNotFound)
		assert.Equal(t, []string{"reject:not_found"}, f.metrics.records)
	})

	t.Run("already finalized", func(t *testing.T) {
		a := pending(3, ptr.Ptr("ana@example.com"))
		a.Status = domain.StatusConfirmed
		f := newFixture(a)

		_, err := f.uc.Execute(context.Background(), &Request{ID: 3, Action: ActionReject})

		assert.ErrorIs(t, err, ErrAlreadyFinalized)
		assert.Equal(t, domain.StatusConfirmed, f.repo.appointments[3].Status)
		assert.Empty(t, f.mailer.rejected)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newFixture(pending(4, nil))
		f.repo.updateErr = errors.New("connection reset")

		_, err := f.uc.Execute(context.Background(), &Request{ID: 4, Action: ActionConfirm})

		assert.ErrorIs(t, err, ErrInternal)
		assert.Empty(t, f.messenger.confirmed)
	})
}

func TestUseCase_SecondConfirmIsRejected(t *testing.T) {
	f := newFixture(pending(5, ptr.Ptr("ana@example.com")))

	_, err := f.uc.Execute(context.Background(), &Request{ID: 5, Action: ActionConfirm})
	require.NoError(t, err)

	_, err = f.uc.Execute(context.Background(), &Request{ID: 5, Action: ActionConfirm})
	assert.ErrorIs(t, err, ErrAlreadyFinalized)
	assert.Len(t, f.mailer.confirmed, 1)
}

// stalledNotifier не смотрит на ctx и висит, пока не закрыт release
type stalledNotifier struct {
	release chan struct{}
}

func (n *stalledNotifier) SendConfirmation(context.Context, *domain.Appointment) bool {
	<-n.release
	return true
}

func (n *stalledNotifier) SendRejection(context.Context, *domain.Appointment) bool {
	<-n.release
	return true
}

func TestUseCase_StalledMailerDoesNotBlockResponse(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		1: pending(1, ptr.Ptr("ana@example.com")),
	}}
	messenger := &fakeNotifier{reply: true}
	mailer := &stalledNotifier{release: make(chan struct{})}
	defer close(mailer.release)

	uc := NewUseCase(repo, &fakeTxManager{}, messenger, mailer, &fakeMetrics{}, 100*time.Millisecond, logger.NewNop())

	start := time.Now()
	resp, err := uc.Execute(context.Background(), &Request{ID: 1, Action: ActionConfirm})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Less(t, elapsed, time.Second)
	assert.Equal(t, domain.StatusConfirmed, resp.Status)
	assert.True(t, resp.Notifications.Telegram)
	assert.False(t, resp.Notifications.Email)
	assert.Equal(t, domain.StatusConfirmed, repo.appointments[1].Status)
}

func TestUseCase_StalledRejectionReportedAsFailed(t *testing.T) {
	repo := &fakeRepo{appointments: map[int64]*domain.Appointment{
		2: pending(2, ptr.Ptr("ana@example.com")),
	}}
	mailer := &stalledNotifier{release: make(chan struct{})}
	defer close(mailer.release)

	uc := NewUseCase(repo, &fakeTxManager{}, &fakeNotifier{reply: true}, mailer, &fakeMetrics{}, 50*time.Millisecond, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{ID: 2, Action: ActionReject})

	require.NoError(t, err)
	assert.Equal(t, domain.StatusRejected, resp.Status)
	assert.Equal(t, Notifications{}, resp.Notifications)
}
