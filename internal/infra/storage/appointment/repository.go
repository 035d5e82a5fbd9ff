package appointment

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	"github.com/m04kA/SMC-SalonBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonBooking/pkg/psqlbuilder"
)

const table = "appointments"

var columns = []string{
	"id",
	"appointment_date",
	"slot_time",
	"service",
	"price",
	"stylist",
	"client_name",
	"client_phone",
	"client_email",
	"status",
	"confirmation_code",
	"reminder_sent",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с заявками
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заявок
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// insertQuery строит INSERT заявки
// Время создания берётся из заявки, при нулевом значении ставит база
func insertQuery(a *domain.Appointment) (string, []interface{}, error) {
	var createdAt interface{} = a.CreatedAt
	if a.CreatedAt.IsZero() {
		createdAt = squirrel.Expr("NOW()")
	}

	return psqlbuilder.Insert(table).
		Columns(
			"appointment_date",
			"slot_time",
			"service",
			"price",
			"stylist",
			"client_name",
			"client_phone",
			"client_email",
			"status",
			"confirmation_code",
			"created_at",
			"updated_at",
		).
		Values(
			a.Date,
			a.Time,
			a.Service,
			a.Price,
			a.Stylist,
			a.ClientName,
			a.ClientPhone,
			a.ClientEmail,
			a.Status,
			a.ConfirmationCode,
			createdAt,
			createdAt,
		).
		Suffix("RETURNING id, reminder_sent, created_at, updated_at").
		ToSql()
}

// Create создает новую заявку
// Если в контексте передана активная транзакция, использует её.
// Нарушение уникальности слота или кода подтверждения возвращается как
// ErrSlotConflict / ErrCodeConflict
func (r *Repository) Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertQuery(a)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&a.ID,
		&a.ReminderSent,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return nil, fmt.Errorf("%w: Create: %v", mapped, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return a, nil
}

// GetByID получает заявку по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return nil, fmt.Errorf("%w: GetByID: %v", mapped, err)
		}
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// GetByCode получает заявку по коду подтверждения без учёта регистра
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Expr("UPPER(confirmation_code) = UPPER(?)", strings.TrimSpace(code))).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	a, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - scan appointment: %v", ErrScanRow, err)
	}

	return a, nil
}

// ListActiveBySlot получает активные (pending/confirmed) заявки на дату и время
// Внутри транзакции строки блокируются (FOR UPDATE) - используется при создании заявки
func (r *Repository) ListActiveBySlot(ctx context.Context, date time.Time, slotTime string) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date,
			"slot_time":        slotTime,
			"status":           activeStatusStrings(),
		}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	return r.list(ctx, "ListActiveBySlot", selectBuilder)
}

// ListActiveByDate получает активные заявки на дату
// Если stylist указан, возвращает только заявки этого мастера
func (r *Repository) ListActiveByDate(ctx context.Context, date time.Time, stylist *string) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date,
			"status":           activeStatusStrings(),
		}).
		OrderBy("slot_time ASC", "id ASC")

	if stylist != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"stylist": *stylist})
	}

	return r.list(ctx, "ListActiveByDate", selectBuilder)
}

// List получает заявки для админки, новые сверху
func (r *Repository) List(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("appointment_date DESC", "slot_time ASC", "id DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"appointment_date": *filter.Date})
	}

	return r.list(ctx, "List", selectBuilder)
}

// ListDueReminders получает подтверждённые заявки на дату, по которым не отправлено напоминание
func (r *Repository) ListDueReminders(ctx context.Context, date time.Time) ([]*domain.Appointment, error) {
	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"appointment_date": date,
			"status":           domain.StatusConfirmed,
			"reminder_sent":    false,
		}).
		OrderBy("slot_time ASC", "id ASC")

	return r.list(ctx, "ListDueReminders", selectBuilder)
}

// UpdateStatus обновляет статус заявки
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	return r.update(ctx, "UpdateStatus", psqlbuilder.Update(table).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// UpdateClientName исправляет имя клиента
func (r *Repository) UpdateClientName(ctx context.Context, id int64, name string) error {
	return r.update(ctx, "UpdateClientName", psqlbuilder.Update(table).
		Set("client_name", name).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

// MarkReminderSent отмечает, что напоминание по заявке обработано
func (r *Repository) MarkReminderSent(ctx context.Context, id int64) error {
	return r.update(ctx, "MarkReminderSent", psqlbuilder.Update(table).
		Set("reminder_sent", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}))
}

func (r *Repository) update(ctx context.Context, op string, builder squirrel.UpdateBuilder) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %s - build update query: %v", ErrBuildQuery, op, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return fmt.Errorf("%w: %s: %v", mapped, op, err)
		}
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

func (r *Repository) list(ctx context.Context, op string, builder squirrel.SelectBuilder) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		if mapped := mapPQError(err); mapped != nil {
			return nil, fmt.Errorf("%w: %s: %v", mapped, op, err)
		}
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		appointments = append(appointments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return appointments, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanAppointment сканирует строку в порядке columns
func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var (
		a           domain.Appointment
		stylist     sql.NullString
		clientEmail sql.NullString
	)

	err := row.Scan(
		&a.ID,
		&a.Date,
		&a.Time,
		&a.Service,
		&a.Price,
		&stylist,
		&a.ClientName,
		&a.ClientPhone,
		&clientEmail,
		&a.Status,
		&a.ConfirmationCode,
		&a.ReminderSent,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if stylist.Valid {
		a.Stylist = &stylist.String
	}
	if clientEmail.Valid {
		a.ClientEmail = &clientEmail.String
	}

	return &a, nil
}

func activeStatusStrings() []string {
	statuses := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		statuses[i] = string(s)
	}
	return statuses
}
