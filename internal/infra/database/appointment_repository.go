package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type AppointmentRepository struct {
	DB *sql.DB
}

func NewAppointmentRepository(db *sql.DB) *AppointmentRepository {
	return &AppointmentRepository{DB: db}
}

// Lead references are by convention only. Reads LEFT JOIN the leads table
// so a dangling lead_id simply yields an empty lead name.
const appointmentSelect = `
	SELECT a.id, a.lead_id, a.title, a.description, a.location,
	       a.appointment_date, a.duration_minutes, a.status, a.reminder_sent,
	       a.created_at, a.updated_at,
	       COALESCE(TRIM(l.first_name || ' ' || l.last_name), '') AS lead_name
	FROM appointments a
	LEFT JOIN leads l ON l.id = a.lead_id
`

func (r *AppointmentRepository) Create(ctx context.Context, a *entity.Appointment) error {
	query := `
		INSERT INTO appointments (id, lead_id, title, description, location,
			appointment_date, duration_minutes, status, reminder_sent,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.LeadID, a.Title, a.Description, a.Location,
		a.AppointmentDate, a.DurationMinutes, a.Status, a.ReminderSent,
		a.CreatedAt, a.UpdatedAt,
	)
	return err
}

func (r *AppointmentRepository) FindByID(ctx context.Context, id string) (*entity.Appointment, error) {
	a, err := scanAppointment(r.DB.QueryRowContext(ctx, appointmentSelect+` WHERE a.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *AppointmentRepository) Update(ctx context.Context, a *entity.Appointment) error {
	query := `
		UPDATE appointments SET
			title = $2, description = $3, location = $4, appointment_date = $5,
			duration_minutes = $6, status = $7, reminder_sent = $8, updated_at = $9
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		a.ID, a.Title, a.Description, a.Location, a.AppointmentDate,
		a.DurationMinutes, a.Status, a.ReminderSent, a.UpdatedAt,
	)
	return err
}

func (r *AppointmentRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *AppointmentRepository) List(ctx context.Context, q usecase.AppointmentQuery) ([]*entity.Appointment, error) {
	query := appointmentSelect + ` WHERE 1=1`
	args := []any{}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		query += ` AND (a.title ILIKE ` + p + ` OR a.description ILIKE ` + p + `)`
	}
	if q.Status != "" && q.Status != "all" {
		args = append(args, q.Status)
		query += fmt.Sprintf(` AND a.status = $%d`, len(args))
	}
	query += ` ORDER BY a.appointment_date DESC`

	return r.queryAppointments(ctx, query, args...)
}

func (r *AppointmentRepository) ListOnDay(ctx context.Context, day time.Time) ([]*entity.Appointment, error) {
	query := appointmentSelect + ` WHERE a.appointment_date::date = $1::date ORDER BY a.appointment_date`
	return r.queryAppointments(ctx, query, day)
}

// ListDueForReminder picks appointments starting before the cutoff that
// still carry reminder_sent = false and are not cancelled or done.
func (r *AppointmentRepository) ListDueForReminder(ctx context.Context, within time.Duration) ([]*entity.Appointment, error) {
	cutoff := time.Now().Add(within)
	query := appointmentSelect + `
		WHERE a.reminder_sent = false
		  AND a.status IN ('scheduled', 'confirmed')
		  AND a.appointment_date > NOW()
		  AND a.appointment_date <= $1
		ORDER BY a.appointment_date
	`
	return r.queryAppointments(ctx, query, cutoff)
}

func (r *AppointmentRepository) MarkReminderSent(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE appointments SET reminder_sent = true, updated_at = NOW() WHERE id = $1`, id)
	return err
}

func (r *AppointmentRepository) queryAppointments(ctx context.Context, query string, args ...any) ([]*entity.Appointment, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var appts []*entity.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appts = append(appts, a)
	}
	return appts, rows.Err()
}

func scanAppointment(row rowScanner) (*entity.Appointment, error) {
	var a entity.Appointment
	err := row.Scan(
		&a.ID, &a.LeadID, &a.Title, &a.Description, &a.Location,
		&a.AppointmentDate, &a.DurationMinutes, &a.Status, &a.ReminderSent,
		&a.CreatedAt, &a.UpdatedAt, &a.LeadName,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
