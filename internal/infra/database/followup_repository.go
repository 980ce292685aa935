package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type FollowUpRepository struct {
	DB *sql.DB
}

func NewFollowUpRepository(db *sql.DB) *FollowUpRepository {
	return &FollowUpRepository{DB: db}
}

const followUpSelect = `
	SELECT f.id, f.lead_id, f.title, f.description, f.due_date, f.priority,
	       f.status, f.assigned_to, f.completed_at, f.created_at, f.updated_at,
	       COALESCE(TRIM(l.first_name || ' ' || l.last_name), '') AS lead_name
	FROM follow_ups f
	LEFT JOIN leads l ON l.id = f.lead_id
`

func (r *FollowUpRepository) Create(ctx context.Context, f *entity.FollowUp) error {
	query := `
		INSERT INTO follow_ups (id, lead_id, title, description, due_date,
			priority, status, assigned_to, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.LeadID, f.Title, f.Description, f.DueDate,
		f.Priority, f.Status, f.AssignedTo, nullTime(f.CompletedAt),
		f.CreatedAt, f.UpdatedAt,
	)
	return err
}

func (r *FollowUpRepository) FindByID(ctx context.Context, id string) (*entity.FollowUp, error) {
	f, err := scanFollowUp(r.DB.QueryRowContext(ctx, followUpSelect+` WHERE f.id = $1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (r *FollowUpRepository) Update(ctx context.Context, f *entity.FollowUp) error {
	query := `
		UPDATE follow_ups SET
			title = $2, description = $3, due_date = $4, priority = $5,
			status = $6, assigned_to = $7, completed_at = $8, updated_at = $9
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		f.ID, f.Title, f.Description, f.DueDate, f.Priority,
		f.Status, f.AssignedTo, nullTime(f.CompletedAt), f.UpdatedAt,
	)
	return err
}

func (r *FollowUpRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM follow_ups WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List search matches title, description and the resolved lead name, so
// "Asha" finds follow-ups for Asha even when the title says "call back".
func (r *FollowUpRepository) List(ctx context.Context, q usecase.FollowUpQuery) ([]*entity.FollowUp, error) {
	query := followUpSelect + ` WHERE 1=1`
	args := []any{}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		query += ` AND (f.title ILIKE ` + p + ` OR f.description ILIKE ` + p +
			` OR (l.first_name || ' ' || l.last_name) ILIKE ` + p + `)`
	}
	if q.Status != "" && q.Status != "all" {
		args = append(args, q.Status)
		query += fmt.Sprintf(` AND f.status = $%d`, len(args))
	}
	if q.Priority != "" && q.Priority != "all" {
		args = append(args, q.Priority)
		query += fmt.Sprintf(` AND f.priority = $%d`, len(args))
	}
	query += ` ORDER BY f.due_date`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fus []*entity.FollowUp
	for rows.Next() {
		f, err := scanFollowUp(rows)
		if err != nil {
			return nil, err
		}
		fus = append(fus, f)
	}
	return fus, rows.Err()
}

func scanFollowUp(row rowScanner) (*entity.FollowUp, error) {
	var f entity.FollowUp
	var completedAt sql.NullTime

	err := row.Scan(
		&f.ID, &f.LeadID, &f.Title, &f.Description, &f.DueDate, &f.Priority,
		&f.Status, &f.AssignedTo, &completedAt, &f.CreatedAt, &f.UpdatedAt,
		&f.LeadName,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		t := completedAt.Time
		f.CompletedAt = &t
	}
	return &f, nil
}
