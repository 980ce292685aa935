package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/anvika-estates/crm-backend/internal/entity"
	"github.com/anvika-estates/crm-backend/internal/usecase"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `id, first_name, last_name, email, phone, company, status, source,
	interest_level, budget, notes, property_interests, assigned_to,
	last_contact_date, created_at, updated_at`

func (r *LeadRepository) Create(ctx context.Context, l *entity.Lead) error {
	query := `
		INSERT INTO leads (` + leadColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone, l.Company,
		l.Status, l.Source, l.InterestLevel, l.Budget, l.Notes,
		pq.Array(l.PropertyInterests), l.AssignedTo,
		nullTime(l.LastContactDate), l.CreatedAt, l.UpdatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("lead %s already exists", l.ID)
		}
		return err
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id string) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	l, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LeadRepository) Update(ctx context.Context, l *entity.Lead) error {
	query := `
		UPDATE leads SET
			first_name = $2, last_name = $3, email = $4, phone = $5,
			company = $6, status = $7, source = $8, interest_level = $9,
			budget = $10, notes = $11, property_interests = $12,
			assigned_to = $13, last_contact_date = $14, updated_at = $15
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.FirstName, l.LastName, l.Email, l.Phone, l.Company,
		l.Status, l.Source, l.InterestLevel, l.Budget, l.Notes,
		pq.Array(l.PropertyInterests), l.AssignedTo,
		nullTime(l.LastContactDate), l.UpdatedAt,
	)
	return err
}

func (r *LeadRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// List filters search/status/source in SQL. The budget filter works on
// the parsed free-text budget and is applied by the service in Go.
func (r *LeadRepository) List(ctx context.Context, q usecase.LeadQuery) ([]*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1`
	args := []any{}

	if q.Search != "" {
		args = append(args, "%"+q.Search+"%")
		p := fmt.Sprintf("$%d", len(args))
		query += ` AND (first_name ILIKE ` + p + ` OR last_name ILIKE ` + p + ` OR email ILIKE ` + p + `)`
	}
	if q.Status != "" && q.Status != "all" {
		args = append(args, q.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	if q.Source != "" && q.Source != "all" {
		args = append(args, q.Source)
		query += fmt.Sprintf(` AND source = $%d`, len(args))
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		l, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var l entity.Lead
	var lastContact sql.NullTime
	var interests []string

	err := row.Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Email, &l.Phone, &l.Company,
		&l.Status, &l.Source, &l.InterestLevel, &l.Budget, &l.Notes,
		pq.Array(&interests), &l.AssignedTo, &lastContact,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if interests == nil {
		interests = []string{}
	}
	l.PropertyInterests = interests
	if lastContact.Valid {
		t := lastContact.Time
		l.LastContactDate = &t
	}
	return &l, nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}
