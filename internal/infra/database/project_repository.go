package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/anvika-estates/crm-backend/internal/entity"
)

type ProjectRepository struct {
	DB *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{DB: db}
}

func (r *ProjectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	query := `SELECT id, name, location, description, amenities, created_at FROM projects WHERE id = $1`

	var p entity.Project
	var amenities []string
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Location, &p.Description, pq.Array(&amenities), &p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if amenities == nil {
		amenities = []string{}
	}
	p.Amenities = amenities
	return &p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	query := `SELECT id, name, location, description, amenities, created_at FROM projects ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*entity.Project
	for rows.Next() {
		var p entity.Project
		var amenities []string
		if err := rows.Scan(&p.ID, &p.Name, &p.Location, &p.Description, pq.Array(&amenities), &p.CreatedAt); err != nil {
			return nil, err
		}
		if amenities == nil {
			amenities = []string{}
		}
		p.Amenities = amenities
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

type PlotRepository struct {
	DB *sql.DB
}

func NewPlotRepository(db *sql.DB) *PlotRepository {
	return &PlotRepository{DB: db}
}

func (r *PlotRepository) List(ctx context.Context, projectID, status string) ([]*entity.Plot, error) {
	query := `SELECT id, project_id, plot_number, area_sqft, price, facing, status, created_at
		FROM plots WHERE 1=1`
	args := []any{}

	if projectID != "" {
		args = append(args, projectID)
		query += fmt.Sprintf(` AND project_id = $%d`, len(args))
	}
	if status != "" && status != "all" {
		args = append(args, status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}
	query += ` ORDER BY plot_number`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var plots []*entity.Plot
	for rows.Next() {
		var p entity.Plot
		if err := rows.Scan(&p.ID, &p.ProjectID, &p.PlotNumber, &p.AreaSqft, &p.Price, &p.Facing, &p.Status, &p.CreatedAt); err != nil {
			return nil, err
		}
		plots = append(plots, &p)
	}
	return plots, rows.Err()
}
