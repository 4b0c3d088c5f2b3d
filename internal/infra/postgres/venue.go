package postgres

import (
	"context"
	"time"

	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type VenueRepository struct{}

func NewVenueRepository() *VenueRepository {
	return &VenueRepository{}
}

func (r *VenueRepository) Create(ctx context.Context, dbtx db.DBTX, v *venue.Venue) error {
	const query = `
		INSERT INTO venues (id, name, location, capacity, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`

	_, err := dbtx.Exec(ctx, query, v.ID(), v.Name(), v.Location(), v.Capacity(), v.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to insert venue", err)
	}
	return nil
}

func (r *VenueRepository) Update(ctx context.Context, dbtx db.DBTX, v *venue.Venue) error {
	const query = `
		UPDATE venues
		SET name = $2, location = $3, capacity = $4, active = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, v.ID(), v.Name(), v.Location(), v.Capacity(), v.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update venue", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("venue not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *VenueRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*venue.Venue, error) {
	const query = `
		SELECT id, name, location, capacity, active, created_at, updated_at
		FROM venues
		WHERE id = $1
	`

	v, err := scanVenue(dbtx.QueryRow(ctx, query, id))
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, infra.WrapRepoErr("venue not found", err, infra.KindNotFound)
		}
		return nil, err
	}
	return v, nil
}

func (r *VenueRepository) List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*venue.Venue, error) {
	query := `
		SELECT id, name, location, capacity, active, created_at, updated_at
		FROM venues
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list venues", err)
	}
	defer rows.Close()

	var venues []*venue.Venue
	for rows.Next() {
		v, err := scanVenue(rows)
		if err != nil {
			return nil, err
		}
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate venues", err)
	}
	return venues, nil
}

func scanVenue(row pgx.Row) (*venue.Venue, error) {
	var (
		id                   uuid.UUID
		name, location       string
		capacity             int
		active               bool
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &name, &location, &capacity, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan venue", err)
	}

	return venue.ReconstructVenue(id, name, location, capacity, active, createdAt, updatedAt), nil
}
