package postgres

import (
	"context"
	"time"

	"venuebook/internal/domain/shift"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type TemplateRepository struct{}

func NewTemplateRepository() *TemplateRepository {
	return &TemplateRepository{}
}

func (r *TemplateRepository) Create(ctx context.Context, dbtx db.DBTX, t *shift.Template) error {
	const query = `
		INSERT INTO shift_templates (id, label, starts_at_min, ends_at_min, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
	`

	_, err := dbtx.Exec(ctx, query, t.ID(), t.Label(), t.StartsAt().Minutes(), t.EndsAt().Minutes())
	if err != nil {
		return infra.WrapRepoErr("failed to insert shift template", err)
	}

	return r.replaceVenueLinks(ctx, dbtx, t)
}

func (r *TemplateRepository) Update(ctx context.Context, dbtx db.DBTX, t *shift.Template) error {
	const query = `
		UPDATE shift_templates
		SET label = $2, starts_at_min = $3, ends_at_min = $4, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, t.ID(), t.Label(), t.StartsAt().Minutes(), t.EndsAt().Minutes())
	if err != nil {
		return infra.WrapRepoErr("failed to update shift template", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("shift template not found", pgx.ErrNoRows, infra.KindNotFound)
	}

	if _, err := dbtx.Exec(ctx, `DELETE FROM shift_template_venues WHERE template_id = $1`, t.ID()); err != nil {
		return infra.WrapRepoErr("failed to clear template venue links", err)
	}
	return r.replaceVenueLinks(ctx, dbtx, t)
}

func (r *TemplateRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*shift.Template, error) {
	templates, err := r.query(ctx, dbtx, `WHERE st.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(templates) == 0 {
		return nil, infra.WrapRepoErr("shift template not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return templates[0], nil
}

func (r *TemplateRepository) ListForVenue(ctx context.Context, dbtx db.DBTX, venueID uuid.UUID) ([]*shift.Template, error) {
	return r.query(ctx, dbtx,
		`WHERE st.id IN (SELECT template_id FROM shift_template_venues WHERE venue_id = $1)`,
		venueID,
	)
}

func (r *TemplateRepository) List(ctx context.Context, dbtx db.DBTX) ([]*shift.Template, error) {
	return r.query(ctx, dbtx, ``)
}

func (r *TemplateRepository) query(ctx context.Context, dbtx db.DBTX, where string, args ...any) ([]*shift.Template, error) {
	query := `
		SELECT st.id, st.label, st.starts_at_min, st.ends_at_min,
		       COALESCE(array_agg(stv.venue_id) FILTER (WHERE stv.venue_id IS NOT NULL), '{}'),
		       st.created_at, st.updated_at
		FROM shift_templates st
		LEFT JOIN shift_template_venues stv ON stv.template_id = st.id
	` + where + `
		GROUP BY st.id
		ORDER BY st.starts_at_min
	`

	rows, err := dbtx.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query shift templates", err)
	}
	defer rows.Close()

	var templates []*shift.Template
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate shift templates", err)
	}
	return templates, nil
}

func (r *TemplateRepository) replaceVenueLinks(ctx context.Context, dbtx db.DBTX, t *shift.Template) error {
	for _, venueID := range t.VenueIDs() {
		_, err := dbtx.Exec(ctx,
			`INSERT INTO shift_template_venues (template_id, venue_id) VALUES ($1, $2)`,
			t.ID(), venueID,
		)
		if err != nil {
			return infra.WrapRepoErr("failed to link template to venue", err)
		}
	}
	return nil
}

func scanTemplate(row pgx.Row) (*shift.Template, error) {
	var (
		id                   uuid.UUID
		label                string
		startsMin, endsMin   int
		venueIDs             []uuid.UUID
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &label, &startsMin, &endsMin, &venueIDs, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan shift template", err)
	}

	startsAt, err := shift.TimeOfDayFromMinutes(startsMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt shift start time", err)
	}
	endsAt, err := shift.TimeOfDayFromMinutes(endsMin)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt shift end time", err)
	}

	return shift.ReconstructTemplate(id, label, startsAt, endsAt, venueIDs, createdAt, updatedAt), nil
}
