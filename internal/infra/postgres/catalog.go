package postgres

import (
	"context"
	"time"

	"venuebook/internal/domain/catalog"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PackageRepository struct{}

func NewPackageRepository() *PackageRepository {
	return &PackageRepository{}
}

func (r *PackageRepository) Create(ctx context.Context, dbtx db.DBTX, p *catalog.Package) error {
	const query = `
		INSERT INTO packages (id, name, description, price_cents, per_person, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now(), now())
	`

	_, err := dbtx.Exec(ctx, query,
		p.ID(), p.Name(), p.Description(), p.PriceCents(), p.PerPerson(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert package", err)
	}
	return nil
}

func (r *PackageRepository) Update(ctx context.Context, dbtx db.DBTX, p *catalog.Package) error {
	const query = `
		UPDATE packages
		SET name = $2, description = $3, price_cents = $4, per_person = $5, active = $6, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query,
		p.ID(), p.Name(), p.Description(), p.PriceCents(), p.PerPerson(), p.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update package", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *PackageRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*catalog.Package, error) {
	const query = `
		SELECT id, name, description, price_cents, per_person, active, created_at, updated_at
		FROM packages
		WHERE id = $1
	`

	return scanPackage(dbtx.QueryRow(ctx, query, id))
}

func (r *PackageRepository) List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*catalog.Package, error) {
	query := `
		SELECT id, name, description, price_cents, per_person, active, created_at, updated_at
		FROM packages
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages", err)
	}
	defer rows.Close()

	var packages []*catalog.Package
	for rows.Next() {
		p, err := scanPackage(rows)
		if err != nil {
			return nil, err
		}
		packages = append(packages, p)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate packages", err)
	}
	return packages, nil
}

func scanPackage(row pgx.Row) (*catalog.Package, error) {
	var (
		id                   uuid.UUID
		name, description    string
		priceCents           int64
		perPerson, active    bool
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &name, &description, &priceCents, &perPerson, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan package", err)
	}
	return catalog.ReconstructPackage(id, name, description, priceCents, perPerson, active, createdAt, updatedAt), nil
}

type MenuItemRepository struct{}

func NewMenuItemRepository() *MenuItemRepository {
	return &MenuItemRepository{}
}

func (r *MenuItemRepository) Create(ctx context.Context, dbtx db.DBTX, m *catalog.MenuItem) error {
	const query = `
		INSERT INTO menu_items (id, name, price_cents, per_person, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`

	_, err := dbtx.Exec(ctx, query, m.ID(), m.Name(), m.PriceCents(), m.PerPerson(), m.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to insert menu item", err)
	}
	return nil
}

func (r *MenuItemRepository) Update(ctx context.Context, dbtx db.DBTX, m *catalog.MenuItem) error {
	const query = `
		UPDATE menu_items
		SET name = $2, price_cents = $3, per_person = $4, active = $5, updated_at = now()
		WHERE id = $1
	`

	tag, err := dbtx.Exec(ctx, query, m.ID(), m.Name(), m.PriceCents(), m.PerPerson(), m.IsActive())
	if err != nil {
		return infra.WrapRepoErr("failed to update menu item", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("menu item not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}

func (r *MenuItemRepository) FindByID(ctx context.Context, dbtx db.DBTX, id uuid.UUID) (*catalog.MenuItem, error) {
	const query = `
		SELECT id, name, price_cents, per_person, active, created_at, updated_at
		FROM menu_items
		WHERE id = $1
	`

	return scanMenuItem(dbtx.QueryRow(ctx, query, id))
}

func (r *MenuItemRepository) List(ctx context.Context, dbtx db.DBTX, activeOnly bool) ([]*catalog.MenuItem, error) {
	query := `
		SELECT id, name, price_cents, per_person, active, created_at, updated_at
		FROM menu_items
	`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := dbtx.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list menu items", err)
	}
	defer rows.Close()

	var items []*catalog.MenuItem
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate menu items", err)
	}
	return items, nil
}

// CountExisting reports how many of the given ids exist as active menu items,
// letting callers detect unknown or retired selections in one round trip.
func (r *MenuItemRepository) CountExisting(ctx context.Context, dbtx db.DBTX, ids []uuid.UUID) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	const query = `SELECT count(*) FROM menu_items WHERE id = ANY($1) AND active`

	var count int
	if err := dbtx.QueryRow(ctx, query, ids).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count menu items", err)
	}
	return count, nil
}

func scanMenuItem(row pgx.Row) (*catalog.MenuItem, error) {
	var (
		id                   uuid.UUID
		name                 string
		priceCents           int64
		perPerson, active    bool
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &name, &priceCents, &perPerson, &active, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan menu item", err)
	}
	return catalog.ReconstructMenuItem(id, name, priceCents, perPerson, active, createdAt, updatedAt), nil
}
