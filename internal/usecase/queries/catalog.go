package queries

import (
	"context"

	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/queries/catalog.go -package=queriesmock

var (
	ErrTemplateNotFound = errs.New("shift template not found")
	ErrPackageNotFound  = errs.New("package not found")
	ErrMenuItemNotFound = errs.New("menu item not found")
)

// CatalogQueries serves the public read side of venues, shift templates and
// the package/menu catalog.
type CatalogQueries interface {
	GetVenue(ctx context.Context, id uuid.UUID) (*VenueView, error)
	ListVenues(ctx context.Context, activeOnly bool) ([]*VenueView, error)
	ListVenueShifts(ctx context.Context, venueID uuid.UUID) ([]*TemplateView, error)
	ListShiftTemplates(ctx context.Context) ([]*TemplateView, error)
	GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error)
	ListPackages(ctx context.Context, activeOnly bool) ([]*PackageView, error)
	ListMenuItems(ctx context.Context, activeOnly bool) ([]*MenuItemView, error)
}

type catalogQueriesImpl struct {
	uow       shared.UnitOfWork
	venues    shared.VenueRepository
	templates shared.TemplateRepository
	packages  shared.PackageRepository
	menuItems shared.MenuItemRepository
}

func NewCatalogQueries(
	uow shared.UnitOfWork,
	venues shared.VenueRepository,
	templates shared.TemplateRepository,
	packages shared.PackageRepository,
	menuItems shared.MenuItemRepository,
) CatalogQueries {
	return &catalogQueriesImpl{
		uow:       uow,
		venues:    venues,
		templates: templates,
		packages:  packages,
		menuItems: menuItems,
	}
}

func (q *catalogQueriesImpl) GetVenue(ctx context.Context, id uuid.UUID) (*VenueView, error) {
	var view *VenueView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		v, err := q.venues.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}
		view = venueView(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

func (q *catalogQueriesImpl) ListVenues(ctx context.Context, activeOnly bool) ([]*VenueView, error) {
	var views []*VenueView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		venues, err := q.venues.List(ctx, dbtx, activeOnly)
		if err != nil {
			return errs.Wrap(err, "failed to list venues")
		}
		views = make([]*VenueView, 0, len(venues))
		for _, v := range venues {
			views = append(views, venueView(v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListVenueShifts(ctx context.Context, venueID uuid.UUID) ([]*TemplateView, error) {
	var views []*TemplateView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if _, err := q.venues.FindByID(ctx, dbtx, venueID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		templates, err := q.templates.ListForVenue(ctx, dbtx, venueID)
		if err != nil {
			return errs.Wrap(err, "failed to list venue shift templates")
		}
		views = templateViews(templates)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListShiftTemplates(ctx context.Context) ([]*TemplateView, error) {
	var views []*TemplateView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		templates, err := q.templates.List(ctx, dbtx)
		if err != nil {
			return errs.Wrap(err, "failed to list shift templates")
		}
		views = templateViews(templates)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetPackage(ctx context.Context, id uuid.UUID) (*PackageView, error) {
	var view PackageView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		p, err := q.packages.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPackageNotFound
			}
			return errs.Wrap(err, "failed to load package")
		}
		return copier.Copy(&view, p)
	})
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (q *catalogQueriesImpl) ListPackages(ctx context.Context, activeOnly bool) ([]*PackageView, error) {
	var views []*PackageView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		packages, err := q.packages.List(ctx, dbtx, activeOnly)
		if err != nil {
			return errs.Wrap(err, "failed to list packages")
		}
		views = make([]*PackageView, 0, len(packages))
		for _, p := range packages {
			var view PackageView
			if err := copier.Copy(&view, p); err != nil {
				return errs.Wrap(err, "failed to map package view")
			}
			views = append(views, &view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func (q *catalogQueriesImpl) ListMenuItems(ctx context.Context, activeOnly bool) ([]*MenuItemView, error) {
	var views []*MenuItemView
	err := q.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		items, err := q.menuItems.List(ctx, dbtx, activeOnly)
		if err != nil {
			return errs.Wrap(err, "failed to list menu items")
		}
		views = make([]*MenuItemView, 0, len(items))
		for _, m := range items {
			var view MenuItemView
			if err := copier.Copy(&view, m); err != nil {
				return errs.Wrap(err, "failed to map menu item view")
			}
			views = append(views, &view)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return views, nil
}

func venueView(v *venue.Venue) *VenueView {
	var view VenueView
	// copier maps getter methods onto the equally named view fields.
	_ = copier.Copy(&view, v)
	return &view
}

func templateViews(templates []*shift.Template) []*TemplateView {
	views := make([]*TemplateView, 0, len(templates))
	for _, t := range templates {
		views = append(views, &TemplateView{
			ID:       t.ID(),
			Label:    t.Label(),
			StartsAt: t.StartsAt().String(),
			EndsAt:   t.EndsAt().String(),
			VenueIDs: t.VenueIDs(),
		})
	}
	return views
}
