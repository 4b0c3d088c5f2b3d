package commands

import (
	"context"

	"venuebook/internal/domain/catalog"
	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/venue"
	"venuebook/internal/infra"
	"venuebook/internal/infra/db"
	"venuebook/internal/pkg/errs"
	"venuebook/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog.go -package=commandsmock

var ErrDomainValidation = errs.New("domain validation error")

type CreateVenueInput struct {
	Name     string
	Location string
	Capacity int
}

type UpdateVenueInput struct {
	Name     *string
	Location *string
	Capacity *int
	Active   *bool
}

type ShiftTemplateInput struct {
	Label    string
	StartsAt string
	EndsAt   string
	VenueIDs []uuid.UUID
}

type CreatePackageInput struct {
	Name        string
	Description string
	PriceCents  int64
	PerPerson   bool
}

type UpdatePackageInput struct {
	Name       *string
	PriceCents *int64
	Active     *bool
}

type CreateMenuItemInput struct {
	Name       string
	PriceCents int64
	PerPerson  bool
}

type UpdateMenuItemInput struct {
	Name       *string
	PriceCents *int64
	Active     *bool
}

// CatalogCommands is the admin write side of venues, shift templates and the
// package/menu catalog. None of these operations ever touch existing
// bookings: a deactivated venue or retired package stays referenced by the
// ledger rows that used it.
type CatalogCommands interface {
	CreateVenue(ctx context.Context, input CreateVenueInput) (*venue.Venue, error)
	UpdateVenue(ctx context.Context, id uuid.UUID, input UpdateVenueInput) (*venue.Venue, error)
	CreateShiftTemplate(ctx context.Context, input ShiftTemplateInput) (*shift.Template, error)
	UpdateShiftTemplate(ctx context.Context, id uuid.UUID, input ShiftTemplateInput) (*shift.Template, error)
	CreatePackage(ctx context.Context, input CreatePackageInput) (*catalog.Package, error)
	UpdatePackage(ctx context.Context, id uuid.UUID, input UpdatePackageInput) (*catalog.Package, error)
	CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*catalog.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id uuid.UUID, input UpdateMenuItemInput) (*catalog.MenuItem, error)
}

type catalogUseCaseImpl struct {
	uow          shared.UnitOfWork
	venueRepo    shared.VenueRepository
	templateRepo shared.TemplateRepository
	packageRepo  shared.PackageRepository
	menuItemRepo shared.MenuItemRepository
}

func NewCatalogUseCase(
	uow shared.UnitOfWork,
	venueRepo shared.VenueRepository,
	templateRepo shared.TemplateRepository,
	packageRepo shared.PackageRepository,
	menuItemRepo shared.MenuItemRepository,
) CatalogCommands {
	return &catalogUseCaseImpl{
		uow:          uow,
		venueRepo:    venueRepo,
		templateRepo: templateRepo,
		packageRepo:  packageRepo,
		menuItemRepo: menuItemRepo,
	}
}

func (u *catalogUseCaseImpl) CreateVenue(ctx context.Context, input CreateVenueInput) (*venue.Venue, error) {
	v, err := venue.NewVenue(input.Name, input.Location, input.Capacity)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := u.venueRepo.Create(ctx, dbtx, v); err != nil {
			return errs.Wrap(err, "failed to store venue")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (u *catalogUseCaseImpl) UpdateVenue(ctx context.Context, id uuid.UUID, input UpdateVenueInput) (*venue.Venue, error) {
	var updated *venue.Venue
	err := u.uow.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		v, err := u.venueRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to load venue")
		}

		if input.Name != nil {
			if err := v.Rename(*input.Name); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if input.Location != nil {
			v.Relocate(*input.Location)
		}
		if input.Capacity != nil {
			if err := v.ChangeCapacity(*input.Capacity); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if input.Active != nil {
			if *input.Active {
				v.Activate()
			} else {
				v.Deactivate()
			}
		}

		if err := u.venueRepo.Update(ctx, dbtx, v); err != nil {
			return errs.Wrap(err, "failed to update venue")
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *catalogUseCaseImpl) CreateShiftTemplate(ctx context.Context, input ShiftTemplateInput) (*shift.Template, error) {
	t, err := buildTemplate(input)
	if err != nil {
		return nil, err
	}

	err = u.uow.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := u.verifyVenues(ctx, dbtx, input.VenueIDs); err != nil {
			return err
		}
		if err := u.templateRepo.Create(ctx, dbtx, t); err != nil {
			return errs.Wrap(err, "failed to store shift template")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (u *catalogUseCaseImpl) UpdateShiftTemplate(ctx context.Context, id uuid.UUID, input ShiftTemplateInput) (*shift.Template, error) {
	var updated *shift.Template
	err := u.uow.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		t, err := u.templateRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrTemplateNotFound
			}
			return errs.Wrap(err, "failed to load shift template")
		}

		if err := t.Relabel(input.Label); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		startsAt, endsAt, err := parseWindow(input.StartsAt, input.EndsAt)
		if err != nil {
			return err
		}
		if err := t.Reschedule(startsAt, endsAt); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}
		if err := u.verifyVenues(ctx, dbtx, input.VenueIDs); err != nil {
			return err
		}
		t.AssignVenues(input.VenueIDs)

		if err := u.templateRepo.Update(ctx, dbtx, t); err != nil {
			return errs.Wrap(err, "failed to update shift template")
		}
		updated = t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *catalogUseCaseImpl) CreatePackage(ctx context.Context, input CreatePackageInput) (*catalog.Package, error) {
	p, err := catalog.NewPackage(input.Name, input.Description, input.PriceCents, input.PerPerson)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := u.packageRepo.Create(ctx, dbtx, p); err != nil {
			return errs.Wrap(err, "failed to store package")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (u *catalogUseCaseImpl) UpdatePackage(ctx context.Context, id uuid.UUID, input UpdatePackageInput) (*catalog.Package, error) {
	var updated *catalog.Package
	err := u.uow.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		p, err := u.packageRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPackageNotFound
			}
			return errs.Wrap(err, "failed to load package")
		}

		if input.Name != nil {
			if err := p.Rename(*input.Name); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if input.PriceCents != nil {
			if err := p.Reprice(*input.PriceCents); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if input.Active != nil {
			if *input.Active {
				p.Activate()
			} else {
				p.Deactivate()
			}
		}

		if err := u.packageRepo.Update(ctx, dbtx, p); err != nil {
			return errs.Wrap(err, "failed to update package")
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *catalogUseCaseImpl) CreateMenuItem(ctx context.Context, input CreateMenuItemInput) (*catalog.MenuItem, error) {
	m, err := catalog.NewMenuItem(input.Name, input.PriceCents, input.PerPerson)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = u.uow.WithDB(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		if err := u.menuItemRepo.Create(ctx, dbtx, m); err != nil {
			return errs.Wrap(err, "failed to store menu item")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (u *catalogUseCaseImpl) UpdateMenuItem(ctx context.Context, id uuid.UUID, input UpdateMenuItemInput) (*catalog.MenuItem, error) {
	var updated *catalog.MenuItem
	err := u.uow.Within(ctx, func(ctx context.Context, dbtx db.DBTX) error {
		m, err := u.menuItemRepo.FindByID(ctx, dbtx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrMenuItemNotFound
			}
			return errs.Wrap(err, "failed to load menu item")
		}

		if input.Name != nil {
			if err := m.Rename(*input.Name); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if input.PriceCents != nil {
			if err := m.Reprice(*input.PriceCents); err != nil {
				return errs.Mark(err, ErrDomainValidation)
			}
		}
		if input.Active != nil {
			if *input.Active {
				m.Activate()
			} else {
				m.Deactivate()
			}
		}

		if err := u.menuItemRepo.Update(ctx, dbtx, m); err != nil {
			return errs.Wrap(err, "failed to update menu item")
		}
		updated = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *catalogUseCaseImpl) verifyVenues(ctx context.Context, dbtx db.DBTX, venueIDs []uuid.UUID) error {
	for _, venueID := range venueIDs {
		if _, err := u.venueRepo.FindByID(ctx, dbtx, venueID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrVenueNotFound
			}
			return errs.Wrap(err, "failed to verify venue")
		}
	}
	return nil
}

func buildTemplate(input ShiftTemplateInput) (*shift.Template, error) {
	startsAt, endsAt, err := parseWindow(input.StartsAt, input.EndsAt)
	if err != nil {
		return nil, err
	}
	t, err := shift.NewTemplate(input.Label, startsAt, endsAt, input.VenueIDs)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}
	return t, nil
}

func parseWindow(starts, ends string) (shift.TimeOfDay, shift.TimeOfDay, error) {
	startsAt, err := shift.NewTimeOfDay(starts)
	if err != nil {
		return shift.TimeOfDay{}, shift.TimeOfDay{}, errs.Mark(err, ErrDomainValidation)
	}
	endsAt, err := shift.NewTimeOfDay(ends)
	if err != nil {
		return shift.TimeOfDay{}, shift.TimeOfDay{}, errs.Mark(err, ErrDomainValidation)
	}
	return startsAt, endsAt, nil
}
