package catalog

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName     = errors.New("catalog item name cannot be empty")
	ErrNameTooLong   = errors.New("catalog item name is too long (max 255 characters)")
	ErrNegativePrice = errors.New("price cannot be negative")
)

const MaxNameLength = 255

// Package is a priced bundle a booking can reference. Packages never mutate
// booking state; the relation is by identifier only.
type Package struct {
	id          uuid.UUID
	name        string
	description string
	priceCents  int64
	perPerson   bool
	active      bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewPackage(name, description string, priceCents int64, perPerson bool) (*Package, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Package{
		id:          uuid.New(),
		name:        strings.TrimSpace(name),
		description: strings.TrimSpace(description),
		priceCents:  priceCents,
		perPerson:   perPerson,
		active:      true,
	}, nil
}

func ReconstructPackage(
	id uuid.UUID,
	name, description string,
	priceCents int64,
	perPerson, active bool,
	createdAt, updatedAt time.Time,
) *Package {
	return &Package{
		id:          id,
		name:        name,
		description: description,
		priceCents:  priceCents,
		perPerson:   perPerson,
		active:      active,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
}

// TotalCents prices the package for a party size.
func (p *Package) TotalCents(guestCount int) int64 {
	if p.perPerson {
		return p.priceCents * int64(guestCount)
	}
	return p.priceCents
}

func (p *Package) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	p.name = strings.TrimSpace(name)
	return nil
}

func (p *Package) Reprice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	p.priceCents = priceCents
	return nil
}

func (p *Package) Deactivate() { p.active = false }
func (p *Package) Activate()   { p.active = true }

func (p *Package) ID() uuid.UUID        { return p.id }
func (p *Package) Name() string         { return p.name }
func (p *Package) Description() string  { return p.description }
func (p *Package) PriceCents() int64    { return p.priceCents }
func (p *Package) PerPerson() bool      { return p.perPerson }
func (p *Package) IsActive() bool       { return p.active }
func (p *Package) CreatedAt() time.Time { return p.createdAt }
func (p *Package) UpdatedAt() time.Time { return p.updatedAt }

// MenuItem is an individually priced dish selectable on a booking.
type MenuItem struct {
	id         uuid.UUID
	name       string
	priceCents int64
	perPerson  bool
	active     bool
	createdAt  time.Time
	updatedAt  time.Time
}

func NewMenuItem(name string, priceCents int64, perPerson bool) (*MenuItem, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &MenuItem{
		id:         uuid.New(),
		name:       strings.TrimSpace(name),
		priceCents: priceCents,
		perPerson:  perPerson,
		active:     true,
	}, nil
}

func ReconstructMenuItem(
	id uuid.UUID,
	name string,
	priceCents int64,
	perPerson, active bool,
	createdAt, updatedAt time.Time,
) *MenuItem {
	return &MenuItem{
		id:         id,
		name:       name,
		priceCents: priceCents,
		perPerson:  perPerson,
		active:     active,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (m *MenuItem) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	m.name = strings.TrimSpace(name)
	return nil
}

func (m *MenuItem) Reprice(priceCents int64) error {
	if priceCents < 0 {
		return ErrNegativePrice
	}
	m.priceCents = priceCents
	return nil
}

func (m *MenuItem) Deactivate() { m.active = false }
func (m *MenuItem) Activate()   { m.active = true }

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func (m *MenuItem) ID() uuid.UUID        { return m.id }
func (m *MenuItem) Name() string         { return m.name }
func (m *MenuItem) PriceCents() int64    { return m.priceCents }
func (m *MenuItem) PerPerson() bool      { return m.perPerson }
func (m *MenuItem) IsActive() bool       { return m.active }
func (m *MenuItem) CreatedAt() time.Time { return m.createdAt }
func (m *MenuItem) UpdatedAt() time.Time { return m.updatedAt }
