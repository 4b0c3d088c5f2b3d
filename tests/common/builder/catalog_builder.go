//go:build unit || e2e

package builder

import (
	"time"

	"venuebook/internal/domain/catalog"
	"venuebook/internal/domain/shift"
	domvenue "venuebook/internal/domain/venue"
	reqdto "venuebook/internal/handler/dto/request"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
)

type VenueBuilder struct {
	ID       uuid.UUID
	Name     string
	Location string
	Capacity int
	Active   bool
	Now      time.Time
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:       uuid.New(),
		Name:     "Harbor Hall",
		Location: "12 Quay Street",
		Capacity: 80,
		Active:   true,
		Now:      time.Now(),
	}
}

func (v *VenueBuilder) WithID(id uuid.UUID) *VenueBuilder {
	v.ID = id
	return v
}

func (v *VenueBuilder) WithCapacity(capacity int) *VenueBuilder {
	v.Capacity = capacity
	return v
}

func (v *VenueBuilder) AsInactive() *VenueBuilder {
	v.Active = false
	return v
}

func (v *VenueBuilder) BuildDomain() *domvenue.Venue {
	return domvenue.ReconstructVenue(v.ID, v.Name, v.Location, v.Capacity, v.Active, v.Now, v.Now)
}

func (v *VenueBuilder) BuildCreateRequestDTO() reqdto.CreateVenueRequest {
	return reqdto.CreateVenueRequest{
		Name:     v.Name,
		Location: v.Location,
		Capacity: v.Capacity,
	}
}

func (v *VenueBuilder) BuildView() *queries.VenueView {
	return &queries.VenueView{
		ID:        v.ID,
		Name:      v.Name,
		Location:  v.Location,
		Capacity:  v.Capacity,
		IsActive:  v.Active,
		CreatedAt: v.Now,
		UpdatedAt: v.Now,
	}
}

type TemplateBuilder struct {
	ID       uuid.UUID
	Label    string
	StartsAt string
	EndsAt   string
	VenueIDs []uuid.UUID
	Now      time.Time
}

func NewTemplateBuilder() *TemplateBuilder {
	return &TemplateBuilder{
		ID:       uuid.New(),
		Label:    "Dinner",
		StartsAt: "18:00",
		EndsAt:   "22:00",
		VenueIDs: []uuid.UUID{uuid.New()},
		Now:      time.Now(),
	}
}

func (t *TemplateBuilder) WithID(id uuid.UUID) *TemplateBuilder {
	t.ID = id
	return t
}

func (t *TemplateBuilder) WithLabel(label string) *TemplateBuilder {
	t.Label = label
	return t
}

func (t *TemplateBuilder) WithWindow(startsAt, endsAt string) *TemplateBuilder {
	t.StartsAt = startsAt
	t.EndsAt = endsAt
	return t
}

func (t *TemplateBuilder) WithVenueIDs(ids ...uuid.UUID) *TemplateBuilder {
	t.VenueIDs = ids
	return t
}

func (t *TemplateBuilder) BuildDomain() *shift.Template {
	startsAt, _ := shift.NewTimeOfDay(t.StartsAt)
	endsAt, _ := shift.NewTimeOfDay(t.EndsAt)
	return shift.ReconstructTemplate(t.ID, t.Label, startsAt, endsAt, t.VenueIDs, t.Now, t.Now)
}

func (t *TemplateBuilder) BuildRequestDTO() reqdto.ShiftTemplateRequest {
	return reqdto.ShiftTemplateRequest{
		Label:    t.Label,
		StartsAt: t.StartsAt,
		EndsAt:   t.EndsAt,
		VenueIDs: t.VenueIDs,
	}
}

func (t *TemplateBuilder) BuildView() *queries.TemplateView {
	return &queries.TemplateView{
		ID:       t.ID,
		Label:    t.Label,
		StartsAt: t.StartsAt,
		EndsAt:   t.EndsAt,
		VenueIDs: t.VenueIDs,
	}
}

type PackageBuilder struct {
	ID          uuid.UUID
	Name        string
	Description string
	PriceCents  int64
	PerPerson   bool
	Active      bool
	Now         time.Time
}

func NewPackageBuilder() *PackageBuilder {
	return &PackageBuilder{
		ID:          uuid.New(),
		Name:        "Standard Course",
		Description: "Three courses with welcome drink",
		PriceCents:  5500,
		PerPerson:   true,
		Active:      true,
		Now:         time.Now(),
	}
}

func (p *PackageBuilder) WithID(id uuid.UUID) *PackageBuilder {
	p.ID = id
	return p
}

func (p *PackageBuilder) AsInactive() *PackageBuilder {
	p.Active = false
	return p
}

func (p *PackageBuilder) BuildDomain() *catalog.Package {
	return catalog.ReconstructPackage(p.ID, p.Name, p.Description, p.PriceCents, p.PerPerson, p.Active, p.Now, p.Now)
}

func (p *PackageBuilder) BuildCreateRequestDTO() reqdto.CreatePackageRequest {
	return reqdto.CreatePackageRequest{
		Name:        p.Name,
		Description: p.Description,
		PriceCents:  p.PriceCents,
		PerPerson:   p.PerPerson,
	}
}

type MenuItemBuilder struct {
	ID         uuid.UUID
	Name       string
	PriceCents int64
	PerPerson  bool
	Active     bool
	Now        time.Time
}

func NewMenuItemBuilder() *MenuItemBuilder {
	return &MenuItemBuilder{
		ID:         uuid.New(),
		Name:       "Oysters",
		PriceCents: 1200,
		PerPerson:  false,
		Active:     true,
		Now:        time.Now(),
	}
}

func (m *MenuItemBuilder) WithID(id uuid.UUID) *MenuItemBuilder {
	m.ID = id
	return m
}

func (m *MenuItemBuilder) AsInactive() *MenuItemBuilder {
	m.Active = false
	return m
}

func (m *MenuItemBuilder) BuildDomain() *catalog.MenuItem {
	return catalog.ReconstructMenuItem(m.ID, m.Name, m.PriceCents, m.PerPerson, m.Active, m.Now, m.Now)
}

func (m *MenuItemBuilder) BuildCreateRequestDTO() reqdto.CreateMenuItemRequest {
	return reqdto.CreateMenuItemRequest{
		Name:       m.Name,
		PriceCents: m.PriceCents,
		PerPerson:  m.PerPerson,
	}
}
