package response

import (
	"time"

	"venuebook/internal/domain/catalog"
	"venuebook/internal/domain/shift"
	"venuebook/internal/domain/venue"
	"venuebook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type VenueResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ShiftTemplateResponse struct {
	ID       uuid.UUID   `json:"id"`
	Label    string      `json:"label"`
	StartsAt string      `json:"startsAt"`
	EndsAt   string      `json:"endsAt"`
	VenueIDs []uuid.UUID `json:"venueIds"`
}

type PackageResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"priceCents"`
	PerPerson   bool      `json:"perPerson"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type MenuItemResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"priceCents"`
	PerPerson  bool      `json:"perPerson"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type SlotResponse struct {
	Date       string    `json:"date"`
	TemplateID uuid.UUID `json:"shiftTemplateId"`
	Label      string    `json:"label"`
	StartsAt   string    `json:"startsAt"`
	EndsAt     string    `json:"endsAt"`
	Status     string    `json:"status"`
}

type AvailabilityResponse struct {
	VenueID uuid.UUID      `json:"venueId"`
	From    string         `json:"from"`
	To      string         `json:"to"`
	Slots   []SlotResponse `json:"slots"`
}

func FromVenueView(rm *queries.VenueView) *VenueResponse {
	var resp VenueResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromVenueEntity(v *venue.Venue) *VenueResponse {
	var resp VenueResponse
	_ = copier.Copy(&resp, v)
	return &resp
}

func FromTemplateView(rm *queries.TemplateView) *ShiftTemplateResponse {
	var resp ShiftTemplateResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromTemplateEntity(t *shift.Template) *ShiftTemplateResponse {
	return &ShiftTemplateResponse{
		ID:       t.ID(),
		Label:    t.Label(),
		StartsAt: t.StartsAt().String(),
		EndsAt:   t.EndsAt().String(),
		VenueIDs: t.VenueIDs(),
	}
}

func FromPackageView(rm *queries.PackageView) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromPackageEntity(p *catalog.Package) *PackageResponse {
	var resp PackageResponse
	_ = copier.Copy(&resp, p)
	return &resp
}

func FromMenuItemView(rm *queries.MenuItemView) *MenuItemResponse {
	var resp MenuItemResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromMenuItemEntity(m *catalog.MenuItem) *MenuItemResponse {
	var resp MenuItemResponse
	_ = copier.Copy(&resp, m)
	return &resp
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]SlotResponse, 0, len(rm.Slots))
	for _, s := range rm.Slots {
		slots = append(slots, SlotResponse{
			Date:       s.Date,
			TemplateID: s.TemplateID,
			Label:      s.Label,
			StartsAt:   s.StartsAt,
			EndsAt:     s.EndsAt,
			Status:     string(s.Status),
		})
	}
	return &AvailabilityResponse{
		VenueID: rm.VenueID,
		From:    rm.From,
		To:      rm.To,
		Slots:   slots,
	}
}
