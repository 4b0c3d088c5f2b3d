package request

import (
	"venuebook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateVenueRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
}

func (r CreateVenueRequest) ToInput() commands.CreateVenueInput {
	return commands.CreateVenueInput{
		Name:     r.Name,
		Location: r.Location,
		Capacity: r.Capacity,
	}
}

type UpdateVenueRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
	Capacity *int    `json:"capacity,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func (r UpdateVenueRequest) ToInput() commands.UpdateVenueInput {
	return commands.UpdateVenueInput{
		Name:     r.Name,
		Location: r.Location,
		Capacity: r.Capacity,
		Active:   r.Active,
	}
}

type ShiftTemplateRequest struct {
	Label    string      `json:"label" binding:"required"`
	StartsAt string      `json:"starts_at" binding:"required"`
	EndsAt   string      `json:"ends_at" binding:"required"`
	VenueIDs []uuid.UUID `json:"venue_ids,omitempty"`
}

func (r ShiftTemplateRequest) ToInput() commands.ShiftTemplateInput {
	return commands.ShiftTemplateInput{
		Label:    r.Label,
		StartsAt: r.StartsAt,
		EndsAt:   r.EndsAt,
		VenueIDs: r.VenueIDs,
	}
}

type CreatePackageRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description,omitempty"`
	PriceCents  int64  `json:"price_cents" binding:"gte=0"`
	PerPerson   bool   `json:"per_person"`
}

func (r CreatePackageRequest) ToInput() commands.CreatePackageInput {
	return commands.CreatePackageInput{
		Name:        r.Name,
		Description: r.Description,
		PriceCents:  r.PriceCents,
		PerPerson:   r.PerPerson,
	}
}

type UpdatePackageRequest struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

func (r UpdatePackageRequest) ToInput() commands.UpdatePackageInput {
	return commands.UpdatePackageInput{
		Name:       r.Name,
		PriceCents: r.PriceCents,
		Active:     r.Active,
	}
}

type CreateMenuItemRequest struct {
	Name       string `json:"name" binding:"required"`
	PriceCents int64  `json:"price_cents" binding:"gte=0"`
	PerPerson  bool   `json:"per_person"`
}

func (r CreateMenuItemRequest) ToInput() commands.CreateMenuItemInput {
	return commands.CreateMenuItemInput{
		Name:       r.Name,
		PriceCents: r.PriceCents,
		PerPerson:  r.PerPerson,
	}
}

type UpdateMenuItemRequest struct {
	Name       *string `json:"name,omitempty"`
	PriceCents *int64  `json:"price_cents,omitempty"`
	Active     *bool   `json:"active,omitempty"`
}

func (r UpdateMenuItemRequest) ToInput() commands.UpdateMenuItemInput {
	return commands.UpdateMenuItemInput{
		Name:       r.Name,
		PriceCents: r.PriceCents,
		Active:     r.Active,
	}
}
