package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type BookingView struct {
	ID              uuid.UUID   `json:"id"`
	VenueID         uuid.UUID   `json:"venue_id"`
	VenueName       string      `json:"venue_name"`
	ShiftDate       string      `json:"shift_date"`
	ShiftTemplateID uuid.UUID   `json:"shift_template_id"`
	ShiftLabel      string      `json:"shift_label"`
	CustomerID      uuid.UUID   `json:"customer_id"`
	PackageID       uuid.UUID   `json:"package_id"`
	PackageName     string      `json:"package_name"`
	MenuItemIDs     []uuid.UUID `json:"menu_item_ids"`
	GuestCount      int         `json:"guest_count"`
	Status          string      `json:"status"`
	CancelReason    *string     `json:"cancel_reason,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	ConfirmedAt     *time.Time  `json:"confirmed_at,omitempty"`
	CancelledAt     *time.Time  `json:"cancelled_at,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	VenueID    uuid.UUID `json:"venue_id"`
	VenueName  string    `json:"venue_name"`
	ShiftDate  string    `json:"shift_date"`
	ShiftLabel string    `json:"shift_label"`
	GuestCount int       `json:"guest_count"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AvailabilityStatus classifies a shift instance for display. A pending hold
// and a confirmed booking both block the slot but render differently.
type AvailabilityStatus string

const (
	SlotFree   AvailabilityStatus = "free"
	SlotHeld   AvailabilityStatus = "held"
	SlotBooked AvailabilityStatus = "booked"
)

type SlotView struct {
	Date       string             `json:"date"`
	TemplateID uuid.UUID          `json:"shift_template_id"`
	Label      string             `json:"label"`
	StartsAt   string             `json:"starts_at"`
	EndsAt     string             `json:"ends_at"`
	Status     AvailabilityStatus `json:"status"`
}

type AvailabilityView struct {
	VenueID uuid.UUID  `json:"venue_id"`
	From    string     `json:"from"`
	To      string     `json:"to"`
	Slots   []SlotView `json:"slots"`
}

type VenueView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Capacity  int       `json:"capacity"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type TemplateView struct {
	ID       uuid.UUID   `json:"id"`
	Label    string      `json:"label"`
	StartsAt string      `json:"starts_at"`
	EndsAt   string      `json:"ends_at"`
	VenueIDs []uuid.UUID `json:"venue_ids"`
}

type PackageView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	PriceCents  int64     `json:"price_cents"`
	PerPerson   bool      `json:"per_person"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MenuItemView struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	PriceCents int64     `json:"price_cents"`
	PerPerson  bool      `json:"per_person"`
	IsActive   bool      `json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
