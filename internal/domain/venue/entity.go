package venue

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyVenueName   = errors.New("venue name cannot be empty")
	ErrVenueNameTooLong = errors.New("venue name is too long (max 255 characters)")
	ErrInvalidCapacity  = errors.New("venue capacity must be positive")
)

const MaxVenueNameLength = 255

// Venue is a bookable location with finite capacity. Once referenced by a
// confirmed booking only non-breaking metadata (name, location) may change;
// capacity and the active flag are still editable but never rewrite history.
type Venue struct {
	id        uuid.UUID
	name      string
	location  string
	capacity  int
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

func NewVenue(name, location string, capacity int) (*Venue, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Venue{
		id:       uuid.New(),
		name:     strings.TrimSpace(name),
		location: strings.TrimSpace(location),
		capacity: capacity,
		active:   true,
	}, nil
}

func ReconstructVenue(
	id uuid.UUID,
	name, location string,
	capacity int,
	active bool,
	createdAt, updatedAt time.Time,
) *Venue {
	return &Venue{
		id:        id,
		name:      name,
		location:  location,
		capacity:  capacity,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (v *Venue) Rename(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	v.name = strings.TrimSpace(name)
	return nil
}

func (v *Venue) Relocate(location string) {
	v.location = strings.TrimSpace(location)
}

func (v *Venue) ChangeCapacity(capacity int) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}
	v.capacity = capacity
	return nil
}

func (v *Venue) Deactivate() {
	v.active = false
}

func (v *Venue) Activate() {
	v.active = true
}

// Fits reports whether guestCount can be hosted by this venue.
func (v *Venue) Fits(guestCount int) bool {
	return guestCount > 0 && guestCount <= v.capacity
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyVenueName
	}
	if len(name) > MaxVenueNameLength {
		return ErrVenueNameTooLong
	}
	return nil
}

func (v *Venue) ID() uuid.UUID        { return v.id }
func (v *Venue) Name() string         { return v.name }
func (v *Venue) Location() string     { return v.location }
func (v *Venue) Capacity() int        { return v.capacity }
func (v *Venue) IsActive() bool       { return v.active }
func (v *Venue) CreatedAt() time.Time { return v.createdAt }
func (v *Venue) UpdatedAt() time.Time { return v.updatedAt }
