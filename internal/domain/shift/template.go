package shift

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyLabel   = errors.New("shift label cannot be empty")
	ErrLabelTooLong = errors.New("shift label is too long (max 100 characters)")
)

const MaxLabelLength = 100

// Template is a reusable named time-of-day slot ("Evening") attachable to a
// set of venues by identifier reference. Eligibility edits never cascade to
// existing bookings; a booking records the template id it was created against.
type Template struct {
	id        uuid.UUID
	label     string
	startsAt  TimeOfDay
	endsAt    TimeOfDay
	venueIDs  []uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewTemplate(label string, startsAt, endsAt TimeOfDay, venueIDs []uuid.UUID) (*Template, error) {
	if err := validateLabel(label); err != nil {
		return nil, err
	}
	if !startsAt.Before(endsAt) {
		return nil, ErrEmptyWindow
	}

	return &Template{
		id:       uuid.New(),
		label:    strings.TrimSpace(label),
		startsAt: startsAt,
		endsAt:   endsAt,
		venueIDs: dedupe(venueIDs),
	}, nil
}

func ReconstructTemplate(
	id uuid.UUID,
	label string,
	startsAt, endsAt TimeOfDay,
	venueIDs []uuid.UUID,
	createdAt, updatedAt time.Time,
) *Template {
	return &Template{
		id:        id,
		label:     label,
		startsAt:  startsAt,
		endsAt:    endsAt,
		venueIDs:  venueIDs,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (t *Template) Relabel(label string) error {
	if err := validateLabel(label); err != nil {
		return err
	}
	t.label = strings.TrimSpace(label)
	return nil
}

func (t *Template) Reschedule(startsAt, endsAt TimeOfDay) error {
	if !startsAt.Before(endsAt) {
		return ErrEmptyWindow
	}
	t.startsAt = startsAt
	t.endsAt = endsAt
	return nil
}

func (t *Template) AssignVenues(venueIDs []uuid.UUID) {
	t.venueIDs = dedupe(venueIDs)
}

// EligibleFor reports whether the template currently applies to the venue.
func (t *Template) EligibleFor(venueID uuid.UUID) bool {
	for _, id := range t.venueIDs {
		if id == venueID {
			return true
		}
	}
	return false
}

func validateLabel(label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyLabel
	}
	if len(label) > MaxLabelLength {
		return ErrLabelTooLong
	}
	return nil
}

func dedupe(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func (t *Template) ID() uuid.UUID       { return t.id }
func (t *Template) Label() string       { return t.label }
func (t *Template) StartsAt() TimeOfDay { return t.startsAt }
func (t *Template) EndsAt() TimeOfDay   { return t.endsAt }
func (t *Template) VenueIDs() []uuid.UUID {
	out := make([]uuid.UUID, len(t.venueIDs))
	copy(out, t.venueIDs)
	return out
}
func (t *Template) CreatedAt() time.Time { return t.createdAt }
func (t *Template) UpdatedAt() time.Time { return t.updatedAt }
