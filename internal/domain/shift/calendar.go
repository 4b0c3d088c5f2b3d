package shift

import (
	"github.com/google/uuid"
)

// InstanceKey identifies the atomic bookable unit: one template on one date at
// one venue. Instances are derived on demand, never persisted on their own.
type InstanceKey struct {
	VenueID    uuid.UUID
	Date       Date
	TemplateID uuid.UUID
}

// Instance is an InstanceKey fleshed out with the template's display data.
type Instance struct {
	Key      InstanceKey
	Label    string
	StartsAt TimeOfDay
	EndsAt   TimeOfDay
}

// ExpandInstances realizes every template eligible for venueID on every day of
// the range. Pure function of its inputs: safe to call concurrently and
// repeatedly. Templates not eligible for the venue are skipped, which yields an
// empty result rather than an error when nothing applies.
func ExpandInstances(venueID uuid.UUID, templates []*Template, dateRange DateRange) []Instance {
	eligible := make([]*Template, 0, len(templates))
	for _, t := range templates {
		if t.EligibleFor(venueID) {
			eligible = append(eligible, t)
		}
	}
	if len(eligible) == 0 {
		return nil
	}

	days := dateRange.Days()
	instances := make([]Instance, 0, len(days)*len(eligible))
	for _, day := range days {
		for _, t := range eligible {
			instances = append(instances, Instance{
				Key: InstanceKey{
					VenueID:    venueID,
					Date:       day,
					TemplateID: t.ID(),
				},
				Label:    t.Label(),
				StartsAt: t.StartsAt(),
				EndsAt:   t.EndsAt(),
			})
		}
	}
	return instances
}
