package consultation

import "time"

// Priority is the age-derived triage label shown on doctor dashboards.
// Labels are the Spanish strings the UI renders verbatim.
type Priority string

const (
	PriorityHigh   Priority = "Alta"
	PriorityMedium Priority = "Media"
	PriorityLow    Priority = "Baja"
)

var nowFunc = time.Now // mockable

// ClassifyPriority buckets a document by its age: up to 24h is Alta, up to
// 48h is Media, older is Baja. Both bounds are inclusive (exactly 24.0h is
// still Alta). A zero timestamp (the decode result of a missing or
// malformed createdAt) ages out to Baja, keeping unparseable documents at
// the bottom of the triage list rather than failing the dashboard.
func ClassifyPriority(createdAt time.Time) Priority {
	ageHours := nowFunc().Sub(createdAt).Hours()
	switch {
	case ageHours <= 24:
		return PriorityHigh
	case ageHours <= 48:
		return PriorityMedium
	default:
		return PriorityLow
	}
}
