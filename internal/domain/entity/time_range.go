package entity

import (
	"fmt"
	"time"
)

const timeRangeLayout = "2006-01-02 15:04"

// TimeRange is a [Start, End) interval
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid reports whether Start strictly precedes End
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps reports whether r and other share an instant. With inclusive set,
// touching endpoints count as overlapping.
func (r TimeRange) Overlaps(other TimeRange, inclusive bool) bool {
	if inclusive {
		return !other.Start.After(r.End) && !other.End.Before(r.Start)
	}
	return other.Start.Before(r.End) && other.End.After(r.Start)
}

// In returns the range expressed in loc
func (r TimeRange) In(loc *time.Location) TimeRange {
	return TimeRange{Start: r.Start.In(loc), End: r.End.In(loc)}
}

func (r TimeRange) String() string {
	return fmt.Sprintf("From %s to %s", r.Start.Format(timeRangeLayout), r.End.Format(timeRangeLayout))
}

// OverlapFilter is a domain-level filter for finding a dentist's appointments
// that collide with a proposed window.
type OverlapFilter struct {
	DentistID int
	Range     TimeRange
	ExcludeID int  // 0 means no appointment is excluded
	Inclusive bool // touching endpoints count as a collision
}
