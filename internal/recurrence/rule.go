package recurrence

import (
	"encoding/json"
	"fmt"
	"time"
)

// OrdinalWeek identifies which occurrence of a weekday within a month a
// monthly-relative rule targets.
type OrdinalWeek int

const (
	OrdinalFirst  OrdinalWeek = 1
	OrdinalSecond OrdinalWeek = 2
	OrdinalThird  OrdinalWeek = 3
	// OrdinalLast targets the final occurrence of the weekday in the month.
	OrdinalLast OrdinalWeek = -1
)

// Valid reports whether w is one of the supported ordinal values.
func (w OrdinalWeek) Valid() bool {
	return w == OrdinalFirst || w == OrdinalSecond || w == OrdinalThird || w == OrdinalLast
}

// Rule is a closed set of recurrence patterns. Exactly three variants exist:
// Weekly, MonthlyAbsolute and MonthlyRelative. Resolution dispatches on the
// variant in a single place (NextOccurrence).
type Rule interface {
	isRule()
	// Empty reports whether the rule carries no entries. Empty rules are
	// invalid and fail resolution.
	Empty() bool
}

// Weekly repeats on a set of weekdays.
type Weekly struct {
	Days []time.Weekday
}

// MonthlyAbsolute repeats on fixed calendar day numbers (1..31).
// Day values are not clamped to shorter months; callers must only configure
// values valid for the months the service spans.
type MonthlyAbsolute struct {
	Days []int
}

// Occurrence pairs a weekday with the ordinal week it falls in.
type Occurrence struct {
	Weekday time.Weekday
	Week    OrdinalWeek
}

// MonthlyRelative repeats on ordinal weekday occurrences, e.g. the second
// Tuesday or the last Friday of each month.
type MonthlyRelative struct {
	Occurrences []Occurrence
}

func (Weekly) isRule()          {}
func (MonthlyAbsolute) isRule() {}
func (MonthlyRelative) isRule() {}

func (r Weekly) Empty() bool          { return len(r.Days) == 0 }
func (r MonthlyAbsolute) Empty() bool { return len(r.Days) == 0 }
func (r MonthlyRelative) Empty() bool { return len(r.Occurrences) == 0 }

const (
	kindWeekly          = "weekly"
	kindMonthlyAbsolute = "monthly_absolute"
	kindMonthlyRelative = "monthly_relative"
)

// envelope is the wire/storage form of a Rule: a kind tag plus the payload
// fields of the matching variant.
type envelope struct {
	Kind        string         `json:"kind"`
	Weekdays    []time.Weekday `json:"weekdays,omitempty"`
	Days        []int          `json:"days,omitempty"`
	Occurrences []occurrenceDoc `json:"occurrences,omitempty"`
}

type occurrenceDoc struct {
	Weekday time.Weekday `json:"weekday"`
	Week    OrdinalWeek  `json:"week"`
}

// MarshalRule encodes a rule into its JSON envelope form, as stored in the
// offerings table and exchanged over the API.
func MarshalRule(r Rule) ([]byte, error) {
	var env envelope
	switch v := r.(type) {
	case Weekly:
		env.Kind = kindWeekly
		env.Weekdays = v.Days
	case MonthlyAbsolute:
		env.Kind = kindMonthlyAbsolute
		env.Days = v.Days
	case MonthlyRelative:
		env.Kind = kindMonthlyRelative
		for _, occ := range v.Occurrences {
			env.Occurrences = append(env.Occurrences, occurrenceDoc(occ))
		}
	default:
		return nil, fmt.Errorf("unknown recurrence rule type %T", r)
	}
	return json.Marshal(env)
}

// UnmarshalRule decodes the JSON envelope form back into a Rule.
func UnmarshalRule(data []byte) (Rule, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode recurrence rule failed: %w", err)
	}

	switch env.Kind {
	case kindWeekly:
		return Weekly{Days: env.Weekdays}, nil
	case kindMonthlyAbsolute:
		return MonthlyAbsolute{Days: env.Days}, nil
	case kindMonthlyRelative:
		occs := make([]Occurrence, 0, len(env.Occurrences))
		for _, doc := range env.Occurrences {
			occs = append(occs, Occurrence(doc))
		}
		return MonthlyRelative{Occurrences: occs}, nil
	default:
		return nil, fmt.Errorf("unknown recurrence rule kind %q", env.Kind)
	}
}
