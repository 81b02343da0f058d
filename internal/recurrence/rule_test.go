package recurrence

import (
	"reflect"
	"testing"
	"time"
)

func TestRuleEnvelopeRoundTrip(t *testing.T) {
	rules := []Rule{
		Weekly{Days: []time.Weekday{time.Monday, time.Thursday}},
		MonthlyAbsolute{Days: []int{1, 15}},
		MonthlyRelative{Occurrences: []Occurrence{
			{Weekday: time.Tuesday, Week: OrdinalSecond},
			{Weekday: time.Friday, Week: OrdinalLast},
		}},
	}

	for _, rule := range rules {
		data, err := MarshalRule(rule)
		if err != nil {
			t.Fatalf("MarshalRule(%#v): %v", rule, err)
		}
		got, err := UnmarshalRule(data)
		if err != nil {
			t.Fatalf("UnmarshalRule(%s): %v", data, err)
		}
		if !reflect.DeepEqual(got, rule) {
			t.Errorf("round trip: got %#v, want %#v", got, rule)
		}
	}
}

func TestUnmarshalRuleUnknownKind(t *testing.T) {
	if _, err := UnmarshalRule([]byte(`{"kind":"daily"}`)); err == nil {
		t.Error("expected error for unknown rule kind")
	}
}
