package http

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 9*time.Hour + 30*time.Minute},
		{in: "23:59", want: 23*time.Hour + 59*time.Minute},
		{in: "24:00", wantErr: true},
		{in: "9:30am", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		got, err := parseClock(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "parseClock(%q)", tt.in)
			continue
		}
		require.NoError(t, err, "parseClock(%q)", tt.in)
		assert.Equal(t, tt.want, got, "parseClock(%q)", tt.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", formatClock(0))
	assert.Equal(t, "09:05", formatClock(9*time.Hour+5*time.Minute))
	assert.Equal(t, "17:30", formatClock(17*time.Hour+30*time.Minute))
}

func TestCreateOfferingRequestToServiceRequest(t *testing.T) {
	req := CreateOfferingRequest{
		Name:                 "Haircut",
		StartDate:            "2026-02-02",
		OpenTime:             "09:00",
		CloseTime:            "17:00",
		SlotDurationMinutes:  45,
		SlotFrequencyMinutes: 60,
		RecurrenceRule:       json.RawMessage(`{"kind":"weekly","weekdays":[1,3]}`),
	}

	got, err := req.ToServiceRequest()
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC), got.StartDate)
	assert.Equal(t, 9*time.Hour, got.OpenTime)
	assert.Equal(t, 17*time.Hour, got.CloseTime)
	assert.Equal(t, 45*time.Minute, got.SlotDuration)
	assert.Equal(t, time.Hour, got.SlotFrequency)
	assert.Equal(t, recurrence.Weekly{Days: []time.Weekday{time.Monday, time.Wednesday}}, got.Rule)
}

func TestCreateOfferingRequestRejectsBadFields(t *testing.T) {
	valid := CreateOfferingRequest{
		Name:                 "Haircut",
		StartDate:            "2026-02-02",
		OpenTime:             "09:00",
		CloseTime:            "17:00",
		SlotDurationMinutes:  45,
		SlotFrequencyMinutes: 60,
		RecurrenceRule:       json.RawMessage(`{"kind":"weekly","weekdays":[1]}`),
	}

	tests := []struct {
		name   string
		mutate func(*CreateOfferingRequest)
	}{
		{name: "Bad date", mutate: func(r *CreateOfferingRequest) { r.StartDate = "02/02/2026" }},
		{name: "Bad open time", mutate: func(r *CreateOfferingRequest) { r.OpenTime = "nine" }},
		{name: "Bad close time", mutate: func(r *CreateOfferingRequest) { r.CloseTime = "25:00" }},
		{name: "Unknown rule kind", mutate: func(r *CreateOfferingRequest) { r.RecurrenceRule = json.RawMessage(`{"kind":"daily"}`) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)
			_, err := req.ToServiceRequest()
			assert.Error(t, err)
		})
	}
}
