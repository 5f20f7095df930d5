package valueobject

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriodOf(t *testing.T) {
	p := PeriodOf(time.Date(2025, time.January, 15, 10, 30, 0, 0, time.UTC))
	assert.Equal(t, 2025, p.Year)
	assert.Equal(t, time.January, p.Month)
	assert.Equal(t, "2025-01", p.String())
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2025-11")
	require.NoError(t, err)
	assert.Equal(t, Period{Year: 2025, Month: time.November}, p)

	_, err = ParsePeriod("2025-13")
	assert.Error(t, err)

	_, err = ParsePeriod("not-a-period")
	assert.Error(t, err)
}

func TestPeriod_Next(t *testing.T) {
	p := Period{Year: 2025, Month: time.November}
	assert.Equal(t, Period{Year: 2025, Month: time.December}, p.Next())

	// year rollover
	dec := Period{Year: 2025, Month: time.December}
	assert.Equal(t, Period{Year: 2026, Month: time.January}, dec.Next())
}

func TestPeriod_FirstDay(t *testing.T) {
	p := Period{Year: 2025, Month: time.March}
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), p.FirstDay())
}

func TestPeriod_Compare(t *testing.T) {
	jan := Period{Year: 2025, Month: time.January}
	feb := Period{Year: 2025, Month: time.February}
	prevDec := Period{Year: 2024, Month: time.December}

	assert.Equal(t, -1, jan.Compare(feb))
	assert.Equal(t, 1, jan.Compare(prevDec))
	assert.Equal(t, 0, jan.Compare(jan))
	assert.True(t, prevDec.Before(jan))
	assert.True(t, feb.After(jan))
}

func TestPeriodsCovering(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  []string
	}{
		{
			name:  "mid-month boundaries touch three months",
			start: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			want:  []string{"2025-01", "2025-02", "2025-03"},
		},
		{
			name:  "single month",
			start: time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC),
			want:  []string{"2025-06"},
		},
		{
			name:  "same day",
			start: time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.June, 5, 0, 0, 0, 0, time.UTC),
			want:  []string{"2025-06"},
		},
		{
			name:  "year boundary",
			start: time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
			end:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
			want:  []string{"2024-11", "2024-12", "2025-01", "2025-02"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			periods, err := PeriodsCovering(tt.start, tt.end)
			require.NoError(t, err)
			got := make([]string, len(periods))
			for i, p := range periods {
				got[i] = p.String()
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPeriodsCovering_EndBeforeStart(t *testing.T) {
	_, err := PeriodsCovering(
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	)
	assert.Error(t, err)
}

func TestPeriod_JSON(t *testing.T) {
	p := Period{Year: 2025, Month: time.April}

	data, err := json.Marshal(p)
	require.NoError(t, err)
	assert.Equal(t, `"2025-04"`, string(data))

	var decoded Period
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, p, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"2025/04"`), &decoded))
}

func TestPeriod_ScanValue(t *testing.T) {
	p := Period{Year: 2025, Month: time.September}
	v, err := p.Value()
	require.NoError(t, err)
	assert.Equal(t, "2025-09", v)

	var scanned Period
	require.NoError(t, scanned.Scan("2025-09"))
	assert.Equal(t, p, scanned)

	require.NoError(t, scanned.Scan([]byte("2024-12")))
	assert.Equal(t, Period{Year: 2024, Month: time.December}, scanned)

	assert.Error(t, scanned.Scan(123))
}
