package valueobject

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Period is a calendar month (year + month) value object.
// Rent is billed per calendar month, so Period is the unit the ledger,
// payments, and overdue notices are keyed on.
type Period struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// NewPeriod creates a Period, validating the month
func NewPeriod(year int, month time.Month) (Period, error) {
	if month < time.January || month > time.December {
		return Period{}, fmt.Errorf("invalid month: %d", month)
	}
	if year < 1 {
		return Period{}, fmt.Errorf("invalid year: %d", year)
	}
	return Period{Year: year, Month: month}, nil
}

// PeriodOf returns the Period containing the given time
func PeriodOf(t time.Time) Period {
	return Period{Year: t.Year(), Month: t.Month()}
}

// ParsePeriod parses a Period from its "2006-01" string form
func ParsePeriod(s string) (Period, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Period{}, fmt.Errorf("invalid period %q: %w", s, err)
	}
	return Period{Year: t.Year(), Month: t.Month()}, nil
}

// Next returns the following calendar month
func (p Period) Next() Period {
	if p.Month == time.December {
		return Period{Year: p.Year + 1, Month: time.January}
	}
	return Period{Year: p.Year, Month: p.Month + 1}
}

// FirstDay returns midnight UTC on the first day of the period.
// This is the rent due date for the period.
func (p Period) FirstDay() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Compare returns -1, 0 or 1 as p sorts before, equal to or after other
func (p Period) Compare(other Period) int {
	switch {
	case p.Year < other.Year:
		return -1
	case p.Year > other.Year:
		return 1
	case p.Month < other.Month:
		return -1
	case p.Month > other.Month:
		return 1
	default:
		return 0
	}
}

// Before returns true if p is strictly earlier than other
func (p Period) Before(other Period) bool {
	return p.Compare(other) < 0
}

// After returns true if p is strictly later than other
func (p Period) After(other Period) bool {
	return p.Compare(other) > 0
}

// String returns the period in "2006-01" form
func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// PeriodsCovering returns every calendar month touched by [start, end],
// inclusive on both sides. A lease from Jan 15 to Mar 10 covers
// January, February and March.
func PeriodsCovering(start, end time.Time) ([]Period, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("end %s is before start %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	first := PeriodOf(start)
	last := PeriodOf(end)
	periods := make([]Period, 0, 12)
	for p := first; !p.After(last); p = p.Next() {
		periods = append(periods, p)
	}
	return periods, nil
}

// MarshalJSON encodes the period as its "2006-01" string form
func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", p.String())), nil
}

// UnmarshalJSON decodes a period from its "2006-01" string form
func (p *Period) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid period JSON: %s", data)
	}
	parsed, err := ParsePeriod(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Value implements driver.Valuer, storing the "2006-01" form
func (p Period) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements sql.Scanner
func (p *Period) Scan(value any) error {
	if value == nil {
		*p = Period{}
		return nil
	}
	var strVal string
	switch v := value.(type) {
	case string:
		strVal = v
	case []byte:
		strVal = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Period", value)
	}
	parsed, err := ParsePeriod(strVal)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
