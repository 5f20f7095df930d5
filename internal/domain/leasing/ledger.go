package leasing

import (
	"time"

	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// LedgerRowStatus represents the payment status of one ledger month
type LedgerRowStatus string

const (
	LedgerRowStatusPaid     LedgerRowStatus = "paid"
	LedgerRowStatusPartial  LedgerRowStatus = "partial"
	LedgerRowStatusUpcoming LedgerRowStatus = "upcoming"
	LedgerRowStatusOverdue  LedgerRowStatus = "overdue"
	LedgerRowStatusDue      LedgerRowStatus = "due"
)

// LedgerRow is one derived month of a lease's rent ledger. Rows are
// recomputed from the term and payment records on every read and are
// never persisted, so they can never drift from the payments.
type LedgerRow struct {
	Period      valueobject.Period `json:"period"`
	DueDate     time.Time          `json:"due_date"`
	RentDue     decimal.Decimal    `json:"rent_due"`
	AmountPaid  decimal.Decimal    `json:"amount_paid"`
	Balance     decimal.Decimal    `json:"balance"`
	DaysOverdue int                `json:"days_overdue"`
	Status      LedgerRowStatus    `json:"status"`
}

// IsOverdue returns true when the row's due date has passed with a
// positive balance
func (r LedgerRow) IsOverdue() bool {
	return r.Status == LedgerRowStatusOverdue
}

// BuildLedger derives the month-by-month rent ledger for a lease: one
// row per calendar month the term touches, in order, each owing the
// full monthly rent (no proration). paidByPeriod carries the summed
// payments targeted at each period.
//
// Row status is assigned in strict priority order:
// paid > partial > upcoming > overdue > due.
//
// A row counts as overdue the moment its due date (the first of the
// month) passes with a positive balance, but overdue days only start
// accruing once the month itself has fully elapsed. The 30-day notice
// threshold applied on top of DaysOverdue belongs to the overdue
// sweep, not here.
func BuildLedger(lease *Lease, paidByPeriod map[valueobject.Period]decimal.Decimal, today time.Time) ([]LedgerRow, error) {
	if lease.EndDate.Before(lease.StartDate) {
		return nil, shared.NewDomainError("INVALID_TERM", "Lease end date is before its start date")
	}
	if !lease.MonthlyRent.IsPositive() {
		return nil, shared.NewDomainError("INVALID_RENT", "Lease monthly rent must be positive")
	}

	periods, err := valueobject.PeriodsCovering(lease.StartDate, lease.EndDate)
	if err != nil {
		return nil, err
	}

	rows := make([]LedgerRow, 0, len(periods))
	for _, period := range periods {
		paid := paidByPeriod[period]
		row := LedgerRow{
			Period:     period,
			DueDate:    period.FirstDay(),
			RentDue:    lease.MonthlyRent,
			AmountPaid: paid,
			Balance:    lease.MonthlyRent.Sub(paid),
		}
		row.DaysOverdue = daysOverdue(row, today)
		row.Status = deriveRowStatus(row, today)
		rows = append(rows, row)
	}

	return rows, nil
}

// deriveRowStatus assigns the per-month status in priority order
func deriveRowStatus(row LedgerRow, today time.Time) LedgerRowStatus {
	switch {
	case row.AmountPaid.GreaterThanOrEqual(row.RentDue):
		return LedgerRowStatusPaid
	case row.AmountPaid.IsPositive():
		return LedgerRowStatusPartial
	case row.DueDate.After(today):
		return LedgerRowStatusUpcoming
	case row.Balance.IsPositive():
		return LedgerRowStatusOverdue
	default:
		// unreachable given the paid rule, kept as a safety fallback
		return LedgerRowStatusDue
	}
}

// daysOverdue counts whole days since the obligation month fully
// elapsed, zero for settled or not-yet-elapsed months.
func daysOverdue(row LedgerRow, today time.Time) int {
	if row.DueDate.After(today) || !row.Balance.IsPositive() {
		return 0
	}
	graceEnd := row.Period.Next().FirstDay()
	if today.Before(graceEnd) {
		return 0
	}
	return int(today.Sub(graceEnd).Hours() / 24)
}
