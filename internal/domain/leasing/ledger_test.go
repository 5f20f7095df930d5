package leasing

import (
	"testing"
	"time"

	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func period(y int, m time.Month) valueobject.Period {
	return valueobject.Period{Year: y, Month: m}
}

func TestBuildLedger_RowPerMonthNoProration(t *testing.T) {
	// mid-month boundaries still owe each touched month in full
	lease := createTestLease(t, date(2025, time.January, 15), date(2025, time.March, 10))
	today := date(2024, time.December, 1)

	rows, err := BuildLedger(lease, nil, today)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	total := decimal.Zero
	for _, row := range rows {
		assert.Equal(t, "500", row.RentDue.String())
		assert.True(t, row.Balance.Equal(row.RentDue.Sub(row.AmountPaid)))
		total = total.Add(row.RentDue)
	}
	assert.Equal(t, "1500", total.String())
	assert.Equal(t, date(2025, time.January, 1), rows[0].DueDate)
}

func TestBuildLedger_StatusPriority(t *testing.T) {
	lease := createTestLease(t, date(2025, time.January, 1), date(2025, time.June, 30))
	today := date(2025, time.April, 15)

	paid := map[valueobject.Period]decimal.Decimal{
		period(2025, time.January):  decimal.NewFromInt(500), // exactly paid
		period(2025, time.February): decimal.NewFromInt(300), // partial, overdue by date
		period(2025, time.June):     decimal.NewFromInt(600), // overpaid future month
	}

	rows, err := BuildLedger(lease, paid, today)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, LedgerRowStatusPaid, rows[0].Status)     // Jan: paid in full
	assert.Equal(t, LedgerRowStatusPartial, rows[1].Status)  // Feb: partial beats overdue
	assert.Equal(t, LedgerRowStatusOverdue, rows[2].Status)  // Mar: unpaid, due date passed
	assert.Equal(t, LedgerRowStatusOverdue, rows[3].Status)  // Apr: due on the 1st
	assert.Equal(t, LedgerRowStatusUpcoming, rows[4].Status) // May: not yet due
	assert.Equal(t, LedgerRowStatusPaid, rows[5].Status)     // Jun: paid ahead

	assert.Equal(t, "200", rows[1].Balance.String())
	assert.Equal(t, "-100", rows[5].Balance.String())
}

func TestBuildLedger_DaysOverdue(t *testing.T) {
	lease := createTestLease(t, date(2025, time.January, 1), date(2025, time.December, 31))
	today := date(2025, time.April, 15)

	paid := map[valueobject.Period]decimal.Decimal{
		period(2025, time.January): decimal.NewFromInt(500),
	}

	rows, err := BuildLedger(lease, paid, today)
	require.NoError(t, err)

	assert.Equal(t, 0, rows[0].DaysOverdue) // Jan: settled
	assert.Equal(t, 45, rows[1].DaysOverdue) // Feb: Mar 1 .. Apr 15
	assert.Equal(t, 14, rows[2].DaysOverdue) // Mar: Apr 1 .. Apr 15
	assert.Equal(t, 0, rows[3].DaysOverdue)  // Apr: month not yet elapsed
	assert.Equal(t, LedgerRowStatusOverdue, rows[3].Status)
	assert.Equal(t, 0, rows[4].DaysOverdue) // May: upcoming
}

func TestBuildLedger_MultiplePaymentsSummedUpstream(t *testing.T) {
	lease := createTestLease(t, date(2025, time.January, 1), date(2025, time.January, 31))
	paid := map[valueobject.Period]decimal.Decimal{
		period(2025, time.January): decimal.NewFromInt(200).Add(decimal.NewFromInt(300)),
	}

	rows, err := BuildLedger(lease, paid, date(2025, time.February, 10))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, LedgerRowStatusPaid, rows[0].Status)
	assert.True(t, rows[0].Balance.IsZero())
}

func TestBuildLedger_DerivationErrors(t *testing.T) {
	lease := createTestLease(t, date(2025, time.January, 1), date(2025, time.June, 30))
	today := date(2025, time.April, 15)

	t.Run("end before start", func(t *testing.T) {
		broken := *lease
		broken.StartDate = date(2025, time.July, 1)
		_, err := BuildLedger(&broken, nil, today)
		assert.Error(t, err)
	})

	t.Run("non-positive rent", func(t *testing.T) {
		broken := *lease
		broken.MonthlyRent = decimal.Zero
		_, err := BuildLedger(&broken, nil, today)
		assert.Error(t, err)
	})
}
