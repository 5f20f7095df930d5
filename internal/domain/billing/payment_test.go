package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pms/backend/internal/domain/shared"
	"github.com/pms/backend/internal/domain/shared/valueobject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPeriod = valueobject.Period{Year: 2025, Month: time.February}

func TestNewPayment(t *testing.T) {
	leaseID := uuid.New()
	paymentDate := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		leaseID uuid.UUID
		amount  valueobject.Money
		method  PaymentMethod
		wantErr string
	}{
		{name: "valid cash payment", leaseID: leaseID, amount: valueobject.NewMoneyFromFloat(500), method: PaymentMethodCash},
		{name: "valid transfer", leaseID: leaseID, amount: valueobject.NewMoneyFromFloat(500), method: PaymentMethodBankTransfer},
		{name: "missing lease", leaseID: uuid.Nil, amount: valueobject.NewMoneyFromFloat(500), method: PaymentMethodCash, wantErr: "INVALID_LEASE"},
		{name: "zero amount", leaseID: leaseID, amount: valueobject.Zero(), method: PaymentMethodCash, wantErr: "INVALID_AMOUNT"},
		{name: "negative amount", leaseID: leaseID, amount: valueobject.NewMoneyFromFloat(-100), method: PaymentMethodCash, wantErr: "INVALID_AMOUNT"},
		{name: "unknown method", leaseID: leaseID, amount: valueobject.NewMoneyFromFloat(500), method: "barter", wantErr: "INVALID_METHOD"},
		{name: "cheque without metadata", leaseID: leaseID, amount: valueobject.NewMoneyFromFloat(500), method: PaymentMethodCheque, wantErr: "INVALID_CHEQUE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payment, err := NewPayment(tt.leaseID, paymentDate, tt.amount, testPeriod, tt.method)
			if tt.wantErr != "" {
				require.Error(t, err)
				var domainErr *shared.DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, tt.wantErr, domainErr.Code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testPeriod, payment.Period)

			events := payment.GetDomainEvents()
			require.Len(t, events, 1)
			recorded, ok := events[0].(*PaymentRecordedEvent)
			require.True(t, ok)
			assert.Equal(t, EventTypePaymentRecorded, recorded.EventType())
			assert.Equal(t, tt.leaseID, recorded.LeaseID)
			assert.Equal(t, testPeriod, recorded.Period)
		})
	}
}

func TestNewChequePayment(t *testing.T) {
	leaseID := uuid.New()
	paymentDate := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	amount := valueobject.NewMoneyFromFloat(500)

	payment, err := NewChequePayment(leaseID, paymentDate, amount, testPeriod, "CHQ-1042", ChequeStatusPending)
	require.NoError(t, err)
	assert.True(t, payment.IsCheque())
	assert.Equal(t, "CHQ-1042", payment.ChequeNumber)
	assert.Equal(t, ChequeStatusPending, payment.ChequeStatus)

	_, err = NewChequePayment(leaseID, paymentDate, amount, testPeriod, "", ChequeStatusPending)
	assert.Error(t, err)

	_, err = NewChequePayment(leaseID, paymentDate, amount, testPeriod, "CHQ-1042", "torn")
	assert.Error(t, err)
}
