package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskflowhq/taskflow/internal/domain"
)

func TestPaymentStatusFor(t *testing.T) {
	now := time.Date(2025, 7, 15, 12, 0, 0, 0, time.UTC)
	future := domain.NewDate(now.AddDate(0, 0, 14))
	past := domain.NewDate(now.AddDate(0, 0, -1))

	tests := []struct {
		name   string
		paid   float64
		total  float64
		due    domain.Date
		expect domain.PaymentStatus
	}{
		{"nothing paid, not due", 0, 5430, future, domain.PaymentNotPaid},
		{"nothing paid, past due", 0, 5430, past, domain.PaymentOverdue},
		{"partial payment", 2000, 5430, future, domain.PaymentPartial},
		{"partial payment past due stays partial", 2000, 5430, past, domain.PaymentPartial},
		{"exact payment", 5430, 5430, past, domain.PaymentFullyPaid},
		{"overpayment", 6000, 5430, future, domain.PaymentFullyPaid},
		{"zero total counts as fully paid", 0, 0, future, domain.PaymentFullyPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.PaymentStatusFor(tt.paid, tt.total, tt.due, now)
			require.Equal(t, tt.expect, got)
		})
	}
}
