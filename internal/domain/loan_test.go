package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoan_DeriveStatus(t *testing.T) {
	loan := &Loan{Amount: 300}

	assert.Equal(t, LoanStatusOutstanding, loan.DeriveStatus())

	loan.AmountPaid = 299.99
	assert.Equal(t, LoanStatusOutstanding, loan.DeriveStatus())

	loan.AmountPaid = 300
	assert.Equal(t, LoanStatusReturned, loan.DeriveStatus())
}

func TestCalendarDaysBetween(t *testing.T) {
	// Time of day on either end never changes the count.
	late := time.Date(2026, 3, 15, 23, 45, 0, 0, time.UTC)
	early := time.Date(2026, 3, 22, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, CalendarDaysBetween(late, early))
	assert.Equal(t, -7, CalendarDaysBetween(early, late))

	sameDay := time.Date(2026, 3, 15, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 0, CalendarDaysBetween(late, sameDay))
}

func TestLoan_DaysRemaining(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	due := &Loan{DueDate: time.Date(2026, 3, 25, 9, 0, 0, 0, time.UTC)}
	assert.Equal(t, 10, due.DaysRemaining(now))

	today := &Loan{DueDate: time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)}
	assert.Equal(t, 0, today.DaysRemaining(now))

	past := &Loan{DueDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)}
	assert.Equal(t, -5, past.DaysRemaining(now))
}

func TestLoan_IsOverdue(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	pastDue := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	outstanding := &Loan{Status: LoanStatusOutstanding, DueDate: pastDue}
	assert.True(t, outstanding.IsOverdue(now))

	returned := &Loan{Status: LoanStatusReturned, DueDate: pastDue}
	assert.False(t, returned.IsOverdue(now))

	current := &Loan{Status: LoanStatusOutstanding, DueDate: now.AddDate(0, 0, 5)}
	assert.False(t, current.IsOverdue(now))
}

func TestTransactionType_Classification(t *testing.T) {
	assert.True(t, TransactionTypeContributionMonthly.IsContribution())
	assert.True(t, TransactionTypeContributionInitial.IsContribution())
	assert.True(t, TransactionType("Contribution-Special").IsContribution())
	assert.False(t, TransactionTypeLoanDisbursement.IsContribution())

	assert.True(t, TransactionTypeLoanReturn.IsLoanReturn())
	assert.True(t, TransactionTypeLoanPartialReturn.IsLoanReturn())
	assert.False(t, TransactionTypeExpenseActual.IsLoanReturn())
}
