// Package ledger derives dashboard figures from the full record set.
// Everything here is a pure function of its inputs: callers reread the
// store and recompute on every refresh instead of maintaining running
// aggregates.
package ledger

import (
	"groupfund-backend/internal/domain"
)

// Compute projects the transaction and loan sets into the fund summary.
// The sum is order-independent and the function is idempotent, so it is
// safe to call concurrently and repeatedly.
func Compute(transactions []domain.Transaction, loans []domain.Loan) domain.FundSummary {
	var totalFund float64
	for _, txn := range transactions {
		switch {
		case txn.Type.IsContribution():
			totalFund += txn.Amount
		case txn.Type == domain.TransactionTypeLoanDisbursement:
			totalFund -= abs(txn.Amount)
		case txn.Type.IsLoanReturn():
			totalFund += txn.Amount
		case txn.Type == domain.TransactionTypeExpenseActual:
			// stored negative
			totalFund += txn.Amount
		case txn.Type == domain.TransactionTypeExpenseAudit:
			// audit entries never affect totals
		}
	}

	var outstanding float64
	for _, loan := range loans {
		if loan.Status == domain.LoanStatusOutstanding {
			outstanding += loan.Remaining()
		}
	}

	totalAmount := totalFund + outstanding

	return domain.FundSummary{
		TotalFund:        totalFund,
		OutstandingLoans: outstanding,
		TotalAmount:      totalAmount,
		Budgets: domain.Budgets{
			Travel:  totalAmount * domain.BudgetShareTravel,
			Medical: totalAmount * domain.BudgetShareMedical,
			Lending: totalAmount * domain.BudgetShareLending,
			Reserve: totalAmount * domain.BudgetShareReserve,
		},
	}
}

// MemberOutstanding sums the remaining balance of a member's
// outstanding loans. Used for the per-member exposure cap.
func MemberOutstanding(loans []domain.Loan, memberID string) float64 {
	var total float64
	for _, loan := range loans {
		if loan.BorrowerID == memberID && loan.Status == domain.LoanStatusOutstanding {
			total += loan.Remaining()
		}
	}
	return total
}

// ContributionFromLog sums a member's contribution entries in the
// transaction log. Expense splits are recorded as a single fund-wide
// entry, so this figure excludes them; it backs the reconciliation
// check against the cached lifetime contribution rather than replacing
// it.
func ContributionFromLog(transactions []domain.Transaction, memberID string) float64 {
	var total float64
	for _, txn := range transactions {
		if txn.MemberID != nil && *txn.MemberID == memberID && txn.Type.IsContribution() {
			total += txn.Amount
		}
	}
	return total
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
