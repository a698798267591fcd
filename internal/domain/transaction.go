package domain

import (
	"strings"
	"time"
)

type TransactionType string

const (
	TransactionTypeContributionMonthly   TransactionType = "Contribution-Monthly"
	TransactionTypeContributionQuarterly TransactionType = "Contribution-Quarterly"
	TransactionTypeContributionInitial   TransactionType = "Contribution-Initial"
	TransactionTypeLoanDisbursement      TransactionType = "Loan-Disbursement"
	TransactionTypeLoanReturn            TransactionType = "Loan-Return"
	TransactionTypeLoanPartialReturn     TransactionType = "Loan-PartialReturn"
	TransactionTypeExpenseActual         TransactionType = "Expense-Actual"
	TransactionTypeExpenseAudit          TransactionType = "Expense-Audit"
)

// IsContribution matches every contribution variant, including ones a
// newer schema may add under the same prefix.
func (t TransactionType) IsContribution() bool {
	return strings.HasPrefix(string(t), "Contribution")
}

func (t TransactionType) IsLoanReturn() bool {
	return t == TransactionTypeLoanReturn || t == TransactionTypeLoanPartialReturn
}

// Transaction is an append-only ledger entry. Sign convention:
// contributions and loan returns are positive, disbursements and actual
// expenses negative. Audit expenses are informational and excluded from
// all balance math.
type Transaction struct {
	ID        int32           `json:"id"`
	MemberID  *string         `json:"member_id,omitempty"` // nil for fund-wide expenses
	Type      TransactionType `json:"type"`
	Amount    float64         `json:"amount"`
	Date      time.Time       `json:"date"`
	LoanID    *int32          `json:"loan_id,omitempty"`
	Comments  string          `json:"comments,omitempty"`
	CreatedOn time.Time       `json:"created_on"`
}
