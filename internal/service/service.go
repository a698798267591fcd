package service

import (
	"context"
	"time"

	"groupfund-backend/internal/domain"
)

type AuthService interface {
	// LoginAdmin authenticates an admin or co-admin by email and password.
	LoginAdmin(ctx context.Context, email, password string) (string, *domain.Member, error)
	// LoginMember authenticates a regular member by login identifier.
	LoginMember(ctx context.Context, identifier string) (string, *domain.Member, error)
}

type MemberService interface {
	// CreateAdmin registers an admin member keyed by an externally
	// supplied stable identity token.
	CreateAdmin(ctx context.Context, identityToken, name, email, password string, role domain.Role) (*domain.Member, error)
	// CreateMember registers a regular member with a generated internal
	// id and a short unique login identifier.
	CreateMember(ctx context.Context, name string) (*domain.Member, error)
	ListMembers(ctx context.Context) ([]domain.Member, error)
	// UpdateMember changes a member's name or email. Blank fields keep
	// their current values.
	UpdateMember(ctx context.Context, memberID, name, email string) (*domain.Member, error)
	// AddExpense records an expense. Audit expenses only produce a
	// ledger entry; actual expenses are split equally across the full
	// member set in one atomic batch.
	AddExpense(ctx context.Context, amount float64, audit bool, date time.Time, comments string) (*domain.Transaction, error)
}

type LoanService interface {
	Disburse(ctx context.Context, borrowerID string, amount float64, borrowDate, dueDate time.Time) (*domain.Loan, error)
	// RecordReturn applies a repayment. Full returns pay off the
	// remaining balance exactly; partial returns take the supplied
	// amount, bounded by the balance remaining before this payment.
	RecordReturn(ctx context.Context, loanID int32, returnAmount float64, partial bool, date time.Time) (*domain.Loan, error)
	GetLoan(ctx context.Context, loanID int32) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
}

type RequestService interface {
	SubmitContribution(ctx context.Context, memberID string, txnType domain.TransactionType, amount float64, comments string) (*domain.ContributionRequest, error)
	ApproveContribution(ctx context.Context, reviewerID string, requestID int32, adminComments string) (*domain.ContributionRequest, error)
	RejectContribution(ctx context.Context, reviewerID string, requestID int32, reason string) (*domain.ContributionRequest, error)
	ListContributionRequests(ctx context.Context, memberID string) ([]domain.ContributionRequest, error)

	SubmitLoan(ctx context.Context, memberID string, amount float64, dueDate time.Time, purpose string) (*domain.LoanRequest, error)
	ApproveLoan(ctx context.Context, reviewerID string, requestID int32, approvedAmount float64, approvedDueDate time.Time, adminComments string) (*domain.Loan, error)
	RejectLoan(ctx context.Context, reviewerID string, requestID int32, reason string) (*domain.LoanRequest, error)
	// CancelLoan withdraws a Pending request. Only the requesting
	// member may cancel; the record is deleted.
	CancelLoan(ctx context.Context, memberID string, requestID int32) error
	ListLoanRequests(ctx context.Context, memberID string) ([]domain.LoanRequest, error)
}

type DashboardService interface {
	GetDashboard(ctx context.Context, memberID string) (*DashboardView, error)
	ListTransactions(ctx context.Context) ([]TransactionView, error)
	// ListMemberTransactions is one member's slice of the ledger,
	// newest first.
	ListMemberTransactions(ctx context.Context, memberID string) ([]TransactionView, error)
	ListActiveLoans(ctx context.Context) ([]LoanView, error)
	ListMembers(ctx context.Context) ([]MemberView, error)
}

type EmailService interface {
	SendRequestDecision(ctx context.Context, email, name, kind, decision, note string) error
	SendLoanDisbursed(ctx context.Context, email, name string, amount float64, dueDate time.Time) error
	SendOverdueReminder(ctx context.Context, email, name string, remaining float64, daysOverdue int) error
}

// DashboardView bundles the derived metrics with the caller's own
// contribution figure.
type DashboardView struct {
	Summary        domain.FundSummary `json:"summary"`
	MyContribution float64            `json:"my_contribution"`
}

type TransactionView struct {
	ID         int32                  `json:"id"`
	MemberName string                 `json:"member_name"`
	Type       domain.TransactionType `json:"type"`
	Amount     float64                `json:"amount"`
	Date       time.Time              `json:"date"`
	Comments   string                 `json:"comments,omitempty"`
}

type LoanView struct {
	ID            int32     `json:"id"`
	BorrowerName  string    `json:"borrower_name"`
	Amount        float64   `json:"amount"`
	AmountPaid    float64   `json:"amount_paid"`
	Remaining     float64   `json:"remaining"`
	BorrowDate    time.Time `json:"borrow_date"`
	DueDate       time.Time `json:"due_date"`
	DaysRemaining int       `json:"days_remaining"`
	Overdue       bool      `json:"overdue"`
}

type MemberView struct {
	ID                   string      `json:"id"`
	Name                 string      `json:"name"`
	Role                 domain.Role `json:"role"`
	LifetimeContribution float64     `json:"lifetime_contribution"`
}
