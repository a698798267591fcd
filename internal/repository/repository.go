package repository

import (
	"context"
	"time"

	"groupfund-backend/internal/domain"
)

type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	GetByIdentifier(ctx context.Context, identifier string) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	Update(ctx context.Context, member *domain.Member) error
	// AddToContribution adjusts the cached lifetime contribution by a
	// signed delta.
	AddToContribution(ctx context.Context, id string, delta float64) error
}

type TransactionRepository interface {
	Create(ctx context.Context, txn *domain.Transaction) error
	GetByID(ctx context.Context, id int32) (*domain.Transaction, error)
	// List returns the full ledger ordered by date descending.
	List(ctx context.Context) ([]domain.Transaction, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.Transaction, error)
}

type LoanRepository interface {
	Create(ctx context.Context, loan *domain.Loan) error
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	Update(ctx context.Context, loan *domain.Loan) error
	List(ctx context.Context) ([]domain.Loan, error)
	ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error)
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error)
}

type ContributionRequestRepository interface {
	Create(ctx context.Context, req *domain.ContributionRequest) error
	GetByID(ctx context.Context, id int32) (*domain.ContributionRequest, error)
	Update(ctx context.Context, req *domain.ContributionRequest) error
	List(ctx context.Context) ([]domain.ContributionRequest, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.ContributionRequest, error)
}

type LoanRequestRepository interface {
	Create(ctx context.Context, req *domain.LoanRequest) error
	GetByID(ctx context.Context, id int32) (*domain.LoanRequest, error)
	Update(ctx context.Context, req *domain.LoanRequest) error
	Delete(ctx context.Context, id int32) error
	List(ctx context.Context) ([]domain.LoanRequest, error)
	ListByMember(ctx context.Context, memberID string) ([]domain.LoanRequest, error)
}

// Repos bundles every repository bound to the same database handle or
// transaction. Atomizer callbacks receive a Repos whose writes all
// commit or roll back together.
type Repos struct {
	Members              MemberRepository
	Transactions         TransactionRepository
	Loans                LoanRepository
	ContributionRequests ContributionRequestRepository
	LoanRequests         LoanRequestRepository
}

// Atomizer groups multi-record writes.
type Atomizer interface {
	// Batch runs fn inside a database transaction at the default
	// isolation level. Either every write commits or none do.
	Batch(ctx context.Context, fn func(Repos) error) error
	// Serializable runs fn at serializable isolation. Loan-request
	// approval uses it so two concurrent approvals cannot both pass
	// the budget check against a stale total.
	Serializable(ctx context.Context, fn func(Repos) error) error
}
