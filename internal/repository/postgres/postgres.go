package postgres

import (
	"context"
	"database/sql"

	"groupfund-backend/internal/repository"

	_ "github.com/lib/pq"
)

// querier is satisfied by both *sql.DB and *sql.Tx so every repository
// can run standalone or inside an atomic group.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db *sql.DB
	repository.MemberRepository
	repository.TransactionRepository
	repository.LoanRepository
	repository.ContributionRequestRepository
	repository.LoanRequestRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                            db,
		MemberRepository:              NewMemberRepository(db),
		TransactionRepository:         NewTransactionRepository(db),
		LoanRepository:                NewLoanRepository(db),
		ContributionRequestRepository: NewContributionRequestRepository(db),
		LoanRequestRepository:         NewLoanRequestRepository(db),
	}
}

func boundRepos(q querier) repository.Repos {
	return repository.Repos{
		Members:              &memberRepository{q: q},
		Transactions:         &transactionRepository{q: q},
		Loans:                &loanRepository{q: q},
		ContributionRequests: &contributionRequestRepository{q: q},
		LoanRequests:         &loanRequestRepository{q: q},
	}
}

// Batch runs fn inside a transaction at the default isolation level.
func (s *Store) Batch(ctx context.Context, fn func(repository.Repos) error) error {
	return s.runTx(ctx, nil, fn)
}

// Serializable runs fn at serializable isolation so check-then-act
// sequences cannot race against each other.
func (s *Store) Serializable(ctx context.Context, fn func(repository.Repos) error) error {
	return s.runTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable}, fn)
}

func (s *Store) runTx(ctx context.Context, opts *sql.TxOptions, fn func(repository.Repos) error) error {
	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := fn(boundRepos(tx)); err != nil {
		return err
	}
	return tx.Commit()
}
