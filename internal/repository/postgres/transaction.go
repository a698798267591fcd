package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/repository"
)

type transactionRepository struct {
	q querier
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{q: db}
}

const transactionColumns = `id, member_id, type, amount, date, loan_id, COALESCE(comments, ''), created_on`

func (r *transactionRepository) Create(ctx context.Context, txn *domain.Transaction) error {
	query := `
		INSERT INTO transactions (member_id, type, amount, date, loan_id, comments, created_on)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7) RETURNING id
	`
	now := time.Now()
	err := r.q.QueryRowContext(ctx, query,
		txn.MemberID, txn.Type, txn.Amount, txn.Date, txn.LoanID, txn.Comments, now,
	).Scan(&txn.ID)
	if err != nil {
		return err
	}
	txn.CreatedOn = now
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`
	txn := &domain.Transaction{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&txn.ID, &txn.MemberID, &txn.Type, &txn.Amount, &txn.Date,
		&txn.LoanID, &txn.Comments, &txn.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("transaction", fmt.Sprintf("%d", id))
	}
	if err != nil {
		return nil, err
	}
	return txn, nil
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions ORDER BY date DESC, id DESC`
	return r.list(ctx, query)
}

func (r *transactionRepository) ListByMember(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE member_id = $1 ORDER BY date DESC, id DESC`
	return r.list(ctx, query, memberID)
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var txns []domain.Transaction
	for rows.Next() {
		var t domain.Transaction
		if err := rows.Scan(
			&t.ID, &t.MemberID, &t.Type, &t.Amount, &t.Date,
			&t.LoanID, &t.Comments, &t.CreatedOn,
		); err != nil {
			return nil, err
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}
