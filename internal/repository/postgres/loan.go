package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/repository"
)

type loanRepository struct {
	q querier
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{q: db}
}

const loanColumns = `id, borrower_id, amount, amount_paid, status, borrow_date, due_date, loan_request_id, created_on`

func (r *loanRepository) Create(ctx context.Context, loan *domain.Loan) error {
	logger.EnterMethod("loanRepository.Create", "borrowerID", loan.BorrowerID, "amount", loan.Amount)

	query := `
		INSERT INTO loans (borrower_id, amount, amount_paid, status, borrow_date, due_date, loan_request_id, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id
	`
	now := time.Now()
	err := r.q.QueryRowContext(ctx, query,
		loan.BorrowerID, loan.Amount, loan.AmountPaid, loan.Status,
		loan.BorrowDate, loan.DueDate, loan.LoanRequestID, now,
	).Scan(&loan.ID)
	if err != nil {
		logger.ExitMethodWithError("loanRepository.Create", err, "borrowerID", loan.BorrowerID)
		return err
	}
	loan.CreatedOn = now

	logger.ExitMethod("loanRepository.Create", "loanID", loan.ID)
	return nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE id = $1`
	loan := &domain.Loan{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&loan.ID, &loan.BorrowerID, &loan.Amount, &loan.AmountPaid, &loan.Status,
		&loan.BorrowDate, &loan.DueDate, &loan.LoanRequestID, &loan.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("loan", fmt.Sprintf("%d", id))
	}
	if err != nil {
		return nil, err
	}
	return loan, nil
}

func (r *loanRepository) Update(ctx context.Context, loan *domain.Loan) error {
	query := `UPDATE loans SET amount_paid = $1, status = $2 WHERE id = $3`
	result, err := r.q.ExecContext(ctx, query, loan.AmountPaid, loan.Status, loan.ID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.NotFound("loan", fmt.Sprintf("%d", loan.ID))
	}
	return nil
}

func (r *loanRepository) List(ctx context.Context) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans ORDER BY borrow_date DESC, id DESC`
	return r.list(ctx, query)
}

func (r *loanRepository) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE status = $1 ORDER BY due_date, id`
	return r.list(ctx, query, status)
}

func (r *loanRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE status = 'Outstanding' AND due_date < $1 ORDER BY due_date, id`
	return r.list(ctx, query, asOf)
}

func (r *loanRepository) list(ctx context.Context, query string, args ...any) ([]domain.Loan, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(
			&l.ID, &l.BorrowerID, &l.Amount, &l.AmountPaid, &l.Status,
			&l.BorrowDate, &l.DueDate, &l.LoanRequestID, &l.CreatedOn,
		); err != nil {
			return nil, err
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}
