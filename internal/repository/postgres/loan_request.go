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

type loanRequestRepository struct {
	q querier
}

func NewLoanRequestRepository(db *sql.DB) repository.LoanRequestRepository {
	return &loanRequestRepository{q: db}
}

const loanRequestColumns = `id, member_id, amount, due_date, COALESCE(purpose, ''), status,
	reviewed_by, reviewed_on, COALESCE(admin_comments, ''), COALESCE(reject_reason, ''),
	loan_id, transaction_id, created_on`

func (r *loanRequestRepository) Create(ctx context.Context, req *domain.LoanRequest) error {
	query := `
		INSERT INTO loan_requests (member_id, amount, due_date, purpose, status, created_on)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6) RETURNING id
	`
	now := time.Now()
	err := r.q.QueryRowContext(ctx, query,
		req.MemberID, req.Amount, req.DueDate, req.Purpose, req.Status, now,
	).Scan(&req.ID)
	if err != nil {
		return err
	}
	req.CreatedOn = now
	return nil
}

func (r *loanRequestRepository) GetByID(ctx context.Context, id int32) (*domain.LoanRequest, error) {
	query := `SELECT ` + loanRequestColumns + ` FROM loan_requests WHERE id = $1`
	req := &domain.LoanRequest{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.MemberID, &req.Amount, &req.DueDate, &req.Purpose, &req.Status,
		&req.ReviewedBy, &req.ReviewedOn, &req.AdminComments, &req.RejectReason,
		&req.LoanID, &req.TransactionID, &req.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("loan request", fmt.Sprintf("%d", id))
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Update applies a review decision. Only Pending rows transition, so of
// two concurrent reviewers exactly one sees an affected row; the other
// gets a ConflictError.
func (r *loanRequestRepository) Update(ctx context.Context, req *domain.LoanRequest) error {
	query := `
		UPDATE loan_requests SET status = $1, reviewed_by = $2, reviewed_on = $3,
		       admin_comments = NULLIF($4, ''), reject_reason = NULLIF($5, ''),
		       loan_id = $6, transaction_id = $7
		WHERE id = $8 AND status = $9
	`
	result, err := r.q.ExecContext(ctx, query,
		req.Status, req.ReviewedBy, req.ReviewedOn, req.AdminComments, req.RejectReason,
		req.LoanID, req.TransactionID, req.ID, domain.RequestStatusPending,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.Conflictf("loan request %d already processed", req.ID)
	}
	return nil
}

// Delete removes a request record entirely. Only self-service
// withdrawal of a Pending request uses this path; a request reviewed in
// the meantime is left in place.
func (r *loanRequestRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM loan_requests WHERE id = $1 AND status = $2`
	result, err := r.q.ExecContext(ctx, query, id, domain.RequestStatusPending)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.Conflictf("loan request %d already processed", id)
	}
	return nil
}

func (r *loanRequestRepository) List(ctx context.Context) ([]domain.LoanRequest, error) {
	query := `SELECT ` + loanRequestColumns + ` FROM loan_requests ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query)
}

func (r *loanRequestRepository) ListByMember(ctx context.Context, memberID string) ([]domain.LoanRequest, error) {
	query := `SELECT ` + loanRequestColumns + ` FROM loan_requests WHERE member_id = $1 ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query, memberID)
}

func (r *loanRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.LoanRequest, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.LoanRequest
	for rows.Next() {
		var req domain.LoanRequest
		if err := rows.Scan(
			&req.ID, &req.MemberID, &req.Amount, &req.DueDate, &req.Purpose, &req.Status,
			&req.ReviewedBy, &req.ReviewedOn, &req.AdminComments, &req.RejectReason,
			&req.LoanID, &req.TransactionID, &req.CreatedOn,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
