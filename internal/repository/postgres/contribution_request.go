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

type contributionRequestRepository struct {
	q querier
}

func NewContributionRequestRepository(db *sql.DB) repository.ContributionRequestRepository {
	return &contributionRequestRepository{q: db}
}

const contributionRequestColumns = `id, member_id, type, amount, COALESCE(comments, ''), status,
	reviewed_by, reviewed_on, COALESCE(admin_comments, ''), COALESCE(reject_reason, ''), created_on`

func (r *contributionRequestRepository) Create(ctx context.Context, req *domain.ContributionRequest) error {
	query := `
		INSERT INTO contribution_requests (member_id, type, amount, comments, status, created_on)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6) RETURNING id
	`
	now := time.Now()
	err := r.q.QueryRowContext(ctx, query,
		req.MemberID, req.Type, req.Amount, req.Comments, req.Status, now,
	).Scan(&req.ID)
	if err != nil {
		return err
	}
	req.CreatedOn = now
	return nil
}

func (r *contributionRequestRepository) GetByID(ctx context.Context, id int32) (*domain.ContributionRequest, error) {
	query := `SELECT ` + contributionRequestColumns + ` FROM contribution_requests WHERE id = $1`
	req := &domain.ContributionRequest{}
	err := r.q.QueryRowContext(ctx, query, id).Scan(
		&req.ID, &req.MemberID, &req.Type, &req.Amount, &req.Comments, &req.Status,
		&req.ReviewedBy, &req.ReviewedOn, &req.AdminComments, &req.RejectReason, &req.CreatedOn,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NotFound("contribution request", fmt.Sprintf("%d", id))
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

// Update applies a review decision. Only Pending rows transition, so of
// two concurrent reviewers exactly one sees an affected row; the other
// gets a ConflictError.
func (r *contributionRequestRepository) Update(ctx context.Context, req *domain.ContributionRequest) error {
	query := `
		UPDATE contribution_requests SET status = $1, reviewed_by = $2, reviewed_on = $3,
		       admin_comments = NULLIF($4, ''), reject_reason = NULLIF($5, '')
		WHERE id = $6 AND status = $7
	`
	result, err := r.q.ExecContext(ctx, query,
		req.Status, req.ReviewedBy, req.ReviewedOn, req.AdminComments, req.RejectReason,
		req.ID, domain.RequestStatusPending,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.Conflictf("contribution request %d already processed", req.ID)
	}
	return nil
}

func (r *contributionRequestRepository) List(ctx context.Context) ([]domain.ContributionRequest, error) {
	query := `SELECT ` + contributionRequestColumns + ` FROM contribution_requests ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query)
}

func (r *contributionRequestRepository) ListByMember(ctx context.Context, memberID string) ([]domain.ContributionRequest, error) {
	query := `SELECT ` + contributionRequestColumns + ` FROM contribution_requests WHERE member_id = $1 ORDER BY created_on DESC, id DESC`
	return r.list(ctx, query, memberID)
}

func (r *contributionRequestRepository) list(ctx context.Context, query string, args ...any) ([]domain.ContributionRequest, error) {
	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reqs []domain.ContributionRequest
	for rows.Next() {
		var req domain.ContributionRequest
		if err := rows.Scan(
			&req.ID, &req.MemberID, &req.Type, &req.Amount, &req.Comments, &req.Status,
			&req.ReviewedBy, &req.ReviewedOn, &req.AdminComments, &req.RejectReason, &req.CreatedOn,
		); err != nil {
			return nil, err
		}
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}
