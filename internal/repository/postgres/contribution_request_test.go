package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"groupfund-backend/internal/domain"
)

func TestContributionRequestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewContributionRequestRepository(db)
	ctx := context.Background()

	reviewer := "admin"
	now := time.Now()

	t.Run("TransitionsPendingRow", func(t *testing.T) {
		req := &domain.ContributionRequest{
			ID: 4, Status: domain.RequestStatusApproved,
			ReviewedBy: &reviewer, ReviewedOn: &now, AdminComments: "ok",
		}

		mock.ExpectExec("UPDATE contribution_requests SET status").
			WithArgs(domain.RequestStatusApproved, sqlmock.AnyArg(), sqlmock.AnyArg(),
				"ok", "", int32(4), domain.RequestStatusPending).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Update(ctx, req)
		assert.NoError(t, err)
	})

	t.Run("AlreadyReviewedRowConflicts", func(t *testing.T) {
		// A second reviewer races in after the first commit: the status
		// guard leaves zero rows to update.
		req := &domain.ContributionRequest{
			ID: 4, Status: domain.RequestStatusApproved,
			ReviewedBy: &reviewer, ReviewedOn: &now,
		}

		mock.ExpectExec("UPDATE contribution_requests SET status").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, req)
		var conflict *domain.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
