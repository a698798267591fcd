package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/repository"
)

func loanRows(loans ...domain.Loan) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"id", "borrower_id", "amount", "amount_paid", "status", "borrow_date", "due_date", "loan_request_id", "created_on",
	})
	for _, l := range loans {
		rows.AddRow(l.ID, l.BorrowerID, l.Amount, l.AmountPaid, l.Status, l.BorrowDate, l.DueDate, l.LoanRequestID, l.CreatedOn)
	}
	return rows
}

func TestLoanRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()

	loan := &domain.Loan{
		BorrowerID: "m1",
		Amount:     500,
		Status:     domain.LoanStatusOutstanding,
		BorrowDate: time.Now(),
		DueDate:    time.Now().AddDate(0, 1, 0),
	}

	mock.ExpectQuery("INSERT INTO loans").
		WithArgs(loan.BorrowerID, loan.Amount, loan.AmountPaid, loan.Status,
			loan.BorrowDate, loan.DueDate, loan.LoanRequestID, sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	err = repo.Create(ctx, loan)
	assert.NoError(t, err)
	assert.Equal(t, int32(11), loan.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		loan := &domain.Loan{ID: 11, AmountPaid: 200, Status: domain.LoanStatusOutstanding}

		mock.ExpectExec("UPDATE loans SET amount_paid").
			WithArgs(loan.AmountPaid, loan.Status, loan.ID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(ctx, loan))
	})

	t.Run("MissingLoan", func(t *testing.T) {
		loan := &domain.Loan{ID: 99, AmountPaid: 200, Status: domain.LoanStatusOutstanding}

		mock.ExpectExec("UPDATE loans SET amount_paid").
			WithArgs(loan.AmountPaid, loan.Status, loan.ID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Update(ctx, loan)
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoanRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewLoanRepository(db)
	ctx := context.Background()
	asOf := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM loans WHERE status = 'Outstanding' AND due_date").
		WithArgs(asOf).
		WillReturnRows(loanRows(domain.Loan{
			ID: 3, BorrowerID: "m2", Amount: 300, AmountPaid: 100,
			Status:     domain.LoanStatusOutstanding,
			BorrowDate: asOf.AddDate(0, -2, 0),
			DueDate:    asOf.AddDate(0, 0, -10),
			CreatedOn:  asOf.AddDate(0, -2, 0),
		}))

	loans, err := repo.ListOverdue(ctx, asOf)
	assert.NoError(t, err)
	assert.Len(t, loans, 1)
	assert.Equal(t, 200.0, loans[0].Remaining())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_BatchCommitsAndRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	ctx := context.Background()

	t.Run("CommitOnSuccess", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE members SET lifetime_contribution").
			WithArgs(50.0, "m1").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err := store.Batch(ctx, func(r repository.Repos) error {
			return r.Members.AddToContribution(ctx, "m1", 50)
		})
		assert.NoError(t, err)
	})

	t.Run("RollbackOnError", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE members SET lifetime_contribution").
			WithArgs(50.0, "ghost").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := store.Batch(ctx, func(r repository.Repos) error {
			return r.Members.AddToContribution(ctx, "ghost", 50)
		})
		var notFound *domain.NotFoundError
		assert.ErrorAs(t, err, &notFound)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
