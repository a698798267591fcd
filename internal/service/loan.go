package service

import (
	"context"
	"fmt"
	"time"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/repository"
)

type loanService struct {
	loanRepo   repository.LoanRepository
	memberRepo repository.MemberRepository
	atomic     repository.Atomizer
	emailSvc   EmailService
}

func NewLoanService(
	loanRepo repository.LoanRepository,
	memberRepo repository.MemberRepository,
	atomic repository.Atomizer,
	emailSvc EmailService,
) LoanService {
	return &loanService{
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
		atomic:     atomic,
		emailSvc:   emailSvc,
	}
}

func (s *loanService) Disburse(ctx context.Context, borrowerID string, amount float64, borrowDate, dueDate time.Time) (*domain.Loan, error) {
	logger.EnterMethod("loanService.Disburse", "borrowerID", borrowerID, "amount", amount)

	if amount <= 0 {
		return nil, domain.Validationf("loan amount must be positive, got %.2f", amount)
	}
	if !dueDate.After(borrowDate) {
		return nil, domain.Validationf("due date must be after borrow date")
	}

	borrower, err := s.memberRepo.GetByID(ctx, borrowerID)
	if err != nil {
		return nil, err
	}

	loan := &domain.Loan{
		BorrowerID: borrowerID,
		Amount:     amount,
		AmountPaid: 0,
		Status:     domain.LoanStatusOutstanding,
		BorrowDate: borrowDate,
		DueDate:    dueDate,
	}

	// The loan record and its disbursement entry land together.
	err = s.atomic.Batch(ctx, func(r repository.Repos) error {
		if err := r.Loans.Create(ctx, loan); err != nil {
			return err
		}
		txn := &domain.Transaction{
			MemberID: &loan.BorrowerID,
			Type:     domain.TransactionTypeLoanDisbursement,
			Amount:   -amount,
			Date:     borrowDate,
			LoanID:   &loan.ID,
		}
		return r.Transactions.Create(ctx, txn)
	})
	if err != nil {
		logger.ExitMethodWithError("loanService.Disburse", err, "borrowerID", borrowerID)
		return nil, fmt.Errorf("failed to disburse loan: %w", err)
	}

	if borrower.Email != "" {
		_ = s.emailSvc.SendLoanDisbursed(ctx, borrower.Email, borrower.Name, amount, dueDate)
	}

	logger.ExitMethod("loanService.Disburse", "loanID", loan.ID)
	return loan, nil
}

func (s *loanService) RecordReturn(ctx context.Context, loanID int32, returnAmount float64, partial bool, date time.Time) (*domain.Loan, error) {
	logger.EnterMethod("loanService.RecordReturn", "loanID", loanID, "amount", returnAmount, "partial", partial)

	loan, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if loan.Status == domain.LoanStatusReturned {
		return nil, domain.Conflictf("loan %d is already returned", loanID)
	}

	// Remaining balance before this payment bounds the accepted amount.
	remaining := loan.Remaining()

	var txnType domain.TransactionType
	if partial {
		if returnAmount <= 0 {
			return nil, domain.Validationf("return amount must be positive, got %.2f", returnAmount)
		}
		if returnAmount > remaining {
			return nil, domain.Validationf("return amount %.2f exceeds remaining balance %.2f", returnAmount, remaining)
		}
		txnType = domain.TransactionTypeLoanPartialReturn
	} else {
		// A full return always pays off the remaining balance exactly.
		returnAmount = remaining
		txnType = domain.TransactionTypeLoanReturn
	}

	loan.AmountPaid += returnAmount
	loan.Status = loan.DeriveStatus()

	err = s.atomic.Batch(ctx, func(r repository.Repos) error {
		if err := r.Loans.Update(ctx, loan); err != nil {
			return err
		}
		txn := &domain.Transaction{
			MemberID: &loan.BorrowerID,
			Type:     txnType,
			Amount:   returnAmount,
			Date:     date,
			LoanID:   &loan.ID,
		}
		return r.Transactions.Create(ctx, txn)
	})
	if err != nil {
		logger.ExitMethodWithError("loanService.RecordReturn", err, "loanID", loanID)
		return nil, fmt.Errorf("failed to record return: %w", err)
	}

	logger.ExitMethod("loanService.RecordReturn", "loanID", loanID, "status", loan.Status)
	return loan, nil
}

func (s *loanService) GetLoan(ctx context.Context, loanID int32) (*domain.Loan, error) {
	return s.loanRepo.GetByID(ctx, loanID)
}

func (s *loanService) ListLoans(ctx context.Context) ([]domain.Loan, error) {
	return s.loanRepo.List(ctx)
}
