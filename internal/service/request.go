package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/ledger"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/repository"
)

const (
	minLoanAmount     = 100
	maxLoanAmount     = 100000
	memberExposureCap = 200000
	minDueDays        = 7
	maxDueDays        = 180
	minRejectReason   = 10
)

type requestService struct {
	contribRepo repository.ContributionRequestRepository
	loanReqRepo repository.LoanRequestRepository
	loanRepo    repository.LoanRepository
	txnRepo     repository.TransactionRepository
	memberRepo  repository.MemberRepository
	atomic      repository.Atomizer
	emailSvc    EmailService
}

func NewRequestService(
	contribRepo repository.ContributionRequestRepository,
	loanReqRepo repository.LoanRequestRepository,
	loanRepo repository.LoanRepository,
	txnRepo repository.TransactionRepository,
	memberRepo repository.MemberRepository,
	atomic repository.Atomizer,
	emailSvc EmailService,
) RequestService {
	return &requestService{
		contribRepo: contribRepo,
		loanReqRepo: loanReqRepo,
		loanRepo:    loanRepo,
		txnRepo:     txnRepo,
		memberRepo:  memberRepo,
		atomic:      atomic,
		emailSvc:    emailSvc,
	}
}

func (s *requestService) SubmitContribution(ctx context.Context, memberID string, txnType domain.TransactionType, amount float64, comments string) (*domain.ContributionRequest, error) {
	if !txnType.IsContribution() {
		return nil, domain.Validationf("type %q is not a contribution type", txnType)
	}
	if amount <= 0 {
		return nil, domain.Validationf("contribution amount must be positive, got %.2f", amount)
	}
	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	req := &domain.ContributionRequest{
		MemberID: memberID,
		Type:     txnType,
		Amount:   amount,
		Comments: comments,
		Status:   domain.RequestStatusPending,
	}
	if err := s.contribRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create contribution request: %w", err)
	}
	return req, nil
}

func (s *requestService) ApproveContribution(ctx context.Context, reviewerID string, requestID int32, adminComments string) (*domain.ContributionRequest, error) {
	logger.EnterMethod("requestService.ApproveContribution", "requestID", requestID, "reviewerID", reviewerID)

	var approved *domain.ContributionRequest

	// The contribution entry, the cached member total and the request
	// status move together or not at all.
	err := s.atomic.Batch(ctx, func(r repository.Repos) error {
		req, err := r.ContributionRequests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.RequestStatusPending {
			return domain.Conflictf("contribution request %d already processed", requestID)
		}

		txn := &domain.Transaction{
			MemberID: &req.MemberID,
			Type:     req.Type,
			Amount:   req.Amount,
			Date:     time.Now(),
			Comments: req.Comments,
		}
		if err := r.Transactions.Create(ctx, txn); err != nil {
			return err
		}
		if err := r.Members.AddToContribution(ctx, req.MemberID, req.Amount); err != nil {
			return err
		}

		now := time.Now()
		req.Status = domain.RequestStatusApproved
		req.ReviewedBy = &reviewerID
		req.ReviewedOn = &now
		req.AdminComments = adminComments
		if err := r.ContributionRequests.Update(ctx, req); err != nil {
			return err
		}
		approved = req
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("requestService.ApproveContribution", err, "requestID", requestID)
		return nil, err
	}

	s.notifyDecision(ctx, approved.MemberID, "contribution request", "approved", adminComments)

	logger.ExitMethod("requestService.ApproveContribution", "requestID", requestID)
	return approved, nil
}

func (s *requestService) RejectContribution(ctx context.Context, reviewerID string, requestID int32, reason string) (*domain.ContributionRequest, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, domain.Validationf("rejection reason is required")
	}

	req, err := s.contribRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusPending {
		return nil, domain.Conflictf("contribution request %d already processed", requestID)
	}

	now := time.Now()
	req.Status = domain.RequestStatusRejected
	req.ReviewedBy = &reviewerID
	req.ReviewedOn = &now
	req.RejectReason = reason
	if err := s.contribRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to reject contribution request: %w", err)
	}

	s.notifyDecision(ctx, req.MemberID, "contribution request", "rejected", reason)
	return req, nil
}

func (s *requestService) ListContributionRequests(ctx context.Context, memberID string) ([]domain.ContributionRequest, error) {
	if memberID != "" {
		return s.contribRepo.ListByMember(ctx, memberID)
	}
	return s.contribRepo.List(ctx)
}

// checkLoanAdmission runs the full set of loan admission rules against
// the given repositories. It is called at submission and again inside
// the approval transaction, so drifting aggregates are re-read under
// the same isolation as the writes they gate.
func (s *requestService) checkLoanAdmission(ctx context.Context, r repository.Repos, memberID string, amount float64, dueDate time.Time, submittedOn time.Time, checkDueWindow bool) error {
	if amount < minLoanAmount || amount > maxLoanAmount {
		return domain.Validationf("loan amount must be between %d and %d, got %.2f", minLoanAmount, maxLoanAmount, amount)
	}
	if checkDueWindow {
		// Calendar days, not elapsed hours: a due date seven days out at
		// midnight is admitted regardless of the submission time of day.
		days := domain.CalendarDaysBetween(submittedOn, dueDate)
		if days < minDueDays || days > maxDueDays {
			return domain.Validationf("due date must be %d to %d days out, got %d days", minDueDays, maxDueDays, days)
		}
	}

	loans, err := r.Loans.List(ctx)
	if err != nil {
		return err
	}
	outstanding := ledger.MemberOutstanding(loans, memberID)
	if outstanding+amount > memberExposureCap {
		return &domain.BudgetExceededError{
			Limit:     memberExposureCap - outstanding,
			Requested: amount,
			Msg:       "member exposure cap reached",
		}
	}

	txns, err := r.Transactions.List(ctx)
	if err != nil {
		return err
	}
	budget := ledger.Compute(txns, loans).LendingBudget()
	if amount > budget {
		return &domain.BudgetExceededError{
			Limit:     budget,
			Requested: amount,
			Msg:       "lending budget exceeded",
		}
	}
	return nil
}

func (s *requestService) SubmitLoan(ctx context.Context, memberID string, amount float64, dueDate time.Time, purpose string) (*domain.LoanRequest, error) {
	logger.EnterMethod("requestService.SubmitLoan", "memberID", memberID, "amount", amount)

	if _, err := s.memberRepo.GetByID(ctx, memberID); err != nil {
		return nil, err
	}

	now := time.Now()
	repos := repository.Repos{
		Members:              s.memberRepo,
		Transactions:         s.txnRepo,
		Loans:                s.loanRepo,
		ContributionRequests: s.contribRepo,
		LoanRequests:         s.loanReqRepo,
	}
	if err := s.checkLoanAdmission(ctx, repos, memberID, amount, dueDate, now, true); err != nil {
		logger.ExitMethodWithError("requestService.SubmitLoan", err, "memberID", memberID)
		return nil, err
	}

	req := &domain.LoanRequest{
		MemberID: memberID,
		Amount:   amount,
		DueDate:  dueDate,
		Purpose:  purpose,
		Status:   domain.RequestStatusPending,
	}
	if err := s.loanReqRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to create loan request: %w", err)
	}

	logger.ExitMethod("requestService.SubmitLoan", "requestID", req.ID)
	return req, nil
}

func (s *requestService) ApproveLoan(ctx context.Context, reviewerID string, requestID int32, approvedAmount float64, approvedDueDate time.Time, adminComments string) (*domain.Loan, error) {
	logger.EnterMethod("requestService.ApproveLoan", "requestID", requestID, "reviewerID", reviewerID)

	var (
		loan     *domain.Loan
		borrower string
	)

	// Serializable so two concurrent approvals cannot both clear the
	// budget check against the same stale total.
	err := s.atomic.Serializable(ctx, func(r repository.Repos) error {
		req, err := r.LoanRequests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.RequestStatusPending {
			return domain.Conflictf("loan request %d already processed", requestID)
		}

		// Admin overrides: zero values fall back to what was requested.
		amount := approvedAmount
		if amount == 0 {
			amount = req.Amount
		}
		dueDate := approvedDueDate
		if dueDate.IsZero() {
			dueDate = req.DueDate
		}
		now := time.Now()
		if !dueDate.After(now) {
			return domain.Validationf("approved due date must be in the future")
		}

		// Values may have drifted since submission; the due-date window
		// was fixed at submission time and is not re-imposed here.
		if err := s.checkLoanAdmission(ctx, r, req.MemberID, amount, dueDate, req.CreatedOn, false); err != nil {
			return err
		}

		loan = &domain.Loan{
			BorrowerID:    req.MemberID,
			Amount:        amount,
			AmountPaid:    0,
			Status:        domain.LoanStatusOutstanding,
			BorrowDate:    now,
			DueDate:       dueDate,
			LoanRequestID: &req.ID,
		}
		if err := r.Loans.Create(ctx, loan); err != nil {
			return err
		}

		txn := &domain.Transaction{
			MemberID: &req.MemberID,
			Type:     domain.TransactionTypeLoanDisbursement,
			Amount:   -amount,
			Date:     now,
			LoanID:   &loan.ID,
		}
		if err := r.Transactions.Create(ctx, txn); err != nil {
			return err
		}

		req.Status = domain.RequestStatusApproved
		req.ReviewedBy = &reviewerID
		req.ReviewedOn = &now
		req.AdminComments = adminComments
		req.LoanID = &loan.ID
		req.TransactionID = &txn.ID
		if err := r.LoanRequests.Update(ctx, req); err != nil {
			return err
		}
		borrower = req.MemberID
		return nil
	})
	if err != nil {
		logger.ExitMethodWithError("requestService.ApproveLoan", err, "requestID", requestID)
		return nil, err
	}

	s.notifyDecision(ctx, borrower, "loan request", "approved", adminComments)

	logger.ExitMethod("requestService.ApproveLoan", "requestID", requestID, "loanID", loan.ID)
	return loan, nil
}

func (s *requestService) RejectLoan(ctx context.Context, reviewerID string, requestID int32, reason string) (*domain.LoanRequest, error) {
	if len(strings.TrimSpace(reason)) < minRejectReason {
		return nil, domain.Validationf("rejection reason must be at least %d characters", minRejectReason)
	}

	req, err := s.loanReqRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if req.Status != domain.RequestStatusPending {
		return nil, domain.Conflictf("loan request %d already processed", requestID)
	}

	now := time.Now()
	req.Status = domain.RequestStatusRejected
	req.ReviewedBy = &reviewerID
	req.ReviewedOn = &now
	req.RejectReason = reason
	if err := s.loanReqRepo.Update(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to reject loan request: %w", err)
	}

	s.notifyDecision(ctx, req.MemberID, "loan request", "rejected", reason)
	return req, nil
}

func (s *requestService) CancelLoan(ctx context.Context, memberID string, requestID int32) error {
	req, err := s.loanReqRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req.MemberID != memberID {
		return domain.Validationf("only the requesting member may cancel a loan request")
	}
	if req.Status != domain.RequestStatusPending {
		return domain.Conflictf("loan request %d already processed", requestID)
	}
	return s.loanReqRepo.Delete(ctx, requestID)
}

func (s *requestService) ListLoanRequests(ctx context.Context, memberID string) ([]domain.LoanRequest, error) {
	if memberID != "" {
		return s.loanReqRepo.ListByMember(ctx, memberID)
	}
	return s.loanReqRepo.List(ctx)
}

// notifyDecision emails the affected member, best effort.
func (s *requestService) notifyDecision(ctx context.Context, memberID, kind, decision, note string) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil || member.Email == "" {
		return
	}
	_ = s.emailSvc.SendRequestDecision(ctx, member.Email, member.Name, kind, decision, note)
}
