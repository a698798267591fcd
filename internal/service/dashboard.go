package service

import (
	"context"
	"time"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/ledger"
	"groupfund-backend/internal/repository"
)

type dashboardService struct {
	txnRepo    repository.TransactionRepository
	loanRepo   repository.LoanRepository
	memberRepo repository.MemberRepository
}

func NewDashboardService(
	txnRepo repository.TransactionRepository,
	loanRepo repository.LoanRepository,
	memberRepo repository.MemberRepository,
) DashboardService {
	return &dashboardService{
		txnRepo:    txnRepo,
		loanRepo:   loanRepo,
		memberRepo: memberRepo,
	}
}

// GetDashboard rereads the full record set and recomputes every metric.
// No caching, no incremental aggregation.
func (s *dashboardService) GetDashboard(ctx context.Context, memberID string) (*DashboardView, error) {
	txns, err := s.txnRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.loanRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	view := &DashboardView{
		Summary: ledger.Compute(txns, loans),
	}

	if memberID != "" {
		member, err := s.memberRepo.GetByID(ctx, memberID)
		if err != nil {
			return nil, err
		}
		view.MyContribution = member.LifetimeContribution
	}
	return view, nil
}

func (s *dashboardService) ListTransactions(ctx context.Context) ([]TransactionView, error) {
	txns, err := s.txnRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names, err := s.memberNames(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(txns))
	for _, txn := range txns {
		name := ""
		if txn.MemberID != nil {
			name = names[*txn.MemberID]
		}
		views = append(views, TransactionView{
			ID:         txn.ID,
			MemberName: name,
			Type:       txn.Type,
			Amount:     txn.Amount,
			Date:       txn.Date,
			Comments:   txn.Comments,
		})
	}
	return views, nil
}

func (s *dashboardService) ListMemberTransactions(ctx context.Context, memberID string) ([]TransactionView, error) {
	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	txns, err := s.txnRepo.ListByMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	views := make([]TransactionView, 0, len(txns))
	for _, txn := range txns {
		views = append(views, TransactionView{
			ID:         txn.ID,
			MemberName: member.Name,
			Type:       txn.Type,
			Amount:     txn.Amount,
			Date:       txn.Date,
			Comments:   txn.Comments,
		})
	}
	return views, nil
}

func (s *dashboardService) ListActiveLoans(ctx context.Context) ([]LoanView, error) {
	loans, err := s.loanRepo.ListByStatus(ctx, domain.LoanStatusOutstanding)
	if err != nil {
		return nil, err
	}
	names, err := s.memberNames(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	views := make([]LoanView, 0, len(loans))
	for _, loan := range loans {
		views = append(views, LoanView{
			ID:            loan.ID,
			BorrowerName:  names[loan.BorrowerID],
			Amount:        loan.Amount,
			AmountPaid:    loan.AmountPaid,
			Remaining:     loan.Remaining(),
			BorrowDate:    loan.BorrowDate,
			DueDate:       loan.DueDate,
			DaysRemaining: loan.DaysRemaining(now),
			Overdue:       loan.IsOverdue(now),
		})
	}
	return views, nil
}

func (s *dashboardService) ListMembers(ctx context.Context) ([]MemberView, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]MemberView, 0, len(members))
	for _, m := range members {
		views = append(views, MemberView{
			ID:                   m.ID,
			Name:                 m.Name,
			Role:                 m.Role,
			LifetimeContribution: m.LifetimeContribution,
		})
	}
	return views, nil
}

func (s *dashboardService) memberNames(ctx context.Context) (map[string]string, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(members))
	for _, m := range members {
		names[m.ID] = m.Name
	}
	return names, nil
}
