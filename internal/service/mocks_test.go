package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/repository"
	"groupfund-backend/internal/security"
)

// MockMemberRepo
type MockMemberRepo struct {
	mock.Mock
}

func (m *MockMemberRepo) Create(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) GetByIdentifier(ctx context.Context, identifier string) (*domain.Member, error) {
	args := m.Called(ctx, identifier)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Member), args.Error(1)
}
func (m *MockMemberRepo) List(ctx context.Context) ([]domain.Member, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Member), args.Error(1)
}
func (m *MockMemberRepo) Update(ctx context.Context, member *domain.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}
func (m *MockMemberRepo) AddToContribution(ctx context.Context, id string, delta float64) error {
	args := m.Called(ctx, id, delta)
	return args.Error(0)
}

// MockTransactionRepo
type MockTransactionRepo struct {
	mock.Mock
}

func (m *MockTransactionRepo) Create(ctx context.Context, txn *domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}
func (m *MockTransactionRepo) GetByID(ctx context.Context, id int32) (*domain.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) List(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}
func (m *MockTransactionRepo) ListByMember(ctx context.Context, memberID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Create(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Update(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) List(ctx context.Context) ([]domain.Loan, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByStatus(ctx context.Context, status domain.LoanStatus) ([]domain.Loan, error) {
	args := m.Called(ctx, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.Loan, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

// MockContributionRequestRepo
type MockContributionRequestRepo struct {
	mock.Mock
}

func (m *MockContributionRequestRepo) Create(ctx context.Context, req *domain.ContributionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockContributionRequestRepo) GetByID(ctx context.Context, id int32) (*domain.ContributionRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContributionRequest), args.Error(1)
}
func (m *MockContributionRequestRepo) Update(ctx context.Context, req *domain.ContributionRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockContributionRequestRepo) List(ctx context.Context) ([]domain.ContributionRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContributionRequest), args.Error(1)
}
func (m *MockContributionRequestRepo) ListByMember(ctx context.Context, memberID string) ([]domain.ContributionRequest, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ContributionRequest), args.Error(1)
}

// MockLoanRequestRepo
type MockLoanRequestRepo struct {
	mock.Mock
}

func (m *MockLoanRequestRepo) Create(ctx context.Context, req *domain.LoanRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockLoanRequestRepo) GetByID(ctx context.Context, id int32) (*domain.LoanRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoanRequest), args.Error(1)
}
func (m *MockLoanRequestRepo) Update(ctx context.Context, req *domain.LoanRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}
func (m *MockLoanRequestRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockLoanRequestRepo) List(ctx context.Context) ([]domain.LoanRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRequest), args.Error(1)
}
func (m *MockLoanRequestRepo) ListByMember(ctx context.Context, memberID string) ([]domain.LoanRequest, error) {
	args := m.Called(ctx, memberID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LoanRequest), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRequestDecision(ctx context.Context, email, name, kind, decision, note string) error {
	args := m.Called(ctx, email, name, kind, decision, note)
	return args.Error(0)
}
func (m *MockEmailService) SendLoanDisbursed(ctx context.Context, email, name string, amount float64, dueDate time.Time) error {
	args := m.Called(ctx, email, name, amount, dueDate)
	return args.Error(0)
}
func (m *MockEmailService) SendOverdueReminder(ctx context.Context, email, name string, remaining float64, daysOverdue int) error {
	args := m.Called(ctx, email, name, remaining, daysOverdue)
	return args.Error(0)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) Generate(member *domain.Member) (string, error) {
	args := m.Called(member)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) Validate(tokenString string) (*security.MemberClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.MemberClaims), args.Error(1)
}

// fakeAtomizer runs callbacks directly against the supplied mock-backed
// repositories. Transaction boundaries collapse in unit tests.
type fakeAtomizer struct {
	repos repository.Repos
}

func (f *fakeAtomizer) Batch(ctx context.Context, fn func(repository.Repos) error) error {
	return fn(f.repos)
}

func (f *fakeAtomizer) Serializable(ctx context.Context, fn func(repository.Repos) error) error {
	return fn(f.repos)
}

func newFakeAtomizer(
	members *MockMemberRepo,
	txns *MockTransactionRepo,
	loans *MockLoanRepo,
	contribs *MockContributionRequestRepo,
	loanReqs *MockLoanRequestRepo,
) *fakeAtomizer {
	return &fakeAtomizer{repos: repository.Repos{
		Members:              members,
		Transactions:         txns,
		Loans:                loans,
		ContributionRequests: contribs,
		LoanRequests:         loanReqs,
	}}
}
