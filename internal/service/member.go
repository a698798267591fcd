package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/repository"
)

const (
	identifierLength   = 6
	identifierAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789" // no 0/O/1/I
	identifierRetries  = 5
)

type memberService struct {
	memberRepo repository.MemberRepository
	txnRepo    repository.TransactionRepository
	atomic     repository.Atomizer
}

func NewMemberService(memberRepo repository.MemberRepository, txnRepo repository.TransactionRepository, atomic repository.Atomizer) MemberService {
	return &memberService{memberRepo: memberRepo, txnRepo: txnRepo, atomic: atomic}
}

func (s *memberService) CreateAdmin(ctx context.Context, identityToken, name, email, password string, role domain.Role) (*domain.Member, error) {
	logger.EnterMethod("memberService.CreateAdmin", "identityToken", identityToken)

	if strings.TrimSpace(identityToken) == "" {
		return nil, domain.Validationf("identity token is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("member name is required")
	}
	if !role.IsAdmin() {
		return nil, domain.Validationf("role %q is not an admin role", role)
	}

	// The identity token is externally supplied; refuse reuse up front.
	_, err := s.memberRepo.GetByID(ctx, identityToken)
	if err == nil {
		return nil, domain.Conflictf("member identity %q already taken", identityToken)
	}
	var notFound *domain.NotFoundError
	if !errors.As(err, &notFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	member := &domain.Member{
		ID:           identityToken,
		Name:         name,
		Role:         role,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		logger.ExitMethodWithError("memberService.CreateAdmin", err, "identityToken", identityToken)
		return nil, err
	}

	logger.ExitMethod("memberService.CreateAdmin", "memberID", member.ID)
	return member, nil
}

func (s *memberService) CreateMember(ctx context.Context, name string) (*domain.Member, error) {
	logger.EnterMethod("memberService.CreateMember", "name", name)

	if strings.TrimSpace(name) == "" {
		return nil, domain.Validationf("member name is required")
	}

	member := &domain.Member{
		ID:   uuid.NewString(),
		Name: name,
		Role: domain.RoleMember,
	}

	// Regenerate-on-collision: the identifier doubles as a login
	// credential, so it must be unique across members.
	var lastErr error
	for attempt := 0; attempt < identifierRetries; attempt++ {
		identifier, err := generateIdentifier()
		if err != nil {
			return nil, err
		}
		member.Identifier = identifier

		err = s.memberRepo.Create(ctx, member)
		if err == nil {
			logger.ExitMethod("memberService.CreateMember", "memberID", member.ID, "identifier", member.Identifier)
			return member, nil
		}
		var conflict *domain.ConflictError
		if !errors.As(err, &conflict) {
			logger.ExitMethodWithError("memberService.CreateMember", err, "name", name)
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("failed to generate a unique identifier: %w", lastErr)
}

func (s *memberService) ListMembers(ctx context.Context) ([]domain.Member, error) {
	return s.memberRepo.List(ctx)
}

func (s *memberService) UpdateMember(ctx context.Context, memberID, name, email string) (*domain.Member, error) {
	logger.EnterMethod("memberService.UpdateMember", "memberID", memberID)

	if strings.TrimSpace(name) == "" && strings.TrimSpace(email) == "" {
		return nil, domain.Validationf("nothing to update")
	}

	member, err := s.memberRepo.GetByID(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) != "" {
		member.Name = name
	}
	if strings.TrimSpace(email) != "" {
		member.Email = email
	}
	if err := s.memberRepo.Update(ctx, member); err != nil {
		logger.ExitMethodWithError("memberService.UpdateMember", err, "memberID", memberID)
		return nil, err
	}

	logger.ExitMethod("memberService.UpdateMember", "memberID", memberID)
	return member, nil
}

func (s *memberService) AddExpense(ctx context.Context, amount float64, audit bool, date time.Time, comments string) (*domain.Transaction, error) {
	logger.EnterMethod("memberService.AddExpense", "amount", amount, "audit", audit)

	if amount <= 0 {
		return nil, domain.Validationf("expense amount must be positive, got %.2f", amount)
	}

	txnType := domain.TransactionTypeExpenseActual
	if audit {
		txnType = domain.TransactionTypeExpenseAudit
	}
	txn := &domain.Transaction{
		Type:     txnType,
		Amount:   -amount,
		Date:     date,
		Comments: comments,
	}

	if audit {
		// Audit expenses are informational only: one ledger entry, no
		// balance effects.
		if err := s.txnRepo.Create(ctx, txn); err != nil {
			return nil, fmt.Errorf("failed to record audit expense: %w", err)
		}
		logger.ExitMethod("memberService.AddExpense", "transactionID", txn.ID)
		return txn, nil
	}

	// Actual expense: equal split over the current member set plus the
	// ledger entry, applied as one atomic batch.
	err := s.atomic.Batch(ctx, func(r repository.Repos) error {
		members, err := r.Members.List(ctx)
		if err != nil {
			return err
		}
		if len(members) == 0 {
			return domain.Validationf("cannot split an expense with no members")
		}

		share := amount / float64(len(members))
		for _, m := range members {
			if err := r.Members.AddToContribution(ctx, m.ID, -share); err != nil {
				return err
			}
		}
		return r.Transactions.Create(ctx, txn)
	})
	if err != nil {
		logger.ExitMethodWithError("memberService.AddExpense", err, "amount", amount)
		return nil, err
	}

	logger.ExitMethod("memberService.AddExpense", "transactionID", txn.ID)
	return txn, nil
}

func generateIdentifier() (string, error) {
	buf := make([]byte, identifierLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}
	out := make([]byte, identifierLength)
	for i, b := range buf {
		out[i] = identifierAlphabet[int(b)%len(identifierAlphabet)]
	}
	return string(out), nil
}
