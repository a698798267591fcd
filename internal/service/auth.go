package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/repository"
	"groupfund-backend/internal/security"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type authService struct {
	memberRepo repository.MemberRepository
	tokens     security.TokenManager
}

func NewAuthService(memberRepo repository.MemberRepository, tokens security.TokenManager) AuthService {
	return &authService{memberRepo: memberRepo, tokens: tokens}
}

func (s *authService) LoginAdmin(ctx context.Context, email, password string) (string, *domain.Member, error) {
	member, err := s.memberRepo.GetByEmail(ctx, email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if member.PasswordHash == "" {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(member)
	if err != nil {
		return "", nil, err
	}
	return token, member, nil
}

// LoginMember resolves the short public login code handed out at
// member creation.
func (s *authService) LoginMember(ctx context.Context, identifier string) (string, *domain.Member, error) {
	if identifier == "" {
		return "", nil, ErrInvalidCredentials
	}
	member, err := s.memberRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	token, err := s.tokens.Generate(member)
	if err != nil {
		return "", nil, err
	}
	return token, member, nil
}
