package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"groupfund-backend/internal/domain"
)

func hashFor(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	return string(hash)
}

func TestAuthService_LoginAdmin(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(memberRepo, tokens)

		admin := &domain.Member{
			ID: "t1", Name: "Admin", Role: domain.RoleAdmin,
			Email: "a@test.com", PasswordHash: hashFor(t, "secret"),
		}
		memberRepo.On("GetByID", ctx, "t1").Return(admin, nil).Maybe()
		memberRepo.On("GetByEmail", ctx, "a@test.com").Return(admin, nil).Once()
		tokens.On("Generate", admin).Return("jwt-token", nil).Once()

		token, member, err := svc.LoginAdmin(ctx, "a@test.com", "secret")
		assert.NoError(t, err)
		assert.Equal(t, "jwt-token", token)
		assert.Equal(t, "t1", member.ID)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(memberRepo, tokens)

		memberRepo.On("GetByEmail", ctx, "a@test.com").Return(&domain.Member{
			ID: "t1", Email: "a@test.com", PasswordHash: hashFor(t, "secret"),
		}, nil).Once()

		_, _, err := svc.LoginAdmin(ctx, "a@test.com", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(memberRepo, tokens)

		memberRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, domain.NotFound("member", "ghost@test.com")).Once()

		_, _, err := svc.LoginAdmin(ctx, "ghost@test.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("MemberWithoutPassword", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(memberRepo, tokens)

		memberRepo.On("GetByEmail", ctx, "m@test.com").Return(&domain.Member{
			ID: "m1", Email: "m@test.com",
		}, nil).Once()

		_, _, err := svc.LoginAdmin(ctx, "m@test.com", "anything")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_LoginMember(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(memberRepo, tokens)

		member := &domain.Member{ID: "m1", Name: "Alice", Role: domain.RoleMember, Identifier: "AB23CD"}
		memberRepo.On("GetByIdentifier", ctx, "AB23CD").Return(member, nil).Once()
		tokens.On("Generate", member).Return("jwt-token", nil).Once()

		token, got, err := svc.LoginMember(ctx, "AB23CD")
		assert.NoError(t, err)
		assert.Equal(t, "jwt-token", token)
		assert.Equal(t, "m1", got.ID)
	})

	t.Run("UnknownIdentifier", func(t *testing.T) {
		memberRepo := new(MockMemberRepo)
		tokens := new(MockTokenManager)
		svc := NewAuthService(memberRepo, tokens)

		memberRepo.On("GetByIdentifier", ctx, "ZZZZZZ").Return(nil, domain.NotFound("member", "ZZZZZZ")).Once()

		_, _, err := svc.LoginMember(ctx, "ZZZZZZ")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("EmptyIdentifier", func(t *testing.T) {
		svc := NewAuthService(new(MockMemberRepo), new(MockTokenManager))
		_, _, err := svc.LoginMember(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
