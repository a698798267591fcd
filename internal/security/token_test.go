package security

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groupfund-backend/internal/domain"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	manager := NewTokenManager("test-secret", 60)

	member := &domain.Member{ID: "m1", Name: "Alice", Role: domain.RoleMember}
	token, err := manager.Generate(member)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := manager.Validate(token)
	assert.NoError(t, err)
	assert.Equal(t, "m1", claims.MemberID)
	assert.Equal(t, "Alice", claims.Name)
	assert.Equal(t, domain.RoleMember, claims.Role)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	manager := NewTokenManager("test-secret", 60)
	other := NewTokenManager("other-secret", 60)

	token, err := manager.Generate(&domain.Member{ID: "m1", Role: domain.RoleAdmin})
	assert.NoError(t, err)

	_, err = other.Validate(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	manager := NewTokenManager("test-secret", -1)

	token, err := manager.Generate(&domain.Member{ID: "m1", Role: domain.RoleMember})
	assert.NoError(t, err)

	_, err = manager.Validate(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	manager := NewTokenManager("test-secret", 60)

	_, err := manager.Validate("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
