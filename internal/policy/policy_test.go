package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"groupfund-backend/internal/domain"
)

func TestAllowed(t *testing.T) {
	cases := []struct {
		name string
		role domain.Role
		op   Operation
		want bool
	}{
		{"AdminAddsMember", domain.RoleAdmin, OpAddMember, true},
		{"CoAdminCannotAddMember", domain.RoleCoAdmin, OpAddMember, false},
		{"MemberCannotAddMember", domain.RoleMember, OpAddMember, false},
		{"AdminUpdatesMember", domain.RoleAdmin, OpUpdateMember, true},
		{"CoAdminCannotUpdateMember", domain.RoleCoAdmin, OpUpdateMember, false},
		{"CoAdminReviewsLoanRequest", domain.RoleCoAdmin, OpReviewLoanRequest, true},
		{"MemberCannotReviewLoanRequest", domain.RoleMember, OpReviewLoanRequest, false},
		{"MemberSubmitsLoanRequest", domain.RoleMember, OpSubmitLoanRequest, true},
		{"MemberCancelsLoanRequest", domain.RoleMember, OpCancelLoanRequest, true},
		{"MemberViewsDashboard", domain.RoleMember, OpViewDashboard, true},
		{"MemberCannotDisburse", domain.RoleMember, OpDisburseLoan, false},
		{"CoAdminAddsExpense", domain.RoleCoAdmin, OpAddExpense, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Allowed(tc.role, tc.op))
		})
	}
}

func TestAllowed_UnknownRoleGetsMemberAccess(t *testing.T) {
	unknown := domain.Role("Auditor")

	assert.True(t, Allowed(unknown, OpViewDashboard))
	assert.True(t, Allowed(unknown, OpSubmitLoanRequest))
	assert.False(t, Allowed(unknown, OpReviewLoanRequest))
	assert.False(t, Allowed(unknown, OpAddMember))
}

func TestAllowed_UnknownOperationDenied(t *testing.T) {
	assert.False(t, Allowed(domain.RoleAdmin, Operation("drop_tables")))
}
