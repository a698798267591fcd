// Package policy is the single capability-check layer: every operation
// the API exposes is gated here by role, instead of per-handler guards.
package policy

import "groupfund-backend/internal/domain"

type Operation string

const (
	OpViewDashboard             Operation = "view_dashboard"
	OpAddMember                 Operation = "add_member"
	OpUpdateMember              Operation = "update_member"
	OpDisburseLoan              Operation = "disburse_loan"
	OpRecordReturn              Operation = "record_return"
	OpAddExpense                Operation = "add_expense"
	OpSubmitContributionRequest Operation = "submit_contribution_request"
	OpReviewContributionRequest Operation = "review_contribution_request"
	OpSubmitLoanRequest         Operation = "submit_loan_request"
	OpReviewLoanRequest         Operation = "review_loan_request"
	OpCancelLoanRequest         Operation = "cancel_loan_request"
)

// capabilities maps each operation to the roles allowed to perform it.
// Unknown roles (newer schema versions) get member-level access only.
var capabilities = map[Operation]map[domain.Role]bool{
	OpViewDashboard:             {domain.RoleAdmin: true, domain.RoleCoAdmin: true, domain.RoleMember: true},
	OpAddMember:                 {domain.RoleAdmin: true},
	OpUpdateMember:              {domain.RoleAdmin: true},
	OpDisburseLoan:              {domain.RoleAdmin: true, domain.RoleCoAdmin: true},
	OpRecordReturn:              {domain.RoleAdmin: true, domain.RoleCoAdmin: true},
	OpAddExpense:                {domain.RoleAdmin: true, domain.RoleCoAdmin: true},
	OpSubmitContributionRequest: {domain.RoleAdmin: true, domain.RoleCoAdmin: true, domain.RoleMember: true},
	OpReviewContributionRequest: {domain.RoleAdmin: true, domain.RoleCoAdmin: true},
	OpSubmitLoanRequest:         {domain.RoleAdmin: true, domain.RoleCoAdmin: true, domain.RoleMember: true},
	OpReviewLoanRequest:         {domain.RoleAdmin: true, domain.RoleCoAdmin: true},
	OpCancelLoanRequest:         {domain.RoleAdmin: true, domain.RoleCoAdmin: true, domain.RoleMember: true},
}

// Allowed reports whether role may perform op.
func Allowed(role domain.Role, op Operation) bool {
	roles, ok := capabilities[op]
	if !ok {
		return false
	}
	if roles[role] {
		return true
	}
	// open role enum: anything unrecognized is treated as a plain member
	if !role.IsAdmin() && role != domain.RoleMember {
		return roles[domain.RoleMember]
	}
	return false
}
