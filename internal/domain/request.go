package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "Pending"
	RequestStatusApproved RequestStatus = "Approved"
	RequestStatusRejected RequestStatus = "Rejected"
)

// ContributionRequest is a member's pending contribution awaiting admin
// review. Approval produces exactly one contribution transaction;
// rejection has no ledger effect.
type ContributionRequest struct {
	ID            int32           `json:"id"`
	MemberID      string          `json:"member_id"`
	Type          TransactionType `json:"type"`
	Amount        float64         `json:"amount"`
	Comments      string          `json:"comments,omitempty"`
	Status        RequestStatus   `json:"status"`
	ReviewedBy    *string         `json:"reviewed_by,omitempty"`
	ReviewedOn    *time.Time      `json:"reviewed_on,omitempty"`
	AdminComments string          `json:"admin_comments,omitempty"`
	RejectReason  string          `json:"reject_reason,omitempty"`
	CreatedOn     time.Time       `json:"created_on"`
}

// LoanRequest is a member's pending loan application. Approval produces
// one Loan plus its disbursement transaction; the request keeps back
// references to both. A Pending request may be withdrawn by the
// requesting member, which deletes the record.
type LoanRequest struct {
	ID            int32         `json:"id"`
	MemberID      string        `json:"member_id"`
	Amount        float64       `json:"amount"`
	DueDate       time.Time     `json:"due_date"`
	Purpose       string        `json:"purpose,omitempty"`
	Status        RequestStatus `json:"status"`
	ReviewedBy    *string       `json:"reviewed_by,omitempty"`
	ReviewedOn    *time.Time    `json:"reviewed_on,omitempty"`
	AdminComments string        `json:"admin_comments,omitempty"`
	RejectReason  string        `json:"reject_reason,omitempty"`
	LoanID        *int32        `json:"loan_id,omitempty"`
	TransactionID *int32        `json:"transaction_id,omitempty"`
	CreatedOn     time.Time     `json:"created_on"`
}
