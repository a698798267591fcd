package domain

import "time"

type LoanStatus string

const (
	LoanStatusOutstanding LoanStatus = "Outstanding"
	LoanStatusReturned    LoanStatus = "Returned"
)

type Loan struct {
	ID            int32      `json:"id"`
	BorrowerID    string     `json:"borrower_id"`
	Amount        float64    `json:"amount"`      // original principal, fixed at creation
	AmountPaid    float64    `json:"amount_paid"` // monotonically non-decreasing
	Status        LoanStatus `json:"status"`
	BorrowDate    time.Time  `json:"borrow_date"`
	DueDate       time.Time  `json:"due_date"`
	LoanRequestID *int32     `json:"loan_request_id,omitempty"`
	CreatedOn     time.Time  `json:"created_on"`
}

// Remaining returns the unpaid balance.
func (l *Loan) Remaining() float64 {
	return l.Amount - l.AmountPaid
}

// DeriveStatus recomputes the status from the paid total. Returned is
// terminal: once amountPaid covers the principal the loan never goes
// back to Outstanding.
func (l *Loan) DeriveStatus() LoanStatus {
	if l.AmountPaid >= l.Amount {
		return LoanStatusReturned
	}
	return LoanStatusOutstanding
}

// CalendarDaysBetween counts whole calendar days from a to b, ignoring
// the time of day on either end. Negative when b precedes a.
func CalendarDaysBetween(a, b time.Time) int {
	from := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

// DaysRemaining is negative when the loan is past due.
func (l *Loan) DaysRemaining(now time.Time) int {
	return CalendarDaysBetween(now, l.DueDate)
}

func (l *Loan) IsOverdue(now time.Time) bool {
	return l.Status == LoanStatusOutstanding && l.DaysRemaining(now) < 0
}
