package jobs

import (
	"context"
	"time"

	"groupfund-backend/internal/logger"
)

// SendOverdueLoanReminders emails every borrower whose loan is past its
// due date and still carries a balance.
func (jr *JobRunner) SendOverdueLoanReminders() {
	jr.runWithRecovery("SendOverdueLoanReminders", func() {
		ctx := context.Background()
		now := time.Now()

		loans, err := jr.store.LoanRepository.ListOverdue(ctx, now)
		if err != nil {
			logger.Error("Failed to list overdue loans", "error", err)
			return
		}

		sent := 0
		for _, loan := range loans {
			borrower, err := jr.store.MemberRepository.GetByID(ctx, loan.BorrowerID)
			if err != nil {
				logger.Error("Failed to load borrower for overdue loan",
					"loan_id", loan.ID,
					"member_id", loan.BorrowerID,
					"error", err)
				continue
			}
			if borrower.Email == "" {
				// Regular members log in by identifier and may have no
				// email on file. Nothing to send.
				logger.Debug("Skipping overdue reminder, borrower has no email",
					"loan_id", loan.ID,
					"member_id", loan.BorrowerID)
				continue
			}

			daysOverdue := int(now.Sub(loan.DueDate).Hours() / 24)
			if err := jr.services.Email.SendOverdueReminder(ctx, borrower.Email, borrower.Name, loan.Remaining(), daysOverdue); err != nil {
				logger.Error("Failed to send overdue reminder",
					"loan_id", loan.ID,
					"member_id", loan.BorrowerID,
					"error", err)
				continue
			}
			sent++
		}

		logger.Info("Overdue loan reminders sent",
			"overdue_loans", len(loans),
			"reminders_sent", sent)
	})
}
