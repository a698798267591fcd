package service

import (
	"context"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}

func (s *emailService) SendRequestDecision(ctx context.Context, email, name, kind, decision, note string) error {
	subject := fmt.Sprintf("Your %s was %s", kind, decision)
	body := fmt.Sprintf("Hello %s,\n\nYour %s has been %s.", name, kind, decision)
	if note != "" {
		body += fmt.Sprintf("\n\nNote from the admin: %s", note)
	}
	body += "\n\nBest regards,\nThe Group Fund Team"
	return s.send(email, subject, body)
}

func (s *emailService) SendLoanDisbursed(ctx context.Context, email, name string, amount float64, dueDate time.Time) error {
	subject := "Loan disbursed"
	body := fmt.Sprintf("Hello %s,\n\nA loan of %.2f has been disbursed to you. It is due on %s.\n\nBest regards,\nThe Group Fund Team",
		name, amount, dueDate.Format("2006-01-02"))
	return s.send(email, subject, body)
}

func (s *emailService) SendOverdueReminder(ctx context.Context, email, name string, remaining float64, daysOverdue int) error {
	subject := "Loan repayment overdue"
	body := fmt.Sprintf("Hello %s,\n\nYour loan is overdue by %d days. The remaining balance is %.2f. Please arrange repayment.\n\nBest regards,\nThe Group Fund Team",
		name, daysOverdue, remaining)
	return s.send(email, subject, body)
}
