package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"time"

	_ "github.com/lib/pq"

	"groupfund-backend/internal/config"
	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/logger"
	"groupfund-backend/internal/repository/postgres"
	"groupfund-backend/internal/service"
)

// Seeds a development database with a small fund: one admin, a handful
// of members, a contribution history and a few loans in each state.
func main() {
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	adminToken := flag.String("admin-token", "admin-seed-token", "Identity token for the seeded admin")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Seeding development data...", "database", cfg.Database.Database)

	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	store := postgres.NewStore(db)
	memberSvc := service.NewMemberService(store.MemberRepository, store.TransactionRepository, store)
	ctx := context.Background()

	admin, err := memberSvc.CreateAdmin(ctx, *adminToken, "Seed Admin", "admin@groupfund.local", "changeme", domain.RoleAdmin)
	if err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	logger.Info("Created admin", "member_id", admin.ID)

	names := []string{
		"Alice Johnson", "Bob Smith", "Charlie Brown", "Diana Prince",
		"Ethan Hunt", "Fiona Green", "George Wilson", "Hannah Lee",
	}
	members := make([]*domain.Member, 0, len(names))
	for _, name := range names {
		member, err := memberSvc.CreateMember(ctx, name)
		if err != nil {
			log.Fatalf("Failed to create member %s: %v", name, err)
		}
		logger.Info("Created member", "name", member.Name, "identifier", member.Identifier)
		members = append(members, member)
	}

	type seedContribution struct {
		member  int
		txnType domain.TransactionType
		amount  float64
		daysAgo int
	}
	contributions := []seedContribution{
		{0, domain.TransactionTypeContributionMonthly, 200, 60},
		{0, domain.TransactionTypeContributionMonthly, 200, 30},
		{0, domain.TransactionTypeContributionMonthly, 200, 5},
		{1, domain.TransactionTypeContributionQuarterly, 500, 90},
		{1, domain.TransactionTypeContributionQuarterly, 500, 10},
		{2, domain.TransactionTypeContributionMonthly, 300, 45},
		{2, domain.TransactionTypeContributionMonthly, 300, 15},
		{3, domain.TransactionTypeContributionMonthly, 150, 40},
		{3, domain.TransactionTypeContributionMonthly, 150, 8},
		{4, domain.TransactionTypeContributionMonthly, 200, 50},
		{4, domain.TransactionTypeContributionMonthly, 200, 20},
		{5, domain.TransactionTypeContributionMonthly, 200, 35},
		{5, domain.TransactionTypeContributionMonthly, 200, 7},
		{6, domain.TransactionTypeContributionQuarterly, 500, 80},
		{7, domain.TransactionTypeContributionMonthly, 200, 25},
		{7, domain.TransactionTypeContributionMonthly, 200, 3},
	}

	now := time.Now()
	for _, c := range contributions {
		memberID := members[c.member].ID
		txn := &domain.Transaction{
			MemberID: &memberID,
			Type:     c.txnType,
			Amount:   c.amount,
			Date:     now.AddDate(0, 0, -c.daysAgo),
		}
		if err := store.TransactionRepository.Create(ctx, txn); err != nil {
			log.Fatalf("Failed to create contribution: %v", err)
		}
		if err := store.MemberRepository.AddToContribution(ctx, memberID, c.amount); err != nil {
			log.Fatalf("Failed to update lifetime contribution: %v", err)
		}
	}
	logger.Info("Seeded contributions", "count", len(contributions))

	type seedLoan struct {
		member        int
		amount        float64
		borrowDaysAgo int
		dueInDays     int
		returned      bool
		returnDaysAgo int
	}
	loans := []seedLoan{
		{member: 1, amount: 500, borrowDaysAgo: 20, dueInDays: 10},
		{member: 4, amount: 300, borrowDaysAgo: 10, dueInDays: 20},
		{member: 3, amount: 200, borrowDaysAgo: 60, dueInDays: -30, returned: true, returnDaysAgo: 35},
	}

	for _, l := range loans {
		borrowerID := members[l.member].ID
		borrowDate := now.AddDate(0, 0, -l.borrowDaysAgo)
		loan := &domain.Loan{
			BorrowerID: borrowerID,
			Amount:     l.amount,
			Status:     domain.LoanStatusOutstanding,
			BorrowDate: borrowDate,
			DueDate:    now.AddDate(0, 0, l.dueInDays),
		}
		if l.returned {
			loan.AmountPaid = l.amount
			loan.Status = domain.LoanStatusReturned
		}
		if err := store.LoanRepository.Create(ctx, loan); err != nil {
			log.Fatalf("Failed to create loan: %v", err)
		}

		disbursement := &domain.Transaction{
			MemberID: &borrowerID,
			Type:     domain.TransactionTypeLoanDisbursement,
			Amount:   -l.amount,
			Date:     borrowDate,
			LoanID:   &loan.ID,
		}
		if err := store.TransactionRepository.Create(ctx, disbursement); err != nil {
			log.Fatalf("Failed to create disbursement entry: %v", err)
		}

		if l.returned {
			ret := &domain.Transaction{
				MemberID: &borrowerID,
				Type:     domain.TransactionTypeLoanReturn,
				Amount:   l.amount,
				Date:     now.AddDate(0, 0, -l.returnDaysAgo),
				LoanID:   &loan.ID,
			}
			if err := store.TransactionRepository.Create(ctx, ret); err != nil {
				log.Fatalf("Failed to create return entry: %v", err)
			}
		}
	}
	logger.Info("Seeded loans", "count", len(loans))

	logger.Info("Seed complete. Admin logs in with the seeded email and password; members use the identifiers printed above.")
}
