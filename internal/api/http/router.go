package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"groupfund-backend/internal/policy"
	"groupfund-backend/internal/security"
	"groupfund-backend/internal/service"
)

// NewRouter builds the full API surface. Everything under /api except
// login requires a valid bearer token; mutating routes additionally go
// through the capability table.
func NewRouter(
	tokens security.TokenManager,
	authSvc service.AuthService,
	memberSvc service.MemberService,
	loanSvc service.LoanService,
	requestSvc service.RequestService,
	dashboardSvc service.DashboardService,
) http.Handler {
	authHandler := NewAuthHandler(authSvc)
	memberHandler := NewMemberHandler(memberSvc)
	loanHandler := NewLoanHandler(loanSvc)
	requestHandler := NewRequestHandler(requestSvc)
	dashboardHandler := NewDashboardHandler(dashboardSvc)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(NewAuthMiddleware(tokens).Handler)

	protected.HandleFunc("/dashboard", requireOp(policy.OpViewDashboard, dashboardHandler.GetDashboard)).Methods(http.MethodGet)
	protected.HandleFunc("/transactions", requireOp(policy.OpViewDashboard, dashboardHandler.ListTransactions)).Methods(http.MethodGet)
	protected.HandleFunc("/transactions/mine", requireOp(policy.OpViewDashboard, dashboardHandler.ListMyTransactions)).Methods(http.MethodGet)
	protected.HandleFunc("/members", requireOp(policy.OpViewDashboard, dashboardHandler.ListMembers)).Methods(http.MethodGet)

	protected.HandleFunc("/members", requireOp(policy.OpAddMember, memberHandler.CreateMember)).Methods(http.MethodPost)
	protected.HandleFunc("/members/{id}", requireOp(policy.OpUpdateMember, memberHandler.UpdateMember)).Methods(http.MethodPut)
	protected.HandleFunc("/expenses", requireOp(policy.OpAddExpense, memberHandler.AddExpense)).Methods(http.MethodPost)

	protected.HandleFunc("/loans", requireOp(policy.OpViewDashboard, loanHandler.ListLoans)).Methods(http.MethodGet)
	protected.HandleFunc("/loans/active", requireOp(policy.OpViewDashboard, dashboardHandler.ListActiveLoans)).Methods(http.MethodGet)
	protected.HandleFunc("/loans", requireOp(policy.OpDisburseLoan, loanHandler.Disburse)).Methods(http.MethodPost)
	protected.HandleFunc("/loans/{id:[0-9]+}", requireOp(policy.OpViewDashboard, loanHandler.GetLoan)).Methods(http.MethodGet)
	protected.HandleFunc("/loans/{id:[0-9]+}/return", requireOp(policy.OpRecordReturn, loanHandler.RecordReturn)).Methods(http.MethodPost)

	protected.HandleFunc("/contribution-requests", requireOp(policy.OpViewDashboard, requestHandler.ListContributionRequests)).Methods(http.MethodGet)
	protected.HandleFunc("/contribution-requests", requireOp(policy.OpSubmitContributionRequest, requestHandler.SubmitContribution)).Methods(http.MethodPost)
	protected.HandleFunc("/contribution-requests/{id:[0-9]+}/approve", requireOp(policy.OpReviewContributionRequest, requestHandler.ApproveContribution)).Methods(http.MethodPost)
	protected.HandleFunc("/contribution-requests/{id:[0-9]+}/reject", requireOp(policy.OpReviewContributionRequest, requestHandler.RejectContribution)).Methods(http.MethodPost)

	protected.HandleFunc("/loan-requests", requireOp(policy.OpViewDashboard, requestHandler.ListLoanRequests)).Methods(http.MethodGet)
	protected.HandleFunc("/loan-requests", requireOp(policy.OpSubmitLoanRequest, requestHandler.SubmitLoan)).Methods(http.MethodPost)
	protected.HandleFunc("/loan-requests/{id:[0-9]+}/approve", requireOp(policy.OpReviewLoanRequest, requestHandler.ApproveLoan)).Methods(http.MethodPost)
	protected.HandleFunc("/loan-requests/{id:[0-9]+}/reject", requireOp(policy.OpReviewLoanRequest, requestHandler.RejectLoan)).Methods(http.MethodPost)
	protected.HandleFunc("/loan-requests/{id:[0-9]+}", requireOp(policy.OpCancelLoanRequest, requestHandler.CancelLoan)).Methods(http.MethodDelete)

	return r
}
