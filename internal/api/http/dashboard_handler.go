package http

import (
	"net/http"

	"groupfund-backend/internal/service"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	view, err := h.svc.GetDashboard(r.Context(), claims.MemberID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "", view)
}

func (h *DashboardHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListTransactions(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "", views)
}

// ListMyTransactions serves the caller's own ledger history; the member
// is taken from the token, never from the request.
func (h *DashboardHandler) ListMyTransactions(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	views, err := h.svc.ListMemberTransactions(r.Context(), claims.MemberID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "", views)
}

func (h *DashboardHandler) ListActiveLoans(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListActiveLoans(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "", views)
}

func (h *DashboardHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListMembers(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "", views)
}
