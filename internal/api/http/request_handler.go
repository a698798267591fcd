package http

import (
	"net/http"
	"time"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/service"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

type submitContributionRequest struct {
	Type     string  `json:"type"`
	Amount   float64 `json:"amount"`
	Comments string  `json:"comments,omitempty"`
}

func (h *RequestHandler) SubmitContribution(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())

	var req submitContributionRequest
	if !decodeBody(w, r, &req) {
		return
	}

	created, err := h.svc.SubmitContribution(r.Context(), claims.MemberID, domain.TransactionType(req.Type), req.Amount, req.Comments)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "contribution request submitted", created)
}

type reviewRequest struct {
	Comments string `json:"comments,omitempty"`
	Reason   string `json:"reason,omitempty"`
}

func (h *RequestHandler) ApproveContribution(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.ApproveContribution(r.Context(), claims.MemberID, requestID, req.Comments)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "contribution request approved", updated)
}

func (h *RequestHandler) RejectContribution(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.RejectContribution(r.Context(), claims.MemberID, requestID, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "contribution request rejected", updated)
}

func (h *RequestHandler) ListContributionRequests(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())

	// Admins see the whole queue; members only their own submissions.
	memberID := claims.MemberID
	if claims.Role.IsAdmin() {
		memberID = ""
	}

	requests, err := h.svc.ListContributionRequests(r.Context(), memberID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "contribution requests retrieved", requests)
}

type submitLoanRequest struct {
	Amount  float64 `json:"amount"`
	DueDate string  `json:"due_date"`
	Purpose string  `json:"purpose,omitempty"`
}

func (h *RequestHandler) SubmitLoan(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())

	var req submitLoanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondError(w, err)
		return
	}

	created, err := h.svc.SubmitLoan(r.Context(), claims.MemberID, req.Amount, dueDate, req.Purpose)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "loan request submitted", created)
}

type approveLoanRequest struct {
	ApprovedAmount  float64 `json:"approved_amount,omitempty"`
	ApprovedDueDate string  `json:"approved_due_date,omitempty"`
	Comments        string  `json:"comments,omitempty"`
}

func (h *RequestHandler) ApproveLoan(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req approveLoanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	var dueDate time.Time
	if req.ApprovedDueDate != "" {
		var err error
		dueDate, err = parseDate(req.ApprovedDueDate)
		if err != nil {
			respondError(w, err)
			return
		}
	}

	loan, err := h.svc.ApproveLoan(r.Context(), claims.MemberID, requestID, req.ApprovedAmount, dueDate, req.Comments)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loan request approved", loan)
}

func (h *RequestHandler) RejectLoan(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req reviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	updated, err := h.svc.RejectLoan(r.Context(), claims.MemberID, requestID, req.Reason)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loan request rejected", updated)
}

func (h *RequestHandler) CancelLoan(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())
	requestID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.CancelLoan(r.Context(), claims.MemberID, requestID); err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loan request cancelled", nil)
}

func (h *RequestHandler) ListLoanRequests(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFrom(r.Context())

	memberID := claims.MemberID
	if claims.Role.IsAdmin() {
		memberID = ""
	}

	requests, err := h.svc.ListLoanRequests(r.Context(), memberID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loan requests retrieved", requests)
}
