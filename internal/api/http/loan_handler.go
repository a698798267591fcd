package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/service"
)

type LoanHandler struct {
	svc service.LoanService
}

func NewLoanHandler(svc service.LoanService) *LoanHandler {
	return &LoanHandler{svc: svc}
}

type disburseLoanRequest struct {
	BorrowerID string  `json:"borrower_id"`
	Amount     float64 `json:"amount"`
	BorrowDate string  `json:"borrow_date"`
	DueDate    string  `json:"due_date"`
}

func (h *LoanHandler) Disburse(w http.ResponseWriter, r *http.Request) {
	var req disburseLoanRequest
	if !decodeBody(w, r, &req) {
		return
	}

	borrowDate, err := parseDate(req.BorrowDate)
	if err != nil {
		respondError(w, err)
		return
	}
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		respondError(w, err)
		return
	}

	loan, err := h.svc.Disburse(r.Context(), req.BorrowerID, req.Amount, borrowDate, dueDate)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "loan disbursed", loan)
}

type recordReturnRequest struct {
	Amount  float64 `json:"amount"`
	Partial bool    `json:"partial"`
	Date    string  `json:"date"`
}

func (h *LoanHandler) RecordReturn(w http.ResponseWriter, r *http.Request) {
	loanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req recordReturnRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, err)
		return
	}

	loan, err := h.svc.RecordReturn(r.Context(), loanID, req.Amount, req.Partial, date)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loan return recorded", loan)
}

func (h *LoanHandler) GetLoan(w http.ResponseWriter, r *http.Request) {
	loanID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	loan, err := h.svc.GetLoan(r.Context(), loanID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loan retrieved", loan)
}

func (h *LoanHandler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.svc.ListLoans(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "loans retrieved", loans)
}

// pathID extracts a numeric path variable, replying 400 on garbage.
func pathID(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		respondError(w, domain.Validationf("invalid %s %q", name, raw))
		return 0, false
	}
	return int32(id), true
}
