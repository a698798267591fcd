package http

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"groupfund-backend/internal/domain"
	"groupfund-backend/internal/service"
)

type MemberHandler struct {
	svc service.MemberService
}

func NewMemberHandler(svc service.MemberService) *MemberHandler {
	return &MemberHandler{svc: svc}
}

type createMemberRequest struct {
	Name string `json:"name"`
	Role string `json:"role,omitempty"`
	// Admin-only fields; ignored for plain members.
	IdentityToken string `json:"identity_token,omitempty"`
	Email         string `json:"email,omitempty"`
	Password      string `json:"password,omitempty"`
}

func (h *MemberHandler) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	role := domain.Role(req.Role)
	if role.IsAdmin() {
		member, err := h.svc.CreateAdmin(r.Context(), req.IdentityToken, req.Name, req.Email, req.Password, role)
		if err != nil {
			respondError(w, err)
			return
		}
		respondCreated(w, "admin member created", member)
		return
	}

	member, err := h.svc.CreateMember(r.Context(), req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	// The identifier is shown exactly once, at creation time.
	respondCreated(w, "member created, share the login identifier", member)
}

type updateMemberRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (h *MemberHandler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var req updateMemberRequest
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := h.svc.UpdateMember(r.Context(), id, req.Name, req.Email)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "member updated", member)
}

type addExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Audit    bool    `json:"audit"`
	Date     string  `json:"date"`
	Comments string  `json:"comments,omitempty"`
}

func (h *MemberHandler) AddExpense(w http.ResponseWriter, r *http.Request) {
	var req addExpenseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondError(w, err)
		return
	}

	txn, err := h.svc.AddExpense(r.Context(), req.Amount, req.Audit, date, req.Comments)
	if err != nil {
		respondError(w, err)
		return
	}
	respondCreated(w, "expense recorded", txn)
}

func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, domain.Validationf("invalid date %q, expected yyyy-mm-dd", value)
	}
	return date, nil
}
