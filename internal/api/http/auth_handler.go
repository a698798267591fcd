package http

import (
	"net/http"

	"groupfund-backend/internal/service"
)

type AuthHandler struct {
	svc service.AuthService
}

func NewAuthHandler(svc service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

type loginRequest struct {
	Email      string `json:"email,omitempty"`
	Password   string `json:"password,omitempty"`
	Identifier string `json:"identifier,omitempty"`
}

type loginResponse struct {
	Token  string `json:"token"`
	Member any    `json:"member"`
}

// Login accepts either email+password (admins) or a member login
// identifier.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if req.Identifier != "" {
		token, member, err := h.svc.LoginMember(r.Context(), req.Identifier)
		if err != nil {
			respondError(w, err)
			return
		}
		respondOK(w, "login successful", loginResponse{Token: token, Member: member})
		return
	}

	token, member, err := h.svc.LoginAdmin(r.Context(), req.Email, req.Password)
	if err != nil {
		respondError(w, err)
		return
	}
	respondOK(w, "login successful", loginResponse{Token: token, Member: member})
}
