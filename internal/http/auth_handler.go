package api

import (
	"encoding/json"
	"net/http"
	"time"

	"award-voting/internal/domain/user"
	"award-voting/internal/platform/apperr"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// @Summary     Administrative login
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request  body  loginRequest  true  "Credentials"
// @Success     200  {object}  map[string]string
// @Failure     401  {object}  map[string]string  "invalid credentials"
// @Failure     403  {object}  map[string]string  "not authorized"
// @Router      /api/v1/auth/login [post]
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		errorResponse(w, apperr.BadRequest("invalid_input", "invalid body", err))
		return
	}

	u, err := h.userSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		errorResponse(w, err)
		return
	}

	token, err := h.jwtMgr.Generate(u.ID, user.RoleAdmin, 24*time.Hour)
	if err != nil {
		errorResponse(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"user":  u,
		"token": token,
	})
}
