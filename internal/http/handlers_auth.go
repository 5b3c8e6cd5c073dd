// Package httpx provides the HTTP control surface the interactive client
// talks to on the loopback interface.
package httpx

import (
	"context"
	"log/slog"
	"net/http"

	domainauth "github.com/tweakd/tweakd/internal/domain/auth"
	"github.com/tweakd/tweakd/internal/service"
)

// LoginServiceInterface is the part of the login orchestration the
// handlers use. Satisfied by *service.LoginService.
type LoginServiceInterface interface {
	Begin(ctx context.Context) (*service.LoginResult, error)
	Cancel() bool
}

// AuthHandlers provides HTTP handlers for the login flow.
type AuthHandlers struct {
	Svc    LoginServiceInterface
	Logger *slog.Logger
}

type userPayload struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Avatar   string `json:"avatar,omitempty"`
}

// loginResponse is the success envelope the surface consumes. Failures
// ride the shared {success:false, error} envelope instead.
type loginResponse struct {
	Success bool                   `json:"success"`
	User    *userPayload           `json:"user,omitempty"`
	Roles   *domainauth.Membership `json:"roles,omitempty"`
	Tier    string                 `json:"tier,omitempty"`
}

// Login starts a login attempt and blocks until it resolves.
func (h *AuthHandlers) Login(w http.ResponseWriter, r *http.Request) {
	result, err := h.Svc.Begin(r.Context())
	if err != nil {
		WriteFailure(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, loginResponse{
		Success: true,
		User: &userPayload{
			ID:       result.Identity.ID,
			Username: result.Identity.Username,
			Avatar:   result.Identity.Avatar,
		},
		Roles: &result.Membership,
		Tier:  string(result.Membership.Tier()),
	})
}

type cancelResponse struct {
	Success   bool `json:"success"`
	Cancelled bool `json:"cancelled"`
}

// Cancel resolves a pending login attempt as cancelled. Cancelled reports
// whether an attempt was actually pending.
func (h *AuthHandlers) Cancel(w http.ResponseWriter, r *http.Request) {
	cancelled := h.Svc.Cancel()
	WriteJSON(w, http.StatusOK, cancelResponse{Success: true, Cancelled: cancelled})
}
