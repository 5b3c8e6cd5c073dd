package httpx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/tweakd/tweakd/internal/domain/tweak"
	apperrors "github.com/tweakd/tweakd/internal/errors"
	"github.com/tweakd/tweakd/internal/service"
)

// TweakServiceInterface is the part of the tweak service the handlers use.
// Satisfied by *service.TweakService.
type TweakServiceInterface interface {
	Apply(ctx context.Context, req service.ApplyRequest) (string, error)
	Catalog() []tweak.Definition
}

// TweakHandlers provides HTTP handlers for tweak operations.
type TweakHandlers struct {
	Svc    TweakServiceInterface
	Logger *slog.Logger
}

// tweakRequest carries the field names the surface sends.
type tweakRequest struct {
	TweakName string `json:"tweakName"`
	IsActive  bool   `json:"isActive"`
}

type tweakResponse struct {
	Success bool   `json:"success"`
	Output  string `json:"output,omitempty"`
}

// Apply handles HTTP requests to apply or revert a tweak.
func (h *TweakHandlers) Apply(w http.ResponseWriter, r *http.Request) {
	var req tweakRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.TweakName == "" {
		WriteError(w, ErrorParams{
			Code: http.StatusBadRequest,
			Err:  apperrors.Validation("tweakName is required"),
		})
		return
	}

	out, err := h.Svc.Apply(r.Context(), service.ApplyRequest{Name: req.TweakName, Active: req.IsActive})
	if err != nil {
		WriteFailure(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, tweakResponse{Success: true, Output: out})
}

type catalogEntry struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Note     string `json:"note,omitempty"`
	Commands int    `json:"commands"`
}

// List handles HTTP requests for the tweak catalog.
func (h *TweakHandlers) List(w http.ResponseWriter, r *http.Request) {
	defs := h.Svc.Catalog()
	entries := make([]catalogEntry, 0, len(defs))
	for _, d := range defs {
		entries = append(entries, catalogEntry{
			Name:     string(d.ID),
			Category: string(d.Category),
			Note:     d.Note,
			Commands: len(d.Commands(true)),
		})
	}
	WriteJSON(w, http.StatusOK, map[string]any{"tweaks": entries})
}
