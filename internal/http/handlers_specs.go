package httpx

import (
	"context"
	"net/http"

	"github.com/tweakd/tweakd/internal/service"
)

// SpecsServiceInterface is the part of the specs service the handlers use.
// Satisfied by *service.SpecsService.
type SpecsServiceInterface interface {
	Read(ctx context.Context) service.PCSpecs
}

// SpecsHandlers provides HTTP handlers for hardware inventory.
type SpecsHandlers struct {
	Svc SpecsServiceInterface
}

// Get handles HTTP requests for the machine's hardware summary. The read
// never fails; degraded fields carry placeholder values.
func (h *SpecsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Read(r.Context()))
}
