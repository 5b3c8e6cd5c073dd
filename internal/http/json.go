package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/tweakd/tweakd/internal/errors"
)

// DecodeJSON decodes the request body into the destination, rejecting
// unknown fields. Returns true if successful, false if the body was
// malformed (validation error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: apperrors.ErrCodeValidation, Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams describes a transport-level rejection: the HTTP status to
// answer with and the application error code surfaced to the client.
type ErrorParams struct {
	Code    int
	ErrCode apperrors.ErrorCode
	Err     error
}

// WriteError writes a JSON error response for a malformed request. When no
// explicit code is given it is derived from the error's AppError code.
// Domain failures do not go through here; they ride the {success, error}
// envelope via WriteFailure.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	code := p.ErrCode
	if code == "" {
		code = apperrors.GetCode(p.Err)
	}
	if code == "" {
		code = apperrors.ErrCodeInternal
	}
	WriteJSON(w, p.Code, map[string]string{"error": string(code), "message": p.Err.Error()})
}

// failureEnvelope is the cross-endpoint failure shape the interactive
// surface consumes: the request itself worked, the domain operation did
// not, and the error message rides in-band.
type failureEnvelope struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteFailure writes the {success:false, error} envelope with status 200.
func WriteFailure(w http.ResponseWriter, err error) {
	WriteJSON(w, http.StatusOK, failureEnvelope{Success: false, Error: err.Error()})
}
