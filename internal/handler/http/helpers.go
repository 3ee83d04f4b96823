package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/vasiliy-maslov/catalog-service/internal/catalog"
)

// ValidationErrorResponse carries field-level messages back to the client so
// the form can be redisplayed with the offending fields marked.
type ValidationErrorResponse struct {
	Error   string            `json:"error"`
	Details map[string]string `json:"details"`
}

// DeleteRequest is the body of a confirming POST to a delete route.
type DeleteRequest struct {
	Confirm bool `json:"confirm"`
}

// DeleteStateResponse reports where a delete request landed:
// refused, confirmation_pending, deleted or cancelled.
type DeleteStateResponse struct {
	State    string               `json:"state"`
	Check    *catalog.DeleteCheck `json:"check,omitempty"`
	Blockers []catalog.Blocker    `json:"blockers,omitempty"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]string{"error": message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal JSON response"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := w.Write(response); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	details := make(map[string]string, len(errs))
	for _, fieldErr := range errs {
		details[fieldErr.Field()] = "failed on rule: " + fieldErr.Tag()
	}
	return details
}

// respondDomainError translates catalog errors into responses: not-found,
// field-level validation failures, and delete refusals each have their own
// shape. Anything unrecognized is an internal error.
func respondDomainError(w http.ResponseWriter, err error, fallback string) {
	if errors.Is(err, catalog.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "Not found")
		return
	}
	if ve, ok := catalog.AsValidationError(err); ok {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: ve.Fields,
		})
		return
	}
	if de, ok := catalog.AsDeleteBlockedError(err); ok {
		respondWithJSON(w, http.StatusConflict, DeleteStateResponse{
			State:    "refused",
			Blockers: de.Blockers,
		})
		return
	}
	log.Error().Err(err).Msg(fallback)
	respondWithError(w, http.StatusInternalServerError, fallback)
}

func parseIDParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	idParam := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		log.Warn().Str("id", idParam).Msg("Failed to parse id parameter from URL")
		respondWithError(w, http.StatusBadRequest, "Invalid id parameter")
		return 0, false
	}
	return id, true
}

func decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		log.Warn().Err(err).Msg("Failed to decode request body")
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

func validateRequest(w http.ResponseWriter, validate *validator.Validate, payload interface{}) bool {
	err := validate.Struct(payload)
	if err == nil {
		return true
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		respondWithJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:   "Validation failed",
			Details: formatValidationErrors(validationErrors),
		})
	} else {
		log.Error().Err(err).Msg("Unexpected error type during validation")
		respondWithError(w, http.StatusInternalServerError, "Internal validation error")
	}
	return false
}

// handleDeleteCheck serves the GET half of the two-step delete: either a
// refusal listing the blocking rows, or a confirmation prompt.
func handleDeleteCheck(w http.ResponseWriter, r *http.Request,
	check func(int64) (*catalog.DeleteCheck, error)) {

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	result, err := check(id)
	if err != nil {
		respondDomainError(w, err, "Failed to evaluate delete request")
		return
	}

	if result.Blocked {
		respondWithJSON(w, http.StatusConflict, DeleteStateResponse{State: "refused", Check: result})
		return
	}
	respondWithJSON(w, http.StatusOK, DeleteStateResponse{State: "confirmation_pending", Check: result})
}

// handleDeleteExecute serves the POST half: a confirming body deletes the
// row, anything else cancels with no state change.
func handleDeleteExecute(w http.ResponseWriter, r *http.Request,
	del func(int64) error) {

	id, ok := parseIDParam(w, r)
	if !ok {
		return
	}

	// Anything other than an explicit confirmation cancels: an empty or
	// unreadable body is treated as confirm=false, not as a client error.
	var req DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		req.Confirm = false
	}
	if !req.Confirm {
		respondWithJSON(w, http.StatusOK, DeleteStateResponse{State: "cancelled"})
		return
	}

	if err := del(id); err != nil {
		respondDomainError(w, err, "Failed to delete")
		return
	}
	respondWithJSON(w, http.StatusOK, DeleteStateResponse{State: "deleted"})
}
