package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"groupsignup/internal/delivery/http/helpers"
	"groupsignup/internal/delivery/http/middleware"
	"groupsignup/internal/domain"
)

// RegistrationController handles registration attempts.
type RegistrationController struct {
	logger *slog.Logger
	svc    domain.RegistrationService
}

// NewRegistrationController creates a RegistrationController.
func NewRegistrationController(logger *slog.Logger, svc domain.RegistrationService) *RegistrationController {
	return &RegistrationController{logger: logger, svc: svc}
}

// registerRequest is the payload for POST /register. The visitor identity is
// not part of the body; it comes from the identity cookie.
// swagger:model registerRequest
type registerRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	GroupID string `json:"group_id"`
}

// Register handles POST /register. All failure kinds come back as typed
// sentinel errors from the service and map to specific error codes, so the
// dashboard can phrase each one differently.
func (c *RegistrationController) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}

	token, _ := middleware.VisitorTokenFromContext(r.Context())
	result, err := c.svc.Register(r.Context(), req.Name, req.Email, token, req.GroupID)
	if err != nil {
		writeRegistrationError(w, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, result)
}

func writeRegistrationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingName),
		errors.Is(err, domain.ErrMissingEmail),
		errors.Is(err, domain.ErrInvalidEmail):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
	case errors.Is(err, domain.ErrMissingIdentity):
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeMissingIdentity, "no visitor identity; refresh the page and try again")
	case errors.Is(err, domain.ErrDuplicateName):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateName, err.Error())
	case errors.Is(err, domain.ErrDuplicateEmail):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateEmail, err.Error())
	case errors.Is(err, domain.ErrDuplicateIdentity):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeDuplicateIdentity, err.Error())
	case errors.Is(err, domain.ErrUnknownGroup):
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeUnknownGroup, err.Error())
	case errors.Is(err, domain.ErrGroupFull):
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeGroupFull, err.Error())
	default:
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "registration failed")
	}
}
