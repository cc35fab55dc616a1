package handlers

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/storefront/internal/errs"
)

// APIError is the failure envelope returned by every API operation,
// including huma's own request validation errors.
type APIError struct {
	status int

	Success   bool     `json:"success"             example:"false"`
	Message   string   `json:"error"               example:"product MLB123 is already registered"`
	ProductID string   `json:"productId,omitempty" example:"MLB123"`
	Details   []string `json:"details,omitempty"`
}

// Error implements error.
func (e *APIError) Error() string {
	return e.Message
}

// GetStatus implements huma.StatusError.
func (e *APIError) GetStatus() int {
	return e.status
}

func newAPIError(status int, msg string, details ...error) huma.StatusError {
	// Schema violations are reported as plain bad requests.
	if status == http.StatusUnprocessableEntity {
		status = http.StatusBadRequest
	}

	e := &APIError{status: status, Message: msg}
	for _, d := range details {
		if d != nil {
			e.Details = append(e.Details, d.Error())
		}
	}
	if len(e.Details) > 0 && status == http.StatusBadRequest {
		e.Message = msg + ": " + strings.Join(e.Details, "; ")
	}
	return e
}

var envelopeOnce sync.Once

// UseEnvelopeErrors makes huma render its generated errors in the APIError
// envelope. It is called by every Register function.
func UseEnvelopeErrors() {
	envelopeOnce.Do(func() {
		huma.NewError = newAPIError
	})
}

// mapError translates service errors into API errors.
func mapError(err error) error {
	var (
		validation *errs.ValidationError
		config     *errs.ConfigurationError
		auth       *errs.UpstreamAuthError
		upstream   *errs.UpstreamError
		dup        *errs.DuplicateError
		apiErr     *APIError
	)

	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &validation):
		return &APIError{status: http.StatusBadRequest, Message: validation.Error()}
	case errors.As(err, &dup):
		return &APIError{status: http.StatusConflict, Message: dup.Error(), ProductID: dup.ExistingID}
	case errors.As(err, &config):
		return &APIError{status: http.StatusInternalServerError, Message: config.Error()}
	case errors.As(err, &auth):
		return &APIError{status: http.StatusBadGateway, Message: auth.Error()}
	case errors.As(err, &upstream):
		if upstream.Status == http.StatusNotFound {
			return &APIError{status: http.StatusNotFound, Message: "item not found on the marketplace"}
		}
		return &APIError{status: http.StatusBadGateway, Message: upstream.Error()}
	case errors.Is(err, errs.ErrNotFound):
		return &APIError{status: http.StatusNotFound, Message: "not found"}
	case errors.Is(err, errs.ErrAlreadyExists):
		return &APIError{status: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, errs.ErrInvalidReference):
		return &APIError{status: http.StatusBadRequest, Message: err.Error()}
	default:
		return &APIError{status: http.StatusInternalServerError, Message: err.Error()}
	}
}

// notFound builds a 404 with a resource-specific message.
func notFound(err error, what string) error {
	if errors.Is(err, errs.ErrNotFound) {
		return &APIError{status: http.StatusNotFound, Message: what + " not found"}
	}
	return mapError(err)
}
