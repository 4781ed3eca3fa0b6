package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/warehouse-exchange/wex/ent"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/services"
)

// errorBody is the wire shape of every non-2xx response.
type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondError maps core errors onto HTTP statuses and the JSON error shape.
func respondError(c *gin.Context, err error) {
	status, body := classifyError(err)
	if status == http.StatusInternalServerError {
		slog.Error("Unexpected handler error",
			"path", c.FullPath(), "error", err)
	}
	c.AbortWithStatusJSON(status, body)
}

func classifyError(err error) (int, errorBody) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, errorBody{Error: validErr.Error(), Code: "validation_failed"}
	}
	var transErr *engagement.InvalidTransitionError
	if errors.As(err, &transErr) {
		return http.StatusBadRequest, errorBody{Error: transErr.Error(), Code: "invalid_transition"}
	}
	var guardErr *engagement.GuardError
	if errors.As(err, &guardErr) {
		return http.StatusBadRequest, errorBody{Error: guardErr.Error(), Code: "guard_failed"}
	}
	var dlaErr *clearing.DLAError
	if errors.As(err, &dlaErr) {
		status := http.StatusConflict
		if dlaErr.Code == "token_expired" {
			status = http.StatusGone
		}
		return status, errorBody{Error: dlaErr.Reason, Code: dlaErr.Code}
	}
	if errors.Is(err, services.ErrForbidden) {
		return http.StatusForbidden, errorBody{Error: "forbidden", Code: "forbidden"}
	}
	if errors.Is(err, services.ErrNotFound) || ent.IsNotFound(err) {
		return http.StatusNotFound, errorBody{Error: "resource not found", Code: "not_found"}
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		return http.StatusConflict, errorBody{Error: "resource already exists", Code: "already_exists"}
	}
	return http.StatusInternalServerError, errorBody{Error: "internal server error", Code: "internal"}
}

// respondBindError reports a malformed request body.
func respondBindError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		errorBody{Error: err.Error(), Code: "malformed_request"})
}
