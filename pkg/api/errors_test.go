package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	entengagement "github.com/warehouse-exchange/wex/ent/engagement"
	"github.com/warehouse-exchange/wex/ent/engagementevent"
	"github.com/warehouse-exchange/wex/pkg/clearing"
	"github.com/warehouse-exchange/wex/pkg/engagement"
	"github.com/warehouse-exchange/wex/pkg/services"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "validation",
			err:        services.NewValidationError("sqft", "must be positive"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "validation_failed",
		},
		{
			name: "invalid transition",
			err: &engagement.InvalidTransitionError{
				EngagementID: "e1",
				From:         entengagement.StatusMatched,
				Target:       entengagement.StatusActive,
				Actor:        engagementevent.ActorRoleBuyer,
				Reason:       "not reachable",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_transition",
		},
		{
			name: "guard failure",
			err: &engagement.GuardError{
				EngagementID: "e1",
				Target:       entengagement.StatusActive,
				Reason:       "onboarding incomplete",
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "guard_failed",
		},
		{
			name:       "expired dla token",
			err:        clearing.ErrTokenExpired,
			wantStatus: http.StatusGone,
			wantCode:   "token_expired",
		},
		{
			name:       "consumed dla token",
			err:        clearing.ErrTokenConsumed,
			wantStatus: http.StatusConflict,
			wantCode:   "token_consumed",
		},
		{
			name:       "forbidden",
			err:        services.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCode:   "forbidden",
		},
		{
			name:       "not found wrapped",
			err:        fmt.Errorf("engagement x: %w", services.ErrNotFound),
			wantStatus: http.StatusNotFound,
			wantCode:   "not_found",
		},
		{
			name:       "already exists",
			err:        services.ErrAlreadyExists,
			wantStatus: http.StatusConflict,
			wantCode:   "already_exists",
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "internal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := classifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.NotEmpty(t, body.Error)
		})
	}
}
