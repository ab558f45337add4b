package exitcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wmstack/wmsctl/internal/api"
	"github.com/wmstack/wmsctl/internal/errors"
)

func TestDetermineExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, Success},
		{"unauthenticated", api.ErrUnauthenticated, AuthError},
		{"wrapped unauthenticated", fmt.Errorf("fetch: %w", api.ErrUnauthenticated), AuthError},
		{"not logged in", errors.NewNotLoggedInError(), AuthError},
		{"session expired", errors.NewSessionExpiredError(), AuthError},
		{"forbidden", errors.NewForbiddenError("Settings"), ForbiddenError},
		{"transport", &api.TransportError{Cause: fmt.Errorf("connection refused")}, NetworkError},
		{"config", errors.NewConfigUnmarshalError("x.yaml", fmt.Errorf("bad")), UsageError},
		{"plain", fmt.Errorf("something broke"), GeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DetermineExitCode(tt.err))
		})
	}
}

func TestDescription(t *testing.T) {
	assert.Equal(t, "Success", Description(Success))
	assert.Equal(t, "Access denied for the current role", Description(ForbiddenError))
	assert.Equal(t, "Unknown error", Description(99))
}
