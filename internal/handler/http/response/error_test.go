package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelolahr/attendance-backend-go/internal/domain/attendance"
	"github.com/kelolahr/attendance-backend-go/internal/domain/auth"
	"github.com/kelolahr/attendance-backend-go/internal/domain/employee"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"no employee profile", auth.ErrNoEmployeeProfile, http.StatusBadRequest},
		{"wrapped no employee profile", fmt.Errorf("check-in: %w", auth.ErrNoEmployeeProfile), http.StatusBadRequest},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"inactive employee", employee.ErrInactiveEmployee, http.StatusForbidden},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusBadRequest},
		{"storage failure", attendance.ErrStorageFailure, http.StatusInternalServerError},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			HandleError(rec, tc.err)

			assert.Equal(t, tc.wantStatus, rec.Code)

			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.NotEmpty(t, body.Error.Message)
		})
	}
}
