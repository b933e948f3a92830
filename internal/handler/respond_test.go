package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gracechapel/api/internal/repository"
	"github.com/gracechapel/api/internal/service"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondFailureStatusMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "validation error",
			err:         &service.ValidationError{Message: "title is required"},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "title is required",
		},
		{
			name:        "not found sentinel",
			err:         repository.ErrSermonNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: "sermon not found",
		},
		{
			name:        "store at capacity",
			err:         fmt.Errorf("insert: %w", &pgconn.PgError{Code: "53300"}),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "service is temporarily busy, please try again shortly",
		},
		{
			name:        "sqlite busy",
			err:         errors.New("SQLITE_BUSY: database is locked (5)"),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: "service is temporarily busy, please try again shortly",
		},
		{
			name:        "unclassified failure",
			err:         errors.New("disk I/O error"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "something went wrong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			respondFailure(rec, tt.err, repository.ErrSermonNotFound, "sermon")

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var env envelope
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&env))
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantMessage, env.Message)
		})
	}
}
