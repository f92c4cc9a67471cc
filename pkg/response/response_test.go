package response

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()
	Success(rec, 201, "created", map[string]string{"id": "abc"})

	assert.Equal(t, 201, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	resp := decode(t, rec)
	assert.True(t, resp.Success)
	assert.Equal(t, "created", resp.Message)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestErrorHelpersStatusAndDefaults(t *testing.T) {
	tests := []struct {
		name    string
		write   func(rec *httptest.ResponseRecorder)
		code    int
		message string
	}{
		{"conflict", func(rec *httptest.ResponseRecorder) { Conflict(rec, "") }, 409, "Conflict"},
		{"conflict custom", func(rec *httptest.ResponseRecorder) { Conflict(rec, "slot taken") }, 409, "slot taken"},
		{"bad request", func(rec *httptest.ResponseRecorder) { BadRequest(rec, "") }, 400, "Bad request"},
		{"not found", func(rec *httptest.ResponseRecorder) { NotFound(rec, "") }, 404, "Resource not found"},
		{"forbidden", func(rec *httptest.ResponseRecorder) { Forbidden(rec, "") }, 403, "Forbidden"},
		{"unauthorized", func(rec *httptest.ResponseRecorder) { Unauthorized(rec, "") }, 401, "Unauthorized"},
		{"internal", func(rec *httptest.ResponseRecorder) { InternalServerError(rec, "") }, 500, "Internal server error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.write(rec)
			assert.Equal(t, tt.code, rec.Code)

			resp := decode(t, rec)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}
}
