package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMeta(t *testing.T) {
	assert.Equal(t, &Meta{Page: 1, Limit: 10, Total: 21, TotalPages: 3}, NewMeta(1, 10, 21))
	assert.Equal(t, &Meta{Page: 1, Limit: 10, Total: 0, TotalPages: 1}, NewMeta(1, 10, 0))
	assert.Equal(t, &Meta{Page: 1, Limit: 0, Total: 5, TotalPages: 1}, NewMeta(1, 0, 5))
}

func TestNotFound_Envelope(t *testing.T) {
	rec := httptest.NewRecorder()
	NotFound(rec, "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "Resource not found", body.Message)
}
