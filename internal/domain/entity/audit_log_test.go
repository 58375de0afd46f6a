package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_ValueAndScan(t *testing.T) {
	raw, err := JSON{"entity": "appointment", "entity_id": "42"}.Value()
	require.NoError(t, err)

	var out JSON
	require.NoError(t, out.Scan(raw))
	assert.Equal(t, "appointment", out["entity"])
	assert.Equal(t, "42", out["entity_id"])
}

func TestJSON_EmptyIsNull(t *testing.T) {
	raw, err := JSON{}.Value()
	require.NoError(t, err)
	assert.Nil(t, raw)

	var out JSON
	require.NoError(t, out.Scan(nil))
	assert.Nil(t, out)
}

func TestJSON_ScanRejectsUnknownType(t *testing.T) {
	var out JSON
	assert.Error(t, out.Scan(42))
}
