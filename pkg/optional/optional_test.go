package optional

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type patchBody struct {
	Status   Value[string] `json:"status"`
	ParentID Value[int]    `json:"parent_id"`
}

func TestValue_UnmarshalDistinguishesAbsentNullAndValue(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		wantStatus Value[string]
		wantParent Value[int]
	}{
		{
			name: "absent keys",
			body: `{}`,
		},
		{
			name:       "explicit null",
			body:       `{"parent_id": null}`,
			wantParent: Value[int]{Set: true, Null: true},
		},
		{
			name:       "values",
			body:       `{"status": "confirme", "parent_id": 7}`,
			wantStatus: Of("confirme"),
			wantParent: Of(7),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got patchBody
			require.NoError(t, json.Unmarshal([]byte(tt.body), &got))
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantParent, got.ParentID)
		})
	}
}

func TestValue_UnmarshalTypeMismatch(t *testing.T) {
	var got patchBody
	err := json.Unmarshal([]byte(`{"parent_id": "abc"}`), &got)
	assert.Error(t, err)
}

func TestValue_Get(t *testing.T) {
	v, ok := Of(3).Get()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = Null[int]().Get()
	assert.False(t, ok)

	_, ok = Value[int]{}.Get()
	assert.False(t, ok)
}

func TestValue_Marshal(t *testing.T) {
	out, err := json.Marshal(patchBody{Status: Of("annule")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"annule","parent_id":null}`, string(out))
}
