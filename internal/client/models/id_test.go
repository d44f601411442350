package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want ID
	}{
		{name: "string", in: `"u1"`, want: "u1"},
		{name: "number", in: `42`, want: "42"},
		{name: "null", in: `null`, want: ""},
		{name: "guid", in: `"3f2504e0-4f89-11d3-9a0c-0305e82c3301"`, want: "3f2504e0-4f89-11d3-9a0c-0305e82c3301"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var id ID
			require.NoError(t, json.Unmarshal([]byte(tt.in), &id))
			assert.Equal(t, tt.want, id)
		})
	}
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id ID
	require.Error(t, json.Unmarshal([]byte(`{}`), &id))
}

func TestLoginResponse_DecodesNumericID(t *testing.T) {
	var r LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{"id":7,"token":"t1","role":"Admin"}`), &r))
	assert.Equal(t, LoginResponse{ID: "7", Token: "t1", Role: "Admin"}, r)
}

func TestIDs(t *testing.T) {
	assert.Equal(t, "1, 2, 3", IDs([]ID{"1", "2", "3"}))
	assert.Empty(t, IDs(nil))
}
