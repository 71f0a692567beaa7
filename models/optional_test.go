package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Optional[string]
		wantErr bool
	}{
		{name: "value", raw: `"ada"`, want: Some("ada")},
		{name: "empty string", raw: `""`, want: Some("")},
		{name: "null", raw: `null`, want: Null[string]()},
		{name: "null with spaces", raw: ` null `, want: Null[string]()},
		{name: "wrong type", raw: `5`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Optional[string]
			err := got.UnmarshalJSON([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptional_Present(t *testing.T) {
	assert.False(t, Optional[int64]{}.Present())
	assert.False(t, Null[int64]().Present())
	assert.True(t, Some(int64(0)).Present())
}

func TestItemPatch_MarshalOmitsUnsetFields(t *testing.T) {
	patch := ItemPatch{Description: Null[*string](), UserID: Some(int64(3))}

	raw, err := json.Marshal(patch)
	require.NoError(t, err)

	assert.JSONEq(t, `{"description":null,"user_id":3}`, string(raw))
}

func TestUser_HidesPasswordHash(t *testing.T) {
	raw, err := json.Marshal(User{ID: 1, Username: "ada", PasswordHash: "pbkdf2:sha256:1$a$b"})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.NotContains(t, got, "password_hash")
	assert.Equal(t, false, got["is_active"])
	assert.Contains(t, got, "created_at")
}
