package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autmail/maillist-server/internal/model"
)

func TestAddressValidator_Normalize(t *testing.T) {
	v := NewAddressValidator()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "plain address",
			raw:  "a@x.com",
			want: "a@x.com",
		},
		{
			name: "surrounding whitespace",
			raw:  "  a@x.com  ",
			want: "a@x.com",
		},
		{
			name: "domain lowercased",
			raw:  "a@EXAMPLE.COM",
			want: "a@example.com",
		},
		{
			name: "local part case preserved",
			raw:  "Alice@example.com",
			want: "Alice@example.com",
		},
		{
			name: "display name form",
			raw:  "Alice <alice@example.com>",
			want: "alice@example.com",
		},
		{
			name:    "missing at sign",
			raw:     "not-an-email",
			wantErr: true,
		},
		{
			name:    "empty string",
			raw:     "",
			wantErr: true,
		},
		{
			name:    "embedded newline",
			raw:     "a@x.com\nb@y.com",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := v.Normalize(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidEmail)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
