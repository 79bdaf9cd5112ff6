package service

import (
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestGenerate_Defaults(t *testing.T) {
	resp, err := NewGeneratorService().Generate(model.GenerateRequest{})
	require.NoError(t, err)

	assert.Equal(t, crypto.DefaultLength, resp.Length)
	assert.Len(t, resp.Password, crypto.DefaultLength)
}

func TestGenerate_ExplicitClasses(t *testing.T) {
	resp, err := NewGeneratorService().Generate(model.GenerateRequest{
		Length:    32,
		Uppercase: boolPtr(true),
		Lowercase: boolPtr(true),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, 32, resp.Length)
	assert.Empty(t, strings.Trim(resp.Password, "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"),
		"only letters expected in %q", resp.Password)
}

func TestGenerate_ValidationErrors(t *testing.T) {
	off := boolPtr(false)

	tests := []struct {
		name    string
		req     model.GenerateRequest
		wantErr error
	}{
		{"length too short", model.GenerateRequest{Length: 7}, crypto.ErrLengthTooShort},
		{"length too long", model.GenerateRequest{Length: 65}, crypto.ErrLengthTooLong},
		{
			"no character types",
			model.GenerateRequest{Length: 16, Uppercase: off, Lowercase: off, Numbers: off, Symbols: off},
			crypto.ErrNoCharacterTypes,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := NewGeneratorService().Generate(tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, resp.Password)
		})
	}
}
