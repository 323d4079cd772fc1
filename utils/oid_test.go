package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOid(t *testing.T) {
	oid, err := Oid(" 65a1b2c3d4e5f60718293a4b ")
	require.NoError(t, err)
	assert.Equal(t, "65a1b2c3d4e5f60718293a4b", oid.Hex())

	_, err = Oid("not-an-id")
	assert.Error(t, err)
}

func TestCanonicalRef(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"65A1B2C3D4E5F60718293A4B", "65a1b2c3d4e5f60718293a4b"},
		{"  65a1b2c3d4e5f60718293a4b\n", "65a1b2c3d4e5f60718293a4b"},
		{" legacy-key ", "legacy-key"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalRef(tt.in), "input %q", tt.in)
	}
}
