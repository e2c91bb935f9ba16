package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	t.Setenv("CENTIME_TEST_DIR", "/var/data")

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute untouched", in: "/tmp/centime.db", want: "/tmp/centime.db"},
		{name: "tilde prefix", in: "~/centime.db", want: filepath.Join(home, "centime.db")},
		{name: "bare tilde", in: "~", want: home},
		{name: "env var", in: "$CENTIME_TEST_DIR/centime.db", want: "/var/data/centime.db"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandPath(tt.in))
		})
	}
}
