package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var serverFlags = []string{"-a", "-d", "-rp", "-origins", "-session-ttl"}

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "separate values",
			args: []string{"-a", ":3200", "-c", "eterbox.yaml", "-rp", "vault.example"},
			want: []string{"-a", ":3200", "-rp", "vault.example"},
		},
		{
			name: "inline value kept whole",
			args: []string{"-session-ttl=168h", "-x"},
			want: []string{"-session-ttl=168h"},
		},
		{
			name: "inline value may start with a dash",
			args: []string{"-d=-weird-dsn"},
			want: []string{"-d=-weird-dsn"},
		},
		{
			name: "dangling flag",
			args: []string{"-origins"},
			want: []string{"-origins"},
		},
		{
			name: "next flag is not a value",
			args: []string{"-a", "-d", "postgres://db"},
			want: []string{"-a", "-d", "postgres://db"},
		},
		{
			name: "positional tokens dropped",
			args: []string{"serve", "-a"},
			want: []string{"-a"},
		},
		{
			name: "repeats preserved",
			args: []string{"-origins", "https://a", "-origins", "https://b"},
			want: []string{"-origins", "https://a", "-origins", "https://b"},
		},
		{
			name: "nothing matches",
			args: []string{"-w", "30s"},
			want: []string{},
		},
		{
			name: "nil args",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, serverFlags))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "/etc/eterbox.yaml", ConfigFileFlag([]string{"-a", ":3200", "-c", "/etc/eterbox.yaml"}))
	assert.Equal(t, "client.json", ConfigFileFlag([]string{"-config=client.json"}))
	assert.Equal(t, "second.yaml", ConfigFileFlag([]string{"-c", "first.yaml", "-config", "second.yaml"}))
	assert.Empty(t, ConfigFileFlag([]string{"-t", "15m"}))
}
