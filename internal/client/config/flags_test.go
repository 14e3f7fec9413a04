package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestBindFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    func(*Config)
		wantErr bool
	}{
		{
			name: "no flags keeps loaded values",
			args: nil,
			want: func(*Config) {},
		},
		{
			name: "short forms",
			args: []string{"-a", "http://127.0.0.1:9090", "-t", "2s", "-i", "10s", "-v"},
			want: func(c *Config) {
				c.APIBaseURL = "http://127.0.0.1:9090"
				c.RequestTimeout = 2 * time.Second
				c.PollInterval = 10 * time.Second
				c.Verbose = true
			},
		},
		{
			name: "long forms",
			args: []string{"--store", "bolt", "--store-path", "/tmp/s.bolt", "--log-format", "json", "--log-level", "info",
				"--config", "ignored.json", "--env-file", "ignored.env"},
			want: func(c *Config) {
				c.StoreBackend = "bolt"
				c.StorePath = "/tmp/s.bolt"
				c.LogFormat = "json"
				c.LogLevel = "info"
			},
		},
		{
			name:    "incorrect duration",
			args:    []string{"-i", "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			cfg.LoadDefaults()

			fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
			BindFlags(fs, cfg)
			err := fs.Parse(tt.args)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)

			expected := &Config{}
			expected.LoadDefaults()
			tt.want(expected)

			if diff := cmp.Diff(expected, cfg); diff != "" {
				t.Errorf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
