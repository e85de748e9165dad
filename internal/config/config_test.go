package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.NotEmpty(t, cfg.Port)
	assert.NotEmpty(t, cfg.SessionSecret)
	assert.Equal(t, uint(1), cfg.AdminUserID)
	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Positive(t, cfg.SessionTTLHours)
}

func TestConfigValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Port:            "8460",
			SessionSecret:   "your-secret-key-change-in-production",
			SessionTTLHours: 24,
			AdminUserID:     1,
			DBDriver:        "postgres",
			DBPassword:      "password",
			Env:             "development",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Valid Development Defaults", mutate: func(c *Config) {}, wantErr: false},
		{name: "Missing Port", mutate: func(c *Config) { c.Port = "" }, wantErr: true},
		{name: "Missing Secret", mutate: func(c *Config) { c.SessionSecret = "" }, wantErr: true},
		{name: "Zero Admin ID", mutate: func(c *Config) { c.AdminUserID = 0 }, wantErr: true},
		{name: "Unknown Driver", mutate: func(c *Config) { c.DBDriver = "mysql" }, wantErr: true},
		{name: "Non-positive TTL", mutate: func(c *Config) { c.SessionTTLHours = 0 }, wantErr: true},
		{name: "Default Secret In Production", mutate: func(c *Config) { c.Env = "production" }, wantErr: true},
		{
			name: "Short Secret In Production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.SessionSecret = "short"
				c.DBPassword = "e9f2b7c1a4d8"
			},
			wantErr: true,
		},
		{
			name: "Valid Production",
			mutate: func(c *Config) {
				c.Env = "production"
				c.SessionSecret = "0123456789abcdef0123456789abcdef"
				c.DBPassword = "e9f2b7c1a4d8"
			},
			wantErr: false,
		},
		{
			name: "Sqlite Production Without DB Password",
			mutate: func(c *Config) {
				c.Env = "production"
				c.SessionSecret = "0123456789abcdef0123456789abcdef"
				c.DBDriver = "sqlite"
				c.DBPassword = ""
				c.DBName = "blog.db"
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
