package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey(t *testing.T) {
	existing := map[string]any{
		"passwordPolicy": map[string]any{
			"minLength": 1,
		},
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "inkwell",
			},
		},
		"rateLimit": map[string]any{
			"maxKeys": 10,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "PASSWORDPOLICY_MINLENGTH", want: "passwordPolicy.minLength"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "RATELIMIT_MAXKEYS", want: "rateLimit.maxKeys"},
		{envKey: "POSTGRES__SSLMODE", want: "postgres.sslMode"},
		// Unknown keys keep their lowercased segments.
		{envKey: "AUTH_TOKENTTL", want: "auth.tokenttl"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "ratelimit", normalizeToken("rate-Limit"))
	assert.Empty(t, normalizeToken("__"))
}
