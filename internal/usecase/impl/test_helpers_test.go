package impl

import (
	"io"
	"log/slog"

	"inkwell/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(minPassword, maxPassword int) *config.Config {
	return &config.Config{
		PasswordPolicy: &config.PasswordPolicyConfig{
			MinLength: minPassword,
			MaxLength: maxPassword,
		},
	}
}
