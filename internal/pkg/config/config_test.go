//go:build unit

package config_test

import (
	"testing"
	"time"

	"bounce-booking/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bookings")
	t.Setenv("BOOKING_TIMEZONE", "UTC")
}

func TestLoadConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 31*time.Minute, cfg.Booking.SessionTTL)
	assert.GreaterOrEqual(t, cfg.Booking.HoldWindow, cfg.Booking.SessionTTL)
}

func TestLoadConfig_BookingWindows(t *testing.T) {
	tests := []struct {
		name       string
		sessionTTL string
		holdWindow string
		wantErr    string
	}{
		{name: "stripe minimum without slack", sessionTTL: "30m", holdWindow: "30m", wantErr: "BOOKING_SESSION_TTL"},
		{name: "beyond stripe maximum", sessionTTL: "25h", holdWindow: "26h", wantErr: "BOOKING_SESSION_TTL"},
		{name: "hold shorter than session", sessionTTL: "45m", holdWindow: "40m", wantErr: "BOOKING_HOLD_WINDOW"},
		{name: "hold equal to session", sessionTTL: "31m", holdWindow: "31m"},
		{name: "upper bound", sessionTTL: "24h", holdWindow: "24h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv("BOOKING_SESSION_TTL", tt.sessionTTL)
			t.Setenv("BOOKING_HOLD_WINDOW", tt.holdWindow)

			_, err := config.LoadConfig()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
