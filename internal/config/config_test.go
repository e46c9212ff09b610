package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/anyway/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("should load config with defaults", func(t *testing.T) {
		// Clear environment
		os.Clearenv()

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify defaults
		require.True(t, cfg.Telemetry.Tracing.Enabled())
		require.True(t, cfg.Telemetry.TraceContent.Enabled())
		require.True(t, cfg.Telemetry.Metrics.Enabled())
		require.False(t, cfg.Telemetry.Logging.Enabled())
		require.Empty(t, cfg.Pricing.File)
		require.False(t, cfg.Pricing.Watch.Enabled())
		require.Empty(t, cfg.OTLP.Endpoint)
		require.Equal(t, "anyway", cfg.OTLP.ServiceName)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 30, cfg.Server.ReadTimeout)
		require.Equal(t, 30, cfg.Server.WriteTimeout)
	})

	t.Run("should load config from environment variables", func(t *testing.T) {
		// Set environment variables using t.Setenv for automatic cleanup
		t.Setenv("ANYWAY_TRACING_ENABLED", "false")
		t.Setenv("ANYWAY_TRACE_CONTENT", "FALSE")
		t.Setenv("ANYWAY_METRICS_ENABLED", "no")
		t.Setenv("ANYWAY_LOGGING_ENABLED", "True")
		t.Setenv("ANYWAY_PRICING_FILE", "/etc/anyway/pricing.yaml")
		t.Setenv("ANYWAY_PRICING_WATCH", "true")
		t.Setenv("ANYWAY_OTLP_ENDPOINT", "collector:4317")
		t.Setenv("SERVER_PORT", "9000")

		cfg := config.Load()

		require.NotNil(t, cfg)

		// Verify loaded values
		require.False(t, cfg.Telemetry.Tracing.Enabled())
		require.False(t, cfg.Telemetry.TraceContent.Enabled())
		require.False(t, cfg.Telemetry.Metrics.Enabled())
		require.True(t, cfg.Telemetry.Logging.Enabled())
		require.Equal(t, "/etc/anyway/pricing.yaml", cfg.Pricing.File)
		require.True(t, cfg.Pricing.Watch.Enabled())
		require.Equal(t, "collector:4317", cfg.OTLP.Endpoint)
		require.Equal(t, 9000, cfg.Server.Port)
	})
}

func TestFlag_UnmarshalText(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{value: "true", expected: true},
		{value: "TRUE", expected: true},
		{value: "True", expected: true},
		{value: " true ", expected: false},
		{value: "false", expected: false},
		{value: "1", expected: false},
		{value: "yes", expected: false},
		{value: "", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			var f config.Flag
			require.NoError(t, f.UnmarshalText([]byte(tt.value)))
			require.Equal(t, tt.expected, f.Enabled())
		})
	}
}
