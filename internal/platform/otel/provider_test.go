package otel

import (
	"context"
	"strings"
	"testing"
)

func TestSetupInactive(t *testing.T) {
	tests := []struct {
		name     string
		endpoint string
		enabled  string
	}{
		{name: "no endpoint", endpoint: "", enabled: ""},
		{name: "disabled", endpoint: "http://localhost:4318", enabled: "false"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("GMSCREEN_OTEL_ENDPOINT", tc.endpoint)
			if tc.enabled != "" {
				t.Setenv("GMSCREEN_OTEL_ENABLED", tc.enabled)
			}

			shutdown, err := Setup(context.Background(), "test-service")
			if err != nil {
				t.Fatalf("Setup() error = %v", err)
			}
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			if err := shutdown(ctx); err != nil {
				t.Fatalf("noop shutdown error = %v", err)
			}
		})
	}
}

func TestSetupRejectsInvalidSettings(t *testing.T) {
	t.Setenv("GMSCREEN_OTEL_SAMPLE_RATIO", "often")

	if _, err := Setup(context.Background(), "test-service"); err == nil {
		t.Fatal("expected error for unparsable sample ratio")
	}
}

func TestSettingsActive(t *testing.T) {
	t.Parallel()

	if (Settings{Endpoint: " ", Enabled: true}).Active() {
		t.Fatal("blank endpoint should be inactive")
	}
	if !(Settings{Endpoint: "http://collector:4318", Enabled: true}).Active() {
		t.Fatal("endpoint with enabled flag should be active")
	}
}

func TestSamplerBounds(t *testing.T) {
	t.Parallel()

	tests := map[float64]string{
		2:    "ParentBased{root:AlwaysOnSampler",
		0:    "ParentBased{root:AlwaysOffSampler",
		0.25: "ParentBased{root:TraceIDRatioBased{0.25}",
	}
	for ratio, prefix := range tests {
		got := Settings{SampleRatio: ratio}.sampler().Description()
		if !strings.HasPrefix(got, prefix) {
			t.Fatalf("sampler(%v) = %q, want prefix %q", ratio, got, prefix)
		}
	}
}

func TestTracerStartsSpanWithoutProvider(t *testing.T) {
	ctx, span := Tracer("rules").Start(context.Background(), "test")
	defer span.End()
	if ctx == nil {
		t.Fatal("expected context")
	}
}
