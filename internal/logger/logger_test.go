package logger

import (
	"context"
	"testing"

	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"local", "dev", "prod"} {
		if _, err := New(env, ""); err != nil {
			t.Errorf("New(%q) error = %v", env, err)
		}
	}

	if _, err := New("staging", ""); err == nil {
		t.Error("expected error for unknown environment")
	}
}

func TestNew_LevelOverride(t *testing.T) {
	l, err := New("prod", "debug")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !l.Core().Enabled(zap.DebugLevel) {
		t.Error("debug level not enabled after override")
	}

	if _, err := New("prod", "verbose"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestContextRoundTrip(t *testing.T) {
	base := zap.NewNop()
	ctx := ContextWithLogger(context.Background(), base)

	if got := FromContext(ctx); got != base {
		t.Error("FromContext did not return the stored logger")
	}
}

func TestFromContext_Fallback(t *testing.T) {
	if got := FromContext(context.Background()); got == nil {
		t.Error("FromContext must never return nil")
	}
}
