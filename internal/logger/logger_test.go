package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/hance08/cashflow/internal/config"
	"github.com/rs/zerolog"
)

func TestNewWithWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	log := NewWithWriter(buf)

	log.Info().Int64("transaction_id", 7).Msg("transaction voided")

	out := buf.String()
	if !strings.Contains(out, "transaction voided") || !strings.Contains(out, `"transaction_id":7`) {
		t.Errorf("expected structured output, got: %s", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":    zerolog.DebugLevel,
		"INFO":     zerolog.InfoLevel,
		" error ":  zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
		"":         zerolog.WarnLevel,
		"nonsense": zerolog.WarnLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_RespectsLevel(t *testing.T) {
	log := New(config.LogConfig{Level: "error", Format: "json"})
	if log.GetLevel() != zerolog.ErrorLevel {
		t.Errorf("expected error level, got %v", log.GetLevel())
	}
}

func TestContextRoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	ctx := WithContext(context.Background(), NewWithWriter(buf))

	log := FromContext(ctx)
	log.Info().Msg("from context")
	if !strings.Contains(buf.String(), "from context") {
		t.Errorf("expected logger from context to write to buffer, got: %s", buf.String())
	}

	nop := FromContext(context.Background())
	if nop.GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled logger without a stored one, got %v", nop.GetLevel())
	}
	nop.Info().Msg("dropped")

	var nilCtx context.Context
	if l := FromContext(nilCtx); l.GetLevel() != zerolog.Disabled {
		t.Errorf("expected disabled logger for nil context, got %v", l.GetLevel())
	}
}
