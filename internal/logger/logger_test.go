package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   Level
		wantOK bool
	}{
		{"off", LevelOff, true},
		{"QUIET", LevelOff, true},
		{"verbose", LevelVerbose, true},
		{"debug", LevelVerbose, true},
		{"normal", LevelNormal, true},
		{"", LevelNormal, true},
		{"chatty", LevelNormal, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Fatalf("ParseLevel(%q) = %v,%v; want %v,%v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelNormal, &buf)

	log.Debug("hidden %d", 1)
	log.Info("shown %d", 2)
	log.Warn("warned")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug line leaked at normal level: %q", out)
	}
	if !strings.Contains(out, "[INF]") || !strings.Contains(out, "shown 2") {
		t.Fatalf("missing info line: %q", out)
	}
	if !strings.Contains(out, "[WRN]") {
		t.Fatalf("missing warn line: %q", out)
	}

	buf.Reset()
	log.SetLevel(LevelOff)
	log.Error("nothing")
	if buf.Len() != 0 {
		t.Fatalf("expected no output when off, got %q", buf.String())
	}
}

func TestWriterForwardsLines(t *testing.T) {
	var buf bytes.Buffer
	log := New(LevelVerbose, &buf)

	w := log.Writer(LevelVerbose)
	if _, err := w.Write([]byte("GET /receitas 200\n")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if !strings.Contains(buf.String(), "[DBG] ") || !strings.Contains(buf.String(), "GET /receitas 200") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
