package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bft-labs/philo/internal/domain"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		ms     int64
		id     int
		action domain.Action
		want   string
	}{
		{0, 1, domain.ActionTookFork, "0 philosopher 1 took a fork"},
		{200, 3, domain.ActionEating, "200 philosopher 3 is eating"},
		{401, 2, domain.ActionSleeping, "401 philosopher 2 is sleeping"},
		{601, 2, domain.ActionThinking, "601 philosopher 2 is thinking"},
		{151, 4, domain.ActionDied, "151 philosopher 4 is dead"},
	}

	for _, tt := range tests {
		if got := Format(tt.ms, tt.id, tt.action); got != tt.want {
			t.Errorf("Format() = %q, want %q", got, tt.want)
		}
	}
}

func TestReporter_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorAuto)

	if r.Colored() {
		t.Fatal("buffer output must not be coloured in auto mode")
	}

	r.Report(5, 2, domain.ActionTookFork)
	r.Report(6, 2, domain.ActionTookFork)

	want := "5 philosopher 2 took a fork\n6 philosopher 2 took a fork\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestReporter_Colored(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorAlways)

	r.Report(151, 4, domain.ActionDied)

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Errorf("output %q has no escape sequence", out)
	}
	if !strings.Contains(out, "151 philosopher 4 is dead") {
		t.Errorf("output %q lost the line text", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("output %q is not newline terminated", out)
	}
}

func TestReporter_Never(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, ColorNever)
	r.Report(1, 1, domain.ActionEating)

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("output %q is coloured", buf.String())
	}
}

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		in      string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"Always", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
