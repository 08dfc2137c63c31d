package ui

import (
	"bytes"
	"strings"
	"testing"

	"termcalc/internal/domain"
)

// newTestTerminal returns a non-TTY terminal writing to controlled buffers.
func newTestTerminal() (*Terminal, *bytes.Buffer, *bytes.Buffer) {
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	t := NewTerminalWithWriter(out, errOut, false)
	return t, out, errOut
}

func TestTerminal_IsTTY(t *testing.T) {
	term, _, _ := newTestTerminal()
	if term.IsTTY() {
		t.Error("expected IsTTY=false for test terminal")
	}
}

func TestTerminal_Menu(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Menu()
	got := out.String()
	for _, want := range []string{
		"Select operation:",
		"1. Add",
		"2. Subtract",
		"3. Multiply",
		"4. Divide",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Menu output missing %q: %q", want, got)
		}
	}
}

func TestTerminal_Prompt(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Prompt("Enter choice (1/2/3/4): ")
	got := out.String()
	if got != "Enter choice (1/2/3/4): " {
		t.Errorf("Prompt output = %q, want no trailing newline", got)
	}
}

func TestTerminal_Result(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{5, "Result: 5\n"},
		{2.5, "Result: 2.5\n"},
		{10, "Result: 10\n"},
	}
	for _, tt := range tests {
		term, out, _ := newTestTerminal()
		term.Result(tt.v)
		if got := out.String(); got != tt.want {
			t.Errorf("Result(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}

func TestTerminal_Diagnostic(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Diagnostic("Error! Division by zero.")
	// Diagnostics carry no label prefix: they are protocol lines
	if got := out.String(); got != "Error! Division by zero.\n" {
		t.Errorf("Diagnostic output = %q", got)
	}
}

func TestTerminal_Banner(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Banner("Hello World")
	if !strings.Contains(out.String(), "Hello World") {
		t.Errorf("Banner output missing title: %q", out.String())
	}
}

func TestTerminal_Section(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Section("My Section")
	if !strings.Contains(out.String(), "My Section") {
		t.Errorf("Section output missing title: %q", out.String())
	}
}

func TestTerminal_Success(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Success("it worked")
	got := out.String()
	if !strings.Contains(got, "it worked") {
		t.Errorf("Success output missing message: %q", got)
	}
	if !strings.Contains(got, "SUCCESS") {
		t.Errorf("Success output missing label: %q", got)
	}
}

func TestTerminal_Error(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Error("it broke")
	got := out.String()
	if !strings.Contains(got, "it broke") {
		t.Errorf("Error output missing message: %q", got)
	}
	if !strings.Contains(got, "ERROR") {
		t.Errorf("Error output missing label: %q", got)
	}
}

func TestTerminal_Warning(t *testing.T) {
	term, out, _ := newTestTerminal()
	term.Warning("be careful")
	got := out.String()
	if !strings.Contains(got, "be careful") {
		t.Errorf("Warning output missing message: %q", got)
	}
	if !strings.Contains(got, "WARNING") {
		t.Errorf("Warning output missing label: %q", got)
	}
}

func TestTerminal_SprintColors_NoTTY(t *testing.T) {
	term, _, _ := newTestTerminal()
	// Without TTY, sprint methods should return the raw text unchanged
	if got := term.SuccessSprint("ok"); got != "ok" {
		t.Errorf("SuccessSprint non-TTY: got %q, want %q", got, "ok")
	}
	if got := term.ErrorSprint("fail"); got != "fail" {
		t.Errorf("ErrorSprint non-TTY: got %q, want %q", got, "fail")
	}
	if got := term.WarningSprint("warn"); got != "warn" {
		t.Errorf("WarningSprint non-TTY: got %q, want %q", got, "warn")
	}
}

func TestTerminal_Table(t *testing.T) {
	term, out, _ := newTestTerminal()
	headers := []string{"Name", "Value"}
	rows := [][]string{
		{"foo", "bar"},
		{"baz", "qux"},
	}
	term.Table(headers, rows)
	got := out.String()
	if !strings.Contains(got, "foo") || !strings.Contains(got, "bar") {
		t.Errorf("Table output missing data: %q", got)
	}
}

func TestTerminal_HealthCheckTable(t *testing.T) {
	term, out, _ := newTestTerminal()
	checks := []domain.HealthCheck{
		{Name: "Configuration", Status: domain.StatusOK, Message: "Valid"},
		{Name: "Terminal", Status: domain.StatusWarn, Message: "Not a terminal"},
		{Name: "Arithmetic engine", Status: domain.StatusError, Message: "broken"},
	}
	term.HealthCheckTable(checks)
	got := out.String()
	for _, want := range []string{"Configuration", "Terminal", "Arithmetic engine", "Valid", "broken"} {
		if !strings.Contains(got, want) {
			t.Errorf("HealthCheckTable output missing %q: %q", want, got)
		}
	}
}
