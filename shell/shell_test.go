// Copyright 2024 Brett Vickers. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shell

import (
	"strings"
	"testing"
)

func runBatch(t *testing.T, script string) string {
	t.Helper()
	s := New()
	var out strings.Builder
	s.RunCommands(strings.NewReader(script), &out, false)
	return out.String()
}

func TestEvalCommandPrintsReducedValue(t *testing.T) {
	out := runBatch(t, "eval B+ I# I$\n")
	if !strings.Contains(out, "5") {
		t.Errorf("output %q does not contain the reduced value 5", out)
	}
}

func TestEncodeDecodeIntRoundTripThroughShell(t *testing.T) {
	out := runBatch(t, "encode int 1337\ndecode int /6\n")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "I/6" {
		t.Errorf("encode int 1337 = %q, want %q", lines[0], "I/6")
	}
	if lines[1] != "1337" {
		t.Errorf("decode int /6 = %q, want %q", lines[1], "1337")
	}
}

func TestUnknownCommandReportsNotFound(t *testing.T) {
	out := runBatch(t, "boguscommand\n")
	if !strings.Contains(out, "not found") {
		t.Errorf("output %q does not report the command as not found", out)
	}
}

func TestEmptyLineRepeatsLastCommand(t *testing.T) {
	out := runBatch(t, "eval I$\n\n")
	count := strings.Count(out, "3")
	if count != 2 {
		t.Errorf("expected the value 3 printed twice (initial + repeat), got %d in %q", count, out)
	}
}

func TestSetAndDisplaySettings(t *testing.T) {
	out := runBatch(t, "set showwire true\nset\n")
	if !strings.Contains(out, "Setting updated.") {
		t.Errorf("output %q missing confirmation of the set command", out)
	}
	if !strings.Contains(out, "ShowWire") {
		t.Errorf("output %q missing ShowWire in the settings listing", out)
	}
}

func TestQuitEndsTheSession(t *testing.T) {
	// A command after quit must never run: RunCommands stops as soon as
	// a handler (cmdQuit) returns a non-nil error.
	out := runBatch(t, "quit\neval I$\n")
	if strings.Contains(out, "3") {
		t.Errorf("command after quit was executed; output: %q", out)
	}
}
