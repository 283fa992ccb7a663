package config

import (
	"bytes"
	"testing"
)

func TestExitfWritesMessageAndExitsWithCode1(t *testing.T) {
	var code int
	original := exit
	exit = func(c int) { code = c }
	t.Cleanup(func() { exit = original })

	var buf bytes.Buffer
	exitf(&buf, "fatal: %s", "catalog missing")

	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
	if got := buf.String(); got != "fatal: catalog missing\n" {
		t.Fatalf("output = %q", got)
	}
}
