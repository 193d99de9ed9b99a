package debug

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLogRespectsDebugFlag(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(os.Stderr)

	old := os.Getenv("DEBUG")
	defer os.Setenv("DEBUG", old)

	os.Setenv("DEBUG", "")
	Log("WRITE", "should not appear\n")
	if buf.Len() != 0 {
		t.Errorf("Expected no output with DEBUG unset, got %q", buf.String())
	}

	os.Setenv("DEBUG", "1")
	Log("WRITE", "swap %s\n", "file.go")
	if !strings.Contains(buf.String(), "[DEBUG:WRITE] swap file.go") {
		t.Errorf("Expected tagged debug line, got %q", buf.String())
	}
}

func TestComponentWrappers(t *testing.T) {
	var buf bytes.Buffer
	SetDebugOutput(&buf)
	defer SetDebugOutput(os.Stderr)

	old := os.Getenv("DEBUG")
	defer os.Setenv("DEBUG", old)
	os.Setenv("DEBUG", "true")

	LogRewrite("backend selected\n")
	LogVerify("check done\n")
	LogBatch("5 files\n")

	out := buf.String()
	for _, tag := range []string{"REWRITE", "VERIFY", "BATCH"} {
		if !strings.Contains(out, "[DEBUG:"+tag+"]") {
			t.Errorf("Expected %s component tag in output: %q", tag, out)
		}
	}
}
