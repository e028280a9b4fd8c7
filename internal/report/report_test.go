package report

import (
	"strings"
	"testing"

	"github.com/CodeBridge/Converter/internal/model"
)

func TestFormatSuccess(t *testing.T) {
	t.Parallel()

	got := Format(&model.ExecutionOutcome{
		Status:    model.StatusOK,
		Succeeded: true,
		Stdout:    "42\n",
	})
	if !strings.Contains(got, "✅ Execution successful!") {
		t.Fatalf("missing success marker: %q", got)
	}
	if !strings.Contains(got, "--- Output ---\n42\n") {
		t.Fatalf("missing output block: %q", got)
	}
	if strings.Contains(got, "Errors/Warnings") {
		t.Fatalf("unexpected stderr block: %q", got)
	}
}

func TestFormatSuccessWithWarnings(t *testing.T) {
	t.Parallel()

	got := Format(&model.ExecutionOutcome{
		Status:    model.StatusOK,
		Succeeded: true,
		Stdout:    "done\n",
		Stderr:    "DeprecationWarning: old API\n",
	})
	if !strings.Contains(got, "--- Errors/Warnings ---\nDeprecationWarning") {
		t.Fatalf("missing warnings block: %q", got)
	}
}

func TestFormatCompileFailure(t *testing.T) {
	t.Parallel()

	got := Format(&model.ExecutionOutcome{
		Status:  model.StatusCompileError,
		Message: "main.cpp:1: error: expected ';'",
		Stderr:  "main.cpp:1: error: expected ';'",
	})
	if !strings.Contains(got, "❌ Compilation failed:") {
		t.Fatalf("missing failure marker: %q", got)
	}
	if !strings.Contains(got, "expected ';'") {
		t.Fatalf("compiler stderr not surfaced: %q", got)
	}
	if strings.Contains(got, "--- Output ---") {
		t.Fatalf("compile failure has an output block: %q", got)
	}
}

func TestFormatTimeout(t *testing.T) {
	t.Parallel()

	got := Format(&model.ExecutionOutcome{
		Status:  model.StatusTimeLimitExceeded,
		Message: "Execution timed out",
	})
	if !strings.Contains(got, "⏱️ Execution timed out") {
		t.Fatalf("missing timeout marker: %q", got)
	}
}

func TestFormatRuntimeError(t *testing.T) {
	t.Parallel()

	got := Format(&model.ExecutionOutcome{
		Status:  model.StatusRuntimeError,
		Message: "process exited with code 1",
		Stderr:  "ZeroDivisionError: division by zero",
	})
	if !strings.Contains(got, "❌ "+string(model.StatusRuntimeError)) {
		t.Fatalf("missing failure marker: %q", got)
	}
	if !strings.Contains(got, "ZeroDivisionError") {
		t.Fatalf("stderr not surfaced: %q", got)
	}
}
