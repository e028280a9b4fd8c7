// Package report renders execution outcomes into the human-readable
// text block shown to the user. Pure formatting, no state, no I/O.
package report

import (
	"strings"

	"github.com/CodeBridge/Converter/internal/model"
)

// Format 把执行结果组装成单个报告字符串
func Format(outcome *model.ExecutionOutcome) string {
	var b strings.Builder

	switch {
	case outcome.Succeeded:
		b.WriteString("✅ Execution successful!\n")
	case outcome.Status == model.StatusTimeLimitExceeded:
		b.WriteString("⏱️ ")
		b.WriteString(outcome.Message)
		b.WriteString("\n")
	case outcome.Status == model.StatusCompileError:
		b.WriteString("❌ Compilation failed:\n")
		b.WriteString(outcome.Message)
		b.WriteString("\n")
	default:
		b.WriteString("❌ ")
		b.WriteString(string(outcome.Status))
		if outcome.Message != "" {
			b.WriteString(": ")
			b.WriteString(outcome.Message)
		}
		b.WriteString("\n")
	}

	if outcome.Succeeded || outcome.Stdout != "" {
		b.WriteString("\n--- Output ---\n")
		b.WriteString(outcome.Stdout)
	}
	if outcome.Stderr != "" && outcome.Status != model.StatusCompileError {
		b.WriteString("\n--- Errors/Warnings ---\n")
		b.WriteString(outcome.Stderr)
	}

	return b.String()
}
