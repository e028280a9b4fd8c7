package executor

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/CodeBridge/Converter/internal/artifact"
	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

const (
	// DefaultCompileTimeout 编译阶段兜底超时
	DefaultCompileTimeout = 15 * time.Second
	// DefaultRunTimeout 运行阶段兜底超时
	DefaultRunTimeout = 10 * time.Second
)

// Executor 按语言驱动一步或两步的外部进程流水线
// 编译型语言先编译后运行，解释型语言直接运行；两个阶段各有独立超时。
type Executor interface {
	Run(ctx context.Context, art *artifact.Artifact) *model.ExecutionOutcome
}

// GetExecutor 返回目标语言的执行器
func GetExecutor(lang model.Language) (Executor, error) {
	switch lang {
	case model.LangCPP:
		return NewCPPExecutor(), nil
	case model.LangJava:
		return NewJavaExecutor(), nil
	case model.LangPython:
		return NewPythonExecutor(), nil
	case model.LangJavaScript:
		return NewJavaScriptExecutor(), nil
	default:
		return nil, fmt.Errorf("unsupported language: %s", lang)
	}
}

func compileTimeout() time.Duration {
	if s := config.GlobalConfig.Limits.CompileTimeoutSeconds; s > 0 {
		return time.Duration(s) * time.Second
	}
	return DefaultCompileTimeout
}

func runTimeout() time.Duration {
	if s := config.GlobalConfig.Limits.RunTimeoutSeconds; s > 0 {
		return time.Duration(s) * time.Second
	}
	return DefaultRunTimeout
}

// stepResult 单个子进程阶段的原始结果
type stepResult struct {
	stdout   string
	stderr   string
	exitCode int
	timedOut bool
	startErr error
}

// runStep 跑一个受超时约束的子进程阶段
// 超时到点 CommandContext 会强杀子进程，不会留孤儿。
func runStep(ctx context.Context, timeout time.Duration, dir, bin string, args ...string) stepResult {
	stepCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(stepCtx, bin, args...)
	cmd.Dir = dir
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := stepResult{
		stdout: limitOutput(stdout.String()),
		stderr: limitOutput(stderr.String()),
	}
	if stepCtx.Err() == context.DeadlineExceeded {
		// 超时结果不捞半截输出，只报超时
		res.timedOut = true
		res.stdout = ""
		res.stderr = ""
		return res
	}
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			res.exitCode = exitErr.ExitCode()
		} else {
			res.startErr = err
		}
	}
	return res
}

// compileOutcome 编译阶段失败时直接给出终态结果，成功返回 nil 让流程继续
// 编译失败绝不进入运行阶段。
func compileOutcome(res stepResult) *model.ExecutionOutcome {
	switch {
	case res.timedOut:
		return &model.ExecutionOutcome{
			Status:  model.StatusTimeLimitExceeded,
			Message: "Compilation timed out",
		}
	case res.startErr != nil:
		return &model.ExecutionOutcome{
			Status:  model.StatusSystemError,
			Message: fmt.Sprintf("failed to start compiler: %v", res.startErr),
		}
	case res.exitCode != 0:
		return &model.ExecutionOutcome{
			Status:  model.StatusCompileError,
			Message: res.stderr,
			Stderr:  res.stderr,
		}
	default:
		return nil
	}
}

// runOutcome 把运行阶段的结果收敛成最终 Outcome
func runOutcome(res stepResult) *model.ExecutionOutcome {
	switch {
	case res.timedOut:
		return &model.ExecutionOutcome{
			Status:  model.StatusTimeLimitExceeded,
			Message: "Execution timed out",
		}
	case res.startErr != nil:
		return &model.ExecutionOutcome{
			Status:  model.StatusSystemError,
			Message: fmt.Sprintf("failed to start process: %v", res.startErr),
		}
	case res.exitCode != 0:
		return &model.ExecutionOutcome{
			Status:  model.StatusRuntimeError,
			Message: fmt.Sprintf("process exited with code %d", res.exitCode),
			Stdout:  res.stdout,
			Stderr:  res.stderr,
		}
	default:
		return &model.ExecutionOutcome{
			Status:    model.StatusOK,
			Succeeded: true,
			Stdout:    res.stdout,
			Stderr:    res.stderr,
		}
	}
}

func limitOutput(s string) string {
	limit := config.GlobalConfig.Limits.MaxOutputSize
	if limit > 0 && int64(len(s)) > limit {
		return s[:limit] + "\n... (output truncated)"
	}
	return s
}
