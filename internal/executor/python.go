package executor

import (
	"context"

	"github.com/CodeBridge/Converter/internal/artifact"
	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

type PythonExecutor struct {
	PythonPath string
}

func NewPythonExecutor() *PythonExecutor {
	return &PythonExecutor{
		PythonPath: config.GlobalConfig.Toolchains.Python,
	}
}

// Run 解释型语言直接跑，单一超时
func (e *PythonExecutor) Run(ctx context.Context, art *artifact.Artifact) *model.ExecutionOutcome {
	return runOutcome(runStep(ctx, runTimeout(), art.WorkDir, e.PythonPath, art.SrcPath))
}
