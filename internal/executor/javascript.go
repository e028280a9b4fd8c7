package executor

import (
	"context"

	"github.com/CodeBridge/Converter/internal/artifact"
	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

type JavaScriptExecutor struct {
	NodePath string
}

func NewJavaScriptExecutor() *JavaScriptExecutor {
	return &JavaScriptExecutor{
		NodePath: config.GlobalConfig.Toolchains.Node,
	}
}

func (e *JavaScriptExecutor) Run(ctx context.Context, art *artifact.Artifact) *model.ExecutionOutcome {
	return runOutcome(runStep(ctx, runTimeout(), art.WorkDir, e.NodePath, art.SrcPath))
}
