package executor

import (
	"context"
	"path/filepath"

	"github.com/CodeBridge/Converter/internal/artifact"
	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

type CPPExecutor struct {
	CPPPath string
}

func NewCPPExecutor() *CPPExecutor {
	return &CPPExecutor{
		CPPPath: config.GlobalConfig.Toolchains.CPP,
	}
}

func (e *CPPExecutor) Run(ctx context.Context, art *artifact.Artifact) *model.ExecutionOutcome {
	exePath := filepath.Join(art.WorkDir, "main")

	// g++ main.cpp -o main -O2 -Wall -std=c++17
	comp := runStep(ctx, compileTimeout(), art.WorkDir, e.CPPPath,
		art.SrcPath, "-o", exePath, "-O2", "-Wall", "-std=c++17")
	if out := compileOutcome(comp); out != nil {
		return out
	}

	return runOutcome(runStep(ctx, runTimeout(), art.WorkDir, exePath))
}
