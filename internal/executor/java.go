package executor

import (
	"context"
	"path/filepath"

	"github.com/CodeBridge/Converter/internal/artifact"
	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

type JavaExecutor struct {
	JavacPath string
	JavaPath  string
}

func NewJavaExecutor() *JavaExecutor {
	return &JavaExecutor{
		JavacPath: config.GlobalConfig.Toolchains.Javac,
		JavaPath:  config.GlobalConfig.Toolchains.Java,
	}
}

func (e *JavaExecutor) Run(ctx context.Context, art *artifact.Artifact) *model.ExecutionOutcome {
	// javac -encoding UTF-8 <MainClass>.java
	comp := runStep(ctx, compileTimeout(), art.WorkDir, e.JavacPath,
		"-encoding", "UTF-8", filepath.Base(art.SrcPath))
	if out := compileOutcome(comp); out != nil {
		return out
	}

	// java -cp <workdir> <MainClass>
	return runOutcome(runStep(ctx, runTimeout(), art.WorkDir, e.JavaPath,
		"-cp", art.WorkDir, art.MainClass))
}
