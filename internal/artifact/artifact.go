package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"go.uber.org/zap"

	"github.com/CodeBridge/Converter/internal/model"
	"github.com/CodeBridge/Converter/internal/toolchain"
)

// ErrIdentifierMissing 语言要求源文件名与公开类型名一致，但代码里找不到该声明
var ErrIdentifierMissing = errors.New("no public type declaration found")

// javaPublicType 匹配 `public <type-keyword> <Identifier>` 声明
var javaPublicType = regexp.MustCompile(`public\s+(?:final\s+|abstract\s+)?(?:class|interface|enum|record)\s+(\w+)`)

// Artifact 一次执行尝试对应的临时工作区
// 生命周期：created → (renamed) → 被执行器消费 → deleted。
// 每次尝试恰好一个，绝不跨尝试复用。
type Artifact struct {
	Lang    model.Language
	WorkDir string
	SrcPath string
	// MainClass Java 专用，源文件按它命名
	MainClass string
}

// Validate 不碰文件系统地检查代码能否落盘
// 目前唯一的规则是 Java 必须声明公开类型。
func Validate(code string, lang model.Language) error {
	_, err := sourceFilename(code, lang)
	return err
}

// Manager 负责临时产物的创建和清理
type Manager struct {
	logger *zap.Logger
}

func NewManager(logger *zap.Logger) *Manager {
	return &Manager{logger: logger}
}

// Materialize 把源码原样写入一个唯一命名的临时工作区
// Java 代码先解析公开类型名，解析不到直接失败，不会碰任何工具链。
func (m *Manager) Materialize(code string, lang model.Language) (*Artifact, error) {
	name, err := sourceFilename(code, lang)
	if err != nil {
		return nil, err
	}

	workDir, err := os.MkdirTemp("", "converter-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create work dir: %v", err)
	}

	srcPath := filepath.Join(workDir, name)
	if err := os.WriteFile(srcPath, []byte(code), 0644); err != nil {
		// 写失败时工作区自己收掉，不留半成品
		_ = os.RemoveAll(workDir)
		return nil, fmt.Errorf("failed to write source code: %v", err)
	}

	art := &Artifact{Lang: lang, WorkDir: workDir, SrcPath: srcPath}
	if lang == model.LangJava {
		art.MainClass = name[:len(name)-len(".java")]
	}
	return art, nil
}

// Dispose 删除工作区和里面的一切编译产物
// 尽力而为：失败只记日志，绝不覆盖已经算出的执行结果。
func (m *Manager) Dispose(art *Artifact) {
	if art == nil || art.WorkDir == "" {
		return
	}
	if err := os.RemoveAll(art.WorkDir); err != nil {
		m.logger.Warn("Failed to clean up work dir",
			zap.String("work_dir", art.WorkDir), zap.Error(err))
	}
}

// sourceFilename 返回语言约定的源文件名
// Java 的文件名必须等于公开类型名，这是 javac 的硬性要求。
func sourceFilename(code string, lang model.Language) (string, error) {
	if lang == model.LangJava {
		match := javaPublicType.FindStringSubmatch(code)
		if match == nil {
			return "", ErrIdentifierMissing
		}
		return match[1] + ".java", nil
	}
	return "main" + toolchain.Ext(lang), nil
}
