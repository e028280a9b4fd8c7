package convert

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/CodeBridge/Converter/internal/artifact"
	"github.com/CodeBridge/Converter/internal/classifier"
	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/executor"
	"github.com/CodeBridge/Converter/internal/model"
	"github.com/CodeBridge/Converter/internal/toolchain"
	"github.com/CodeBridge/Converter/internal/translate"
)

// Service 转换与执行的编排服务
// 持有一个有界工作池；单个请求内部仍然严格串行：
// 探测 → 落盘 → 编译 → 运行 → 清理。
type Service struct {
	translator translate.Translator
	artifacts  *artifact.Manager
	logger     *zap.Logger
	jobQueue   chan *model.ConvertTask
}

func NewService(translator translate.Translator, logger *zap.Logger) *Service {
	cfg := config.GlobalConfig.Server
	s := &Service{
		translator: translator,
		artifacts:  artifact.NewManager(logger),
		logger:     logger,
		jobQueue:   make(chan *model.ConvertTask, cfg.QueueSize),
	}
	s.startWorkers(cfg.Workers)
	return s
}

func (s *Service) startWorkers(n int) {
	for i := 0; i < n; i++ {
		go s.worker()
	}
}

func (s *Service) worker() {
	for task := range s.jobQueue {
		result := s.Convert(context.Background(), task)
		select {
		case task.ResultChan <- result:
		default:
			s.logger.Error("Result channel blocked", zap.String("task_id", task.ID))
		}
	}
}

// Submit 把任务排进队列，队列满时直接拒绝
func (s *Service) Submit(task *model.ConvertTask) error {
	select {
	case s.jobQueue <- task:
		return nil
	default:
		return fmt.Errorf("system busy: job queue is full")
	}
}

// QueueDepth 当前排队中的任务数（服务注册心跳用）
func (s *Service) QueueDepth() int {
	return len(s.jobQueue)
}

// Convert 完整的转换流程：识别源语言，必要时调翻译服务，按需执行
func (s *Service) Convert(ctx context.Context, task *model.ConvertTask) *model.ConvertResult {
	detected := classifier.Classify(task.SourceCode)
	result := &model.ConvertResult{DetectedLang: detected}

	if detected == model.LangUnknown {
		result.Info = "Could not detect programming language. Please ensure your code is valid."
		return result
	}

	if detected == task.TargetLang {
		result.ConvertedCode = task.SourceCode
		result.Info = fmt.Sprintf("Source language: %s\nNo conversion needed - same language selected.",
			detected.Display())
	} else {
		converted, err := s.translator.Translate(ctx, task.SourceCode, detected, task.TargetLang)
		if err != nil {
			result.Info = fmt.Sprintf("Detected language: %s\nConversion failed: %v",
				detected.Display(), err)
			return result
		}
		result.ConvertedCode = converted
		result.Info = fmt.Sprintf("Detected language: %s\nConverted to: %s\n\n✅ Conversion completed successfully!",
			detected.Display(), task.TargetLang.Display())
	}

	if task.Run && result.ConvertedCode != "" {
		result.Outcome = s.Execute(ctx, result.ConvertedCode, task.TargetLang)
	}
	return result
}

// Execute 对给定语言的代码走一遍编译/运行流水线
// 任何失败都收敛成 Outcome 值，调用方永远拿得到结果。
func (s *Service) Execute(ctx context.Context, code string, lang model.Language) *model.ExecutionOutcome {
	if lang == model.LangUnknown {
		return &model.ExecutionOutcome{
			Status:  model.StatusUnknownLanguage,
			Message: "Cannot execute: target language is unknown",
		}
	}

	// Java 先验明公开类型名，省得白白探测一轮工具链
	if err := artifact.Validate(code, lang); err != nil {
		if errors.Is(err, artifact.ErrIdentifierMissing) {
			return &model.ExecutionOutcome{
				Status:  model.StatusIdentifierMissing,
				Message: "❌ Could not find public class declaration",
			}
		}
		return systemError(err)
	}

	// 可用性每次现查，环境可能在两次调用之间发生变化
	if !toolchain.Available(ctx, lang) {
		return &model.ExecutionOutcome{
			Status:  model.StatusToolchainMissing,
			Message: toolchain.Remediation(lang),
		}
	}

	exe, err := executor.GetExecutor(lang)
	if err != nil {
		return systemError(err)
	}

	art, err := s.artifacts.Materialize(code, lang)
	if err != nil {
		return systemError(err)
	}
	defer s.artifacts.Dispose(art)

	return exe.Run(ctx, art)
}

func systemError(err error) *model.ExecutionOutcome {
	return &model.ExecutionOutcome{
		Status:  model.StatusSystemError,
		Message: err.Error(),
	}
}
