package convert

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
	"github.com/CodeBridge/Converter/internal/toolchain"
)

func TestMain(m *testing.M) {
	config.ApplyDefaults()
	m.Run()
}

// stubTranslator 可编程的翻译桩
type stubTranslator struct {
	result string
	err    error
	calls  int
}

func (s *stubTranslator) Translate(ctx context.Context, code string, from, to model.Language) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.result, nil
}

func newTestService(tr *stubTranslator) *Service {
	return NewService(tr, zap.NewNop())
}

func TestConvertUnknownSource(t *testing.T) {
	tr := &stubTranslator{}
	s := newTestService(tr)

	res := s.Convert(context.Background(), &model.ConvertTask{
		SourceCode: "1 + 2",
		TargetLang: model.LangCPP,
	})

	if res.DetectedLang != model.LangUnknown {
		t.Fatalf("detected = %s, want unknown", res.DetectedLang)
	}
	if !strings.Contains(res.Info, "Could not detect") {
		t.Fatalf("info = %q", res.Info)
	}
	if res.ConvertedCode != "" || tr.calls != 0 {
		t.Fatalf("unknown source still translated: %+v, calls=%d", res, tr.calls)
	}
}

func TestConvertSameLanguagePassthrough(t *testing.T) {
	tr := &stubTranslator{err: fmt.Errorf("translator must not be called")}
	s := newTestService(tr)
	code := "def f(n):\n    return n"

	res := s.Convert(context.Background(), &model.ConvertTask{
		SourceCode: code,
		TargetLang: model.LangPython,
	})

	if res.ConvertedCode != code {
		t.Fatalf("converted = %q, want passthrough", res.ConvertedCode)
	}
	if !strings.Contains(res.Info, "No conversion needed") {
		t.Fatalf("info = %q", res.Info)
	}
	if tr.calls != 0 {
		t.Fatalf("translator called %d times for same-language request", tr.calls)
	}
}

func TestConvertTranslates(t *testing.T) {
	tr := &stubTranslator{result: "#include <iostream>\nint main(){return 0;}"}
	s := newTestService(tr)

	res := s.Convert(context.Background(), &model.ConvertTask{
		SourceCode: "def f(n):\n    return n",
		TargetLang: model.LangCPP,
	})

	if tr.calls != 1 {
		t.Fatalf("translator called %d times, want 1", tr.calls)
	}
	if res.ConvertedCode != tr.result {
		t.Fatalf("converted = %q", res.ConvertedCode)
	}
	if !strings.Contains(res.Info, "Converted to: C++") {
		t.Fatalf("info = %q", res.Info)
	}
	if res.Outcome != nil {
		t.Fatalf("outcome present without run flag: %+v", res.Outcome)
	}
}

func TestConvertTranslationFailure(t *testing.T) {
	tr := &stubTranslator{err: fmt.Errorf("API Error: 500")}
	s := newTestService(tr)

	res := s.Convert(context.Background(), &model.ConvertTask{
		SourceCode: "def f(n):\n    return n",
		TargetLang: model.LangCPP,
		Run:        true,
	})

	if !strings.Contains(res.Info, "Conversion failed") {
		t.Fatalf("info = %q", res.Info)
	}
	if res.ConvertedCode != "" || res.Outcome != nil {
		t.Fatalf("failed conversion still produced code/outcome: %+v", res)
	}
}

func TestExecuteUnknownLanguage(t *testing.T) {
	s := newTestService(&stubTranslator{})

	out := s.Execute(context.Background(), "whatever", model.LangUnknown)
	if out.Status != model.StatusUnknownLanguage || out.Succeeded {
		t.Fatalf("outcome = %+v", out)
	}
}

func TestExecuteToolchainMissing(t *testing.T) {
	orig := config.GlobalConfig.Toolchains.CPP
	config.GlobalConfig.Toolchains.CPP = "/nonexistent/g++"
	defer func() { config.GlobalConfig.Toolchains.CPP = orig }()

	s := newTestService(&stubTranslator{})
	out := s.Execute(context.Background(), "int main(){return 0;}", model.LangCPP)

	if out.Status != model.StatusToolchainMissing {
		t.Fatalf("status = %s, want %s", out.Status, model.StatusToolchainMissing)
	}
	if !strings.Contains(out.Message, "not found") {
		t.Fatalf("message = %q, want remediation text", out.Message)
	}
}

func TestExecuteJavaIdentifierMissing(t *testing.T) {
	// javac 路径指向不存在的地方：标识符检查必须先于工具链探测，
	// 所以这里仍然要得到 IdentifierMissing 而不是 ToolchainMissing。
	orig := config.GlobalConfig.Toolchains.Javac
	config.GlobalConfig.Toolchains.Javac = "/nonexistent/javac"
	defer func() { config.GlobalConfig.Toolchains.Javac = orig }()

	s := newTestService(&stubTranslator{})
	out := s.Execute(context.Background(), "class lowercase {}", model.LangJava)

	if out.Status != model.StatusIdentifierMissing {
		t.Fatalf("status = %s, want %s", out.Status, model.StatusIdentifierMissing)
	}
	if !strings.Contains(out.Message, "public class") {
		t.Fatalf("message = %q", out.Message)
	}
}

func TestExecuteCleansUpArtifacts(t *testing.T) {
	if !toolchain.Available(context.Background(), model.LangPython) {
		t.Skip("python toolchain not available")
	}

	s := newTestService(&stubTranslator{})
	before := countWorkDirs(t)

	out := s.Execute(context.Background(), "print('cleanup check')\n", model.LangPython)
	if !out.Succeeded {
		t.Fatalf("outcome = %+v", out)
	}

	after := countWorkDirs(t)
	if after != before {
		t.Fatalf("work dirs before = %d, after = %d; artifact leaked", before, after)
	}
}

func TestExecuteCleansUpAfterFailure(t *testing.T) {
	if !toolchain.Available(context.Background(), model.LangPython) {
		t.Skip("python toolchain not available")
	}

	s := newTestService(&stubTranslator{})
	before := countWorkDirs(t)

	out := s.Execute(context.Background(), "print(1/0)\n", model.LangPython)
	if out.Succeeded {
		t.Fatalf("outcome = %+v", out)
	}

	after := countWorkDirs(t)
	if after != before {
		t.Fatalf("work dirs before = %d, after = %d; artifact leaked", before, after)
	}
}

func countWorkDirs(t *testing.T) int {
	t.Helper()
	entries, err := os.ReadDir(os.TempDir())
	if err != nil {
		t.Fatalf("read temp dir: %v", err)
	}
	n := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "converter-") {
			n++
		}
	}
	return n
}

func TestSubmitRoundtrip(t *testing.T) {
	s := newTestService(&stubTranslator{result: "console.log(1);"})

	task := &model.ConvertTask{
		ID:         "t1",
		SourceCode: "def f(n):\n    return n",
		TargetLang: model.LangJavaScript,
		ResultChan: make(chan *model.ConvertResult, 1),
	}
	if err := s.Submit(task); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	select {
	case res := <-task.ResultChan:
		if res.ConvertedCode != "console.log(1);" {
			t.Fatalf("result = %+v", res)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no result within 5s")
	}
}
