package classifier

import (
	"testing"

	"github.com/CodeBridge/Converter/internal/model"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		code string
		want model.Language
	}{
		{
			name: "python function with indent",
			code: "def f(n):\n    return n",
			want: model.LangPython,
		},
		{
			name: "cpp include and main",
			code: "#include <iostream>\nint main(){return 0;}",
			want: model.LangCPP,
		},
		{
			name: "java public class",
			code: "public class Calculator {\n    public static void main(String[] args) {\n        System.out.println(\"hi\");\n    }\n}",
			want: model.LangJava,
		},
		{
			name: "javascript named function",
			code: "function greet(name) {\n  console.log(`hello ${name}`);\n}\ngreet(\"world\");",
			want: model.LangJavaScript,
		},
		{
			name: "python script without def",
			code: "import sys\nprint(sys.argv)",
			want: model.LangPython,
		},
		{
			name: "empty input",
			code: "",
			want: model.LangUnknown,
		},
		{
			name: "no signals at all",
			code: "1 + 2\n3 * 4",
			want: model.LangUnknown,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := Classify(tc.code)
			if got != tc.want {
				t.Fatalf("Classify(%q) = %q, want %q", tc.code, got, tc.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	t.Parallel()

	code := "#include <vector>\nint main(){ std::vector<int> v; return 0; }"
	first := Classify(code)
	for i := 0; i < 50; i++ {
		if got := Classify(code); got != first {
			t.Fatalf("run %d: Classify returned %q, previously %q", i, got, first)
		}
	}
}

func TestClassifyBraceTieBreak(t *testing.T) {
	t.Parallel()

	// 只有花括号、没有任何词法特征时各语言得分相同且为正，
	// 按声明顺序应取 C++（Python 得 0 分）。
	got := Classify("{ }")
	if got != model.LangCPP {
		t.Fatalf("Classify(braces only) = %q, want %q", got, model.LangCPP)
	}
}

func TestScoreIncludeBonus(t *testing.T) {
	t.Parallel()

	scores := score("#include <iostream>\nint main(){return 0;}")
	// '#include' 子串 1 分 + include 指令行 3 分 + 其它词法分
	if scores[model.LangCPP] < 4 {
		t.Fatalf("cpp score = %d, want >= 4", scores[model.LangCPP])
	}
	if scores[model.LangCPP] <= scores[model.LangPython] {
		t.Fatalf("cpp score %d not above python score %d", scores[model.LangCPP], scores[model.LangPython])
	}
}
