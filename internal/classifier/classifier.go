package classifier

import (
	"regexp"
	"strings"

	"github.com/CodeBridge/Converter/internal/model"
)

// signals 各语言的词法特征子串，命中一个计 1 分
var signals = map[model.Language][]string{
	model.LangPython: {
		"def ", "import ", "from ", "if __name__", "print(",
		"elif ", "except:", "with ", "yield ", "lambda ",
		"True", "False", "None",
	},
	model.LangCPP: {
		"#include", "using namespace", "int main(", "std::",
		"cout", "cin", "endl", "class ", "public:", "private:",
		"protected:", "vector<", "string ", "int ", "float ",
		"double ", "void ", "return 0;",
	},
	model.LangJava: {
		"public class", "public static void main", "System.out.println",
		"private ", "protected ", "extends ", "implements ", "package ",
		"import java.", "new ", "String[]",
	},
	model.LangJavaScript: {
		"function ", "var ", "let ", "const ", "console.log",
		"document.", "window.", "=>", "require(", "module.exports",
	},
}

// 结构特征加分规则
var (
	reInclude     = regexp.MustCompile(`(?m)^\s*#include\s*<.*>`) // +3 C++
	reDef         = regexp.MustCompile(`(?m)^\s*def\s+\w+\s*\(`)  // +3 Python
	reIndent      = regexp.MustCompile(`(?m)^\s{4,}`)             // +2 Python
	rePublicClass = regexp.MustCompile(`public\s+class\s+\w+`)    // +3 Java
	reFunction    = regexp.MustCompile(`function\s+\w+\s*\(`)     // +2 JavaScript
)

// Classify 根据词法和结构特征猜测源码的语言
// 纯函数，无副作用；全部得分为 0 时返回 Unknown。
func Classify(code string) model.Language {
	scores := score(strings.TrimSpace(code))

	best := model.LangUnknown
	bestScore := 0
	// 正分并列时取声明顺序靠前者，见 model.Languages
	for _, lang := range model.Languages {
		if scores[lang] > bestScore {
			best = lang
			bestScore = scores[lang]
		}
	}
	return best
}

func score(code string) map[model.Language]int {
	scores := make(map[model.Language]int, len(model.Languages))

	for lang, indicators := range signals {
		for _, indicator := range indicators {
			if strings.Contains(code, indicator) {
				scores[lang]++
			}
		}
	}

	if reInclude.MatchString(code) {
		scores[model.LangCPP] += 3
	}
	if reDef.MatchString(code) {
		scores[model.LangPython] += 3
	}
	if reIndent.MatchString(code) {
		scores[model.LangPython] += 2
	}
	if rePublicClass.MatchString(code) {
		scores[model.LangJava] += 3
	}
	if reFunction.MatchString(code) {
		scores[model.LangJavaScript] += 2
	}

	// 成对的花括号给所有花括号语言各加 1 分，
	// 只用来在词法得分相近时把花括号语言抬到缩进语言之上。
	if strings.Contains(code, "{") && strings.Contains(code, "}") {
		scores[model.LangCPP]++
		scores[model.LangJava]++
		scores[model.LangJavaScript]++
	}

	return scores
}
