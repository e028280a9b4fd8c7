package translate

import "strings"

// codePrefixes 判定"代码从这里开始"的前缀集合
var codePrefixes = []string{
	"#include", "import ", "from ", "def ", "class ",
	"public ", "function ", "var ", "let ", "const ",
	"package ", "using ",
}

// Sanitize 净化翻译服务返回的文本：剥掉包裹的代码围栏，
// 再丢弃代码开始之前的解释性文字。纯函数。
func Sanitize(raw string) string {
	content := strings.TrimSpace(raw)
	content = stripFences(content)

	lines := strings.Split(content, "\n")
	var kept []string
	started := false
	for _, line := range lines {
		// 围栏行本身永远不是代码，整行丢掉
		if strings.HasPrefix(strings.TrimSpace(line), "```") {
			continue
		}
		if !started && looksLikeCode(line) {
			started = true
		}
		if started {
			kept = append(kept, line)
		}
	}
	// 一行代码都认不出来就原样返回，宁可多给也不吞内容
	if len(kept) == 0 {
		return content
	}
	return strings.Join(kept, "\n")
}

func looksLikeCode(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range codePrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

// stripFences 去掉 ``` 围栏（含 ```python 之类的语言标注行）
func stripFences(content string) string {
	if !strings.HasPrefix(content, "```") {
		return content
	}
	lines := strings.Split(content, "\n")
	end := len(lines)
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			end = i
			break
		}
	}
	return strings.Join(lines[1:end], "\n")
}
