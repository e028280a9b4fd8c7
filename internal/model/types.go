package model

// ExecStatus 执行状态枚举
type ExecStatus string

const (
	StatusOK                ExecStatus = "OK"
	StatusUnknownLanguage   ExecStatus = "Unknown Language"
	StatusToolchainMissing  ExecStatus = "Toolchain Missing"
	StatusIdentifierMissing ExecStatus = "Identifier Missing"
	StatusCompileError      ExecStatus = "Compile Error"
	StatusRuntimeError      ExecStatus = "Runtime Error"
	StatusTimeLimitExceeded ExecStatus = "Time Limit Exceeded"
	StatusSystemError       ExecStatus = "System Error"
)

// Language 编程语言枚举
type Language string

const (
	LangPython     Language = "python"
	LangCPP        Language = "cpp"
	LangJava       Language = "java"
	LangJavaScript Language = "javascript"
	LangUnknown    Language = "unknown"
)

// Languages 受支持的语言，按声明顺序排列。
// 分类器在正分并列时取此顺序中靠前的语言，顺序不能随意调整。
var Languages = []Language{LangPython, LangCPP, LangJava, LangJavaScript}

// ParseLanguage 解析外部传入的语言名（接受界面显示名和内部标识）
func ParseLanguage(s string) Language {
	switch s {
	case "python", "Python", "py":
		return LangPython
	case "cpp", "C++", "c++", "cxx":
		return LangCPP
	case "java", "Java":
		return LangJava
	case "javascript", "JavaScript", "js":
		return LangJavaScript
	default:
		return LangUnknown
	}
}

// Display 返回语言的显示名（用于提示词和界面文本）
func (l Language) Display() string {
	switch l {
	case LangPython:
		return "Python"
	case LangCPP:
		return "C++"
	case LangJava:
		return "Java"
	case LangJavaScript:
		return "JavaScript"
	default:
		return "Unknown"
	}
}

// ExecutionOutcome 单次编译/运行尝试的最终结果
// 每次执行请求恰好产生一个，产生后不再修改，也不会自动重试。
type ExecutionOutcome struct {
	Status    ExecStatus `json:"status"`
	Succeeded bool       `json:"succeeded"`
	Message   string     `json:"message"`
	Stdout    string     `json:"stdout"`
	Stderr    string     `json:"stderr"`
}

// ConvertTask 一次转换任务
type ConvertTask struct {
	ID         string
	SourceCode string
	TargetLang Language
	Run        bool // 转换后是否编译/运行
	ResultChan chan *ConvertResult
}

// ConvertResult 转换任务的结果
type ConvertResult struct {
	DetectedLang  Language
	Info          string
	ConvertedCode string
	Outcome       *ExecutionOutcome // Run 为 false 或转换失败时为 nil
}
