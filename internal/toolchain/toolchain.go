package toolchain

import (
	"context"
	"errors"
	"io"
	"os/exec"
	"time"

	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

// ProbeTimeout 版本探测命令的超时时间
const ProbeTimeout = 5 * time.Second

// Binary 返回语言对应的编译器/运行时二进制路径
func Binary(lang model.Language) string {
	switch lang {
	case model.LangCPP:
		return config.GlobalConfig.Toolchains.CPP
	case model.LangPython:
		return config.GlobalConfig.Toolchains.Python
	case model.LangJava:
		return config.GlobalConfig.Toolchains.Javac
	case model.LangJavaScript:
		return config.GlobalConfig.Toolchains.Node
	default:
		return ""
	}
}

// Ext 返回语言的常规源文件扩展名
func Ext(lang model.Language) string {
	switch lang {
	case model.LangPython:
		return ".py"
	case model.LangCPP:
		return ".cpp"
	case model.LangJava:
		return ".java"
	case model.LangJavaScript:
		return ".js"
	default:
		return ""
	}
}

// probeArgs 各语言的版本查询参数
func probeArgs(lang model.Language) []string {
	if lang == model.LangJava {
		// javac 不认识 --version 的长写法（旧版本），-version 两边都通
		return []string{"-version"}
	}
	return []string{"--version"}
}

// Available 探测语言所需的工具链当前是否可用
// 缺失是正常结果而不是错误。每次执行请求都重新探测，
// 长会话里环境可能中途装上编译器。
func Available(ctx context.Context, lang model.Language) bool {
	bin := Binary(lang)
	if bin == "" {
		return false
	}

	probeCtx, cancel := context.WithTimeout(ctx, ProbeTimeout)
	defer cancel()

	cmd := exec.CommandContext(probeCtx, bin, probeArgs(lang)...)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		// exec.Error 表示二进制找不到或无法启动
		var execErr *exec.Error
		if errors.As(err, &execErr) {
			return false
		}
		if probeCtx.Err() != nil {
			return false
		}
		// 进程启动了但退出码非零，二进制本身是存在的
		return true
	}
	return true
}

// Remediation 返回工具链缺失时给用户的指引文本
func Remediation(lang model.Language) string {
	switch lang {
	case model.LangCPP:
		return `❌ C++ compiler not found!

Install g++ and make sure it is on PATH, e.g.:
  apt install g++            (Debian/Ubuntu)
  conda install -c conda-forge gxx    (conda environments)

Alternative: use an online C++ compiler like:
- https://www.onlinegdb.com/
- https://replit.com/
- https://ideone.com/`
	case model.LangJava:
		return `❌ Java compiler not found!

Install a JDK and make sure javac is on PATH, e.g.:
  apt install default-jdk    (Debian/Ubuntu)
  conda install openjdk      (conda environments)

Alternative: use an online Java compiler like:
- https://www.onlinegdb.com/
- https://replit.com/
- https://jdoodle.com/`
	case model.LangJavaScript:
		return `❌ Node.js not found!

Install Node.js and make sure node is on PATH, e.g.:
  apt install nodejs         (Debian/Ubuntu)
  conda install nodejs       (conda environments)

Alternative: use an online JavaScript runner like:
- https://jsfiddle.net/
- https://codepen.io/
- https://replit.com/`
	case model.LangPython:
		return `❌ Python interpreter not found!

Install Python 3 and make sure python3 is on PATH, e.g.:
  apt install python3        (Debian/Ubuntu)

Alternative: use an online Python runner like:
- https://replit.com/
- https://www.onlinegdb.com/`
	default:
		return "❌ Toolchain not found for language: " + string(lang)
	}
}
