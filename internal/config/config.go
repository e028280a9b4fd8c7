package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// GlobalConfig 全局配置单例
var GlobalConfig Config

// Config 总配置结构
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Redis      RedisConfig      `yaml:"redis"`
	Translator TranslatorConfig `yaml:"translator"`
	Toolchains ToolchainConfig  `yaml:"toolchains"`
	Limits     LimitConfig      `yaml:"limits"`
}

// ServerConfig 服务端配置
type ServerConfig struct {
	Port      int `yaml:"port"`
	Workers   int `yaml:"workers"`
	QueueSize int `yaml:"queue_size"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// TranslatorConfig 翻译服务配置
// API key 不放在配置文件里，通过 TOGETHER_API_KEY 环境变量注入。
type TranslatorConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
}

// ToolchainConfig 编译器/解释器路径配置
type ToolchainConfig struct {
	CPP    string `yaml:"cpp"`    // g++ path
	Python string `yaml:"python"` // python interpreter path
	Javac  string `yaml:"javac"`  // javac path
	Java   string `yaml:"java"`   // java runtime path
	Node   string `yaml:"node"`   // node path
}

// LimitConfig 执行限制配置
type LimitConfig struct {
	CompileTimeoutSeconds int   `yaml:"compile_timeout_seconds"`
	RunTimeoutSeconds     int   `yaml:"run_timeout_seconds"`
	MaxOutputSize         int64 `yaml:"max_output_size"` // bytes
}

// LoadConfig 加载配置文件
func LoadConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %v", err)
	}

	if err := yaml.Unmarshal(data, &GlobalConfig); err != nil {
		return fmt.Errorf("failed to parse config file: %v", err)
	}

	ApplyDefaults()

	return nil
}

// ApplyDefaults 填充未设置的配置项
// 配置文件缺失时可单独调用，得到一份可用的默认配置。
func ApplyDefaults() {
	if GlobalConfig.Server.Port == 0 {
		GlobalConfig.Server.Port = 8090
	}
	if GlobalConfig.Server.Workers == 0 {
		GlobalConfig.Server.Workers = 4
	}
	if GlobalConfig.Server.QueueSize == 0 {
		GlobalConfig.Server.QueueSize = 100
	}
	if GlobalConfig.Redis.Addr == "" {
		GlobalConfig.Redis.Addr = "localhost:6379"
	}
	if GlobalConfig.Translator.BaseURL == "" {
		GlobalConfig.Translator.BaseURL = "https://api.together.xyz/v1"
	}
	if GlobalConfig.Translator.Model == "" {
		GlobalConfig.Translator.Model = "mistralai/Mixtral-8x7B-Instruct-v0.1"
	}
	if GlobalConfig.Translator.TimeoutSeconds == 0 {
		GlobalConfig.Translator.TimeoutSeconds = 60
	}
	if GlobalConfig.Translator.MaxTokens == 0 {
		GlobalConfig.Translator.MaxTokens = 3000
	}
	if GlobalConfig.Translator.Temperature == 0 {
		GlobalConfig.Translator.Temperature = 0.1
	}
	if GlobalConfig.Toolchains.CPP == "" {
		GlobalConfig.Toolchains.CPP = "g++"
	}
	if GlobalConfig.Toolchains.Python == "" {
		GlobalConfig.Toolchains.Python = "python3"
	}
	if GlobalConfig.Toolchains.Javac == "" {
		GlobalConfig.Toolchains.Javac = "javac"
	}
	if GlobalConfig.Toolchains.Java == "" {
		GlobalConfig.Toolchains.Java = "java"
	}
	if GlobalConfig.Toolchains.Node == "" {
		GlobalConfig.Toolchains.Node = "node"
	}
	if GlobalConfig.Limits.CompileTimeoutSeconds == 0 {
		GlobalConfig.Limits.CompileTimeoutSeconds = 15
	}
	if GlobalConfig.Limits.RunTimeoutSeconds == 0 {
		GlobalConfig.Limits.RunTimeoutSeconds = 10
	}
	if GlobalConfig.Limits.MaxOutputSize == 0 {
		GlobalConfig.Limits.MaxOutputSize = 1 * 1024 * 1024 // 1MB
	}
}
