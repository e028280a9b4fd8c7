package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/CodeBridge/Converter/internal/config"
	"github.com/CodeBridge/Converter/internal/model"
)

// Translator 代码翻译协作方
// 核心只依赖这个接口；真实实现走远端文本生成服务，测试用桩替身。
type Translator interface {
	Translate(ctx context.Context, code string, from, to model.Language) (string, error)
}

const systemPrompt = `You are an expert programmer who converts code between different programming languages.
Follow these rules:
1. Convert the code to maintain EXACT same functionality
2. Use proper syntax and conventions for the target language
3. Add necessary imports/headers
4. Keep the same logic flow and structure
5. Return ONLY the converted code, no explanations or markdown
6. Do not add any extra text before or after the code`

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
	TopP        float64       `json:"top_p"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Client 基于 chat-completions 协议的翻译客户端
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	temp       float64
	httpClient *http.Client
}

// NewClient 创建翻译客户端
// API key 由调用方注入（来自环境变量），不做任何包级缓存。
func NewClient(apiKey string) *Client {
	cfg := config.GlobalConfig.Translator
	return &Client{
		apiKey:    apiKey,
		baseURL:   cfg.BaseURL,
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		temp:      cfg.Temperature,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// Translate 请求远端服务把代码从 from 翻译到 to，返回净化后的代码
func (c *Client) Translate(ctx context.Context, code string, from, to model.Language) (string, error) {
	prompt := fmt.Sprintf(`Convert this %s code to %s:

%s

Convert to %s with:
- Same functionality and logic
- Proper %s syntax
- Appropriate imports/headers
- Best practices for %s

Return only the %s code:`,
		from.Display(), to.Display(), code,
		to.Display(), to.Display(), to.Display(), to.Display())

	payload := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temp,
		TopP:        0.9,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translation request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("translation API error: %d - %s", resp.StatusCode, errBody)
	}

	var apiResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("failed to decode response: %v", err)
	}
	if len(apiResp.Choices) == 0 {
		return "", fmt.Errorf("no response generated from translation API")
	}

	return Sanitize(apiResp.Choices[0].Message.Content), nil
}
