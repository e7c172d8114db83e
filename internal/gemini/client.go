package gemini

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"google.golang.org/genai"

	"glassquiz/internal/quiz"
)

const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultTimeout = 15 * time.Second
)

// Fallback texts shown instead of an explanation.
const (
	MissingKeyText = "请配置 API Key 以获取 AI 解析。"
	EmptyText      = "暂无解析"
	FailureText    = "AI 解析获取失败，请稍后重试。"
)

// Client asks Gemini for a short explanation of a question. It implements
// quiz.Explainer and never returns an error: failures yield a fallback text.
type Client struct {
	apiKey  string
	model   string
	baseURL string
	timeout time.Duration
	http    *http.Client
	logger  *log.Logger
}

type Options struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint. Empty uses the SDK default.
	BaseURL string
	Timeout time.Duration
	HTTP    *http.Client
	Logger  *log.Logger
}

func NewClient(opts Options) *Client {
	client := &Client{
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   strings.TrimSpace(opts.Model),
		baseURL: strings.TrimSpace(opts.BaseURL),
		timeout: opts.Timeout,
		http:    opts.HTTP,
		logger:  opts.Logger,
	}
	if client.model == "" {
		client.model = DefaultModel
	}
	if client.timeout <= 0 {
		client.timeout = DefaultTimeout
	}
	if client.logger == nil {
		client.logger = log.Default()
	}
	return client
}

func (c *Client) Configured() bool {
	return c.apiKey != ""
}

func (c *Client) Explain(ctx context.Context, request quiz.ExplainRequest) string {
	if !c.Configured() {
		return MissingKeyText
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	text, err := c.generate(ctx, BuildPrompt(request))
	if err != nil {
		c.logger.Printf("gemini explain failed: %v", err)
		return FailureText
	}
	if strings.TrimSpace(text) == "" {
		return EmptyText
	}
	return strings.TrimSpace(text)
}

// BuildPrompt renders the explanation request in Chinese, asking for at
// most 100 characters.
func BuildPrompt(request quiz.ExplainRequest) string {
	var b strings.Builder
	b.WriteString("我正在做一个练习题。请简要解释为什么这是正确答案。\n\n")
	fmt.Fprintf(&b, "问题: %q\n", request.QuestionText)
	if len(request.Options) > 0 {
		fmt.Fprintf(&b, "选项: %s\n", strings.Join(request.Options, ", "))
	}
	fmt.Fprintf(&b, "正确答案: %q\n\n", request.CorrectAnswer)
	b.WriteString("请用通俗易懂的中文解释，字数控制在100字以内。")
	return b.String()
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	config := &genai.ClientConfig{
		APIKey:     c.apiKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: c.http,
	}
	if c.baseURL != "" {
		config.HTTPOptions = genai.HTTPOptions{BaseURL: c.baseURL}
	}

	client, err := genai.NewClient(ctx, config)
	if err != nil {
		return "", fmt.Errorf("create genai client: %w", err)
	}

	resp, err := client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	return resp.Text(), nil
}
