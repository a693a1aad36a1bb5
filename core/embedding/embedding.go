package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/Malowking/selera/core/errors"
	"github.com/gogf/gf/v2/frame/g"
)

// Embedder 文本向量化接口，入库和查询共用同一实现
type Embedder interface {
	EmbedStrings(ctx context.Context, texts []string, dim int) ([][]float32, error)
}

// Client OpenAI兼容的embedding客户端。
// 不走SDK：直接HTTP请求以便控制dimensions参数和超时配置。
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// embeddingRequest OpenAI embedding API请求结构
type embeddingRequest struct {
	Input      []string `json:"input"`
	Model      string   `json:"model"`
	Dimensions *int     `json:"dimensions,omitempty"`
}

// embeddingResponse OpenAI embedding API响应结构
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
		Index     int       `json:"index"`
		Object    string    `json:"object"`
	} `json:"data"`
	Model  string `json:"model"`
	Object string `json:"object"`
	Usage  struct {
		PromptTokens int `json:"prompt_tokens"`
		TotalTokens  int `json:"total_tokens"`
	} `json:"usage"`
}

// errorResponse API错误响应
type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code,omitempty"`
	} `json:"error"`
}

var (
	once       sync.Once
	defaultCli *Client
	initError  error
)

// GetEmbedder 返回进程级单例客户端，配置取自 embedding.* 配置项
func GetEmbedder(ctx context.Context) (*Client, error) {
	once.Do(func() {
		apiKey := g.Cfg().MustGet(ctx, "embedding.apiKey", "").String()
		baseURL := g.Cfg().MustGet(ctx, "embedding.baseURL", "").String()
		model := g.Cfg().MustGet(ctx, "embedding.model", "").String()
		defaultCli, initError = NewClient(apiKey, baseURL, model)
	})
	return defaultCli, initError
}

// NewClient 创建embedding客户端
func NewClient(apiKey, baseURL, model string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "embedding apiKey is required")
	}
	if baseURL == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "embedding baseURL is required")
	}
	if model == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "embedding model is required")
	}

	// 自定义HTTP客户端，设置合理的超时时间
	httpClient := &http.Client{
		Timeout: 5 * time.Minute, // 总体超时5分钟
		Transport: &http.Transport{
			Dial: (&net.Dialer{
				Timeout:   30 * time.Second, // 连接超时
				KeepAlive: 30 * time.Second,
			}).Dial,
			TLSHandshakeTimeout:   30 * time.Second,
			ResponseHeaderTimeout: 2 * time.Minute,
			ExpectContinueTimeout: 1 * time.Second,
			IdleConnTimeout:       90 * time.Second,
			MaxIdleConns:          100,
			MaxIdleConnsPerHost:   10,
		},
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
	}, nil
}

// EmbedStrings 批量向量化。结果按输入顺序返回，维度由dim参数指定。
func (e *Client) EmbedStrings(ctx context.Context, texts []string, dim int) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	req := embeddingRequest{
		Input:      texts,
		Model:      e.model,
		Dimensions: &dim,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "failed to marshal request: %v", err)
	}

	url := e.baseURL + "/embeddings"
	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "failed to create request: %v", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.httpClient.Do(httpReq)
	if err != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil {
			return nil, errors.Newf(errors.ErrEmbeddingFailed, "HTTP %d: failed to decode error response: %v", resp.StatusCode, err)
		}
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "API error (HTTP %d): %s", resp.StatusCode, errResp.Error.Message)
	}

	var embResp embeddingResponse
	if err := json.NewDecoder(resp.Body).Decode(&embResp); err != nil {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "failed to decode response: %v", err)
	}

	if len(embResp.Data) != len(texts) {
		return nil, errors.Newf(errors.ErrEmbeddingFailed, "response data length (%d) doesn't match input length (%d)", len(embResp.Data), len(texts))
	}

	// 按index字段归位，并将float64向量转换为float32
	result := make([][]float32, len(texts))
	for _, data := range embResp.Data {
		if data.Index >= len(result) {
			return nil, errors.Newf(errors.ErrEmbeddingFailed, "invalid embedding index: %d", data.Index)
		}
		vec := make([]float32, len(data.Embedding))
		for i, v := range data.Embedding {
			vec[i] = float32(v)
		}
		result[data.Index] = vec
	}

	return result, nil
}
