package agent

import (
	"context"
	"strings"
	"sync"

	"github.com/Malowking/selera/core/agent_tools"
	"github.com/Malowking/selera/core/agent_tools/food_knowledge"
	"github.com/Malowking/selera/core/agent_tools/restaurant_finder"
	"github.com/Malowking/selera/core/embedding"
	"github.com/Malowking/selera/core/errors"
	"github.com/Malowking/selera/core/knowledge"
	"github.com/Malowking/selera/core/vector_store"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino-ext/components/model/qwen"
	einoModel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/gogf/gf/v2/os/gctx"
)

// 马来西亚美食专家的角色设定
const systemPrompt = `You are a Malaysian food expert assistant. You help users discover Malaysian dishes, understand their ingredients and dietary properties, explore the different cuisine traditions (Malay, Chinese Malaysian, Indian Malaysian, Nyonya, Mamak), and find restaurants.

Rules:
1. Use the knowledge base tools to answer questions about specific dishes, ingredients, or dietary information. Do not invent dish facts when a tool can answer.
2. Use find_restaurants when the user asks where to eat.
3. A "not_found" tool result means the knowledge base has no matching record, tell the user that plainly. An "error" result means the system is temporarily unavailable, suggest trying again.
4. Answer in the user's language. Be warm and concise.`

// AgentService 美食问答Agent服务
type AgentService struct {
	chatModel einoModel.ToolCallingChatModel
	executor  *agent_tools.ToolExecutor
	retriever *knowledge.Retriever
}

var (
	agentOnce    sync.Once
	agentService *AgentService
	agentInitErr error
)

// GetAgentService 获取Agent服务单例
func GetAgentService() (*AgentService, error) {
	agentOnce.Do(func() {
		ctx := gctx.New()
		agentService, agentInitErr = NewAgentService(ctx)
	})
	return agentService, agentInitErr
}

// NewAgentService 装配Agent：聊天模型 + 检索器 + 工具集
func NewAgentService(ctx context.Context) (*AgentService, error) {
	chatModel, err := newChatModel(ctx)
	if err != nil {
		return nil, err
	}

	store, err := vector_store.GetDishStore()
	if err != nil {
		return nil, err
	}

	embedder, err := embedding.GetEmbedder(ctx)
	if err != nil {
		return nil, err
	}

	retriever := knowledge.NewRetriever(embedder, store)

	executor := agent_tools.NewToolExecutor(food_knowledge.Tools(retriever)...)
	if tavilyClient := restaurant_finder.NewClientFromConfig(ctx); tavilyClient != nil {
		for _, tool := range restaurant_finder.Tools(tavilyClient) {
			executor.Register(tool)
		}
	}

	return &AgentService{
		chatModel: chatModel,
		executor:  executor,
		retriever: retriever,
	}, nil
}

// newChatModel 按配置创建eino聊天模型，chat.provider 支持 openai / qwen
func newChatModel(ctx context.Context) (einoModel.ToolCallingChatModel, error) {
	provider := g.Cfg().MustGet(ctx, "chat.provider", "openai").String()
	apiKey := g.Cfg().MustGet(ctx, "chat.apiKey", "").String()
	baseURL := g.Cfg().MustGet(ctx, "chat.baseURL", "").String()
	modelName := g.Cfg().MustGet(ctx, "chat.model", "").String()

	if apiKey == "" || modelName == "" {
		return nil, errors.New(errors.ErrModelNotConfigured, "chat.apiKey and chat.model are required but not found in config file")
	}

	switch provider {
	case "openai":
		cm, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   modelName,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrModelNotConfigured, err, "failed to create openai chat model")
		}
		return cm, nil
	case "qwen":
		cm, err := qwen.NewChatModel(ctx, &qwen.ChatModelConfig{
			APIKey:  apiKey,
			BaseURL: baseURL,
			Model:   modelName,
		})
		if err != nil {
			return nil, errors.Wrap(errors.ErrModelNotConfigured, err, "failed to create qwen chat model")
		}
		return cm, nil
	default:
		return nil, errors.Newf(errors.ErrModelNotConfigured, "unsupported chat provider: %s. Supported: openai, qwen", provider)
	}
}

// ChatResult 一次问答的结果
type ChatResult struct {
	Answer    string   `json:"answer"`
	ToolsUsed []string `json:"tools_used,omitempty"`
	Rounds    int      `json:"rounds"`
}

// Chat 执行一次美食问答
func (s *AgentService) Chat(ctx context.Context, question string) (*ChatResult, error) {
	if strings.TrimSpace(question) == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "question must not be empty")
	}

	messages := []*schema.Message{
		{Role: schema.System, Content: systemPrompt},
		{Role: schema.User, Content: question},
	}

	result, err := s.executor.ExecuteWithLLM(ctx, s.chatModel, messages)
	if err != nil {
		return nil, err
	}

	return &ChatResult{
		Answer:    result.FinalAnswer,
		ToolsUsed: result.ToolsUsed,
		Rounds:    result.Rounds,
	}, nil
}

// Retriever 暴露底层检索器，供直接检索接口复用同一套长连接
func (s *AgentService) Retriever() *knowledge.Retriever {
	return s.retriever
}
