package agent_tools

import (
	"context"
	"fmt"
	"time"

	"github.com/Malowking/selera/core/errors"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/gogf/gf/v2/frame/g"
)

// Tool 本地工具的统一接口。Execute 的 argsJSON 是LLM给出的原始参数串，
// 返回值是序列化好的JSON结果，直接作为 tool 消息回灌给LLM。
type Tool interface {
	Info() *schema.ToolInfo
	Execute(ctx context.Context, argsJSON string) (string, error)
}

// ToolExecutor 统一的工具执行器
type ToolExecutor struct {
	tools map[string]Tool
	order []string
}

// NewToolExecutor 创建工具执行器
func NewToolExecutor(tools ...Tool) *ToolExecutor {
	e := &ToolExecutor{tools: make(map[string]Tool)}
	for _, t := range tools {
		e.Register(t)
	}
	return e
}

// Register 注册工具，同名工具后注册者覆盖前者
func (e *ToolExecutor) Register(t Tool) {
	name := t.Info().Name
	if _, exists := e.tools[name]; !exists {
		e.order = append(e.order, name)
	}
	e.tools[name] = t
}

// ToolInfos 返回注册顺序的工具定义列表，交给LLM做工具选择
func (e *ToolExecutor) ToolInfos() []*schema.ToolInfo {
	infos := make([]*schema.ToolInfo, 0, len(e.order))
	for _, name := range e.order {
		infos = append(infos, e.tools[name].Info())
	}
	return infos
}

// ExecuteResult 工具调用循环的最终结果
type ExecuteResult struct {
	FinalAnswer string   // LLM 的最终回答
	ToolsUsed   []string // 实际被调用过的工具名
	Rounds      int      // 实际执行的轮数
}

// 最多允许的 LLM 工具选择轮数
const maxToolRounds = 5

// ExecuteWithLLM 多轮工具调用循环。
// LLM不再发起工具调用或达到轮数上限时结束；上限轮强制不带工具生成最终答案。
func (e *ToolExecutor) ExecuteWithLLM(ctx context.Context, cm model.ToolCallingChatModel, messages []*schema.Message) (*ExecuteResult, error) {
	result := &ExecuteResult{}

	toolInfos := e.ToolInfos()
	toolModel := cm
	if len(toolInfos) > 0 {
		var err error
		toolModel, err = cm.WithTools(toolInfos)
		if err != nil {
			return nil, errors.Wrap(errors.ErrLLMCallFailed, err, "failed to bind tools to chat model")
		}
	}

	for iteration := 0; iteration < maxToolRounds; iteration++ {
		result.Rounds = iteration + 1
		g.Log().Infof(ctx, "[tool loop] round %d/%d", iteration+1, maxToolRounds)

		response, err := toolModel.Generate(ctx, messages)
		if err != nil {
			return nil, errors.Wrap(errors.ErrLLMCallFailed, err, "LLM generate failed")
		}

		messages = append(messages, response)

		// 没有工具调用即为最终回答
		if len(response.ToolCalls) == 0 {
			result.FinalAnswer = response.Content
			return result, nil
		}

		g.Log().Infof(ctx, "Executing %d tool calls", len(response.ToolCalls))

		for _, toolCall := range response.ToolCalls {
			toolName := toolCall.Function.Name

			startTime := time.Now()
			content, err := e.dispatch(ctx, toolName, toolCall.Function.Arguments)
			duration := time.Since(startTime).Milliseconds()

			if err != nil {
				// 工具层错误回灌给LLM，让它决定重试或改口，而不是中断整轮对话
				content = fmt.Sprintf(`{"status":"error","error":{"kind":"tool_failure","message":%q}}`, err.Error())
				g.Log().Errorf(ctx, "[tool %s] failed after %dms: %v", toolName, duration, err)
			} else {
				g.Log().Infof(ctx, "[tool %s] completed in %dms", toolName, duration)
			}

			result.ToolsUsed = append(result.ToolsUsed, toolName)
			messages = append(messages, &schema.Message{
				Role:       schema.Tool,
				Content:    content,
				ToolCallID: toolCall.ID,
			})
		}

		// 最后一轮不再提供工具，强制LLM基于已有结果作答
		if iteration == maxToolRounds-1 {
			g.Log().Warning(ctx, "Max tool rounds reached, forcing final answer")
			finalResponse, err := cm.Generate(ctx, messages)
			if err != nil {
				return nil, errors.Wrap(errors.ErrLLMCallFailed, err, "failed to get final answer")
			}
			result.FinalAnswer = finalResponse.Content
			return result, nil
		}
	}

	return result, nil
}

// dispatch 按名称分发单个工具调用
func (e *ToolExecutor) dispatch(ctx context.Context, toolName string, argsJSON string) (string, error) {
	tool, ok := e.tools[toolName]
	if !ok {
		return "", errors.Newf(errors.ErrToolExecution, "unknown tool: %s", toolName)
	}
	return tool.Execute(ctx, argsJSON)
}
