package selera

import (
	"context"

	v1 "github.com/Malowking/selera/api/selera/v1"
	"github.com/Malowking/selera/core/agent"
	"github.com/gogf/gf/v2/frame/g"
)

func (c *ControllerV1) Chat(ctx context.Context, req *v1.ChatReq) (res *v1.ChatRes, err error) {
	g.Log().Infof(ctx, "Chat request received - Question: %s", req.Question)

	svc, err := agent.GetAgentService()
	if err != nil {
		return nil, err
	}

	result, err := svc.Chat(ctx, req.Question)
	if err != nil {
		return nil, err
	}

	return &v1.ChatRes{
		Answer:    result.Answer,
		ToolsUsed: result.ToolsUsed,
		Rounds:    result.Rounds,
	}, nil
}
