package selera

import (
	"context"

	v1 "github.com/Malowking/selera/api/selera/v1"
	"github.com/Malowking/selera/internal/logic/knowledge"
	"github.com/gogf/gf/v2/frame/g"
)

func (c *ControllerV1) KnowledgeSeed(ctx context.Context, req *v1.KnowledgeSeedReq) (res *v1.KnowledgeSeedRes, err error) {
	g.Log().Infof(ctx, "KnowledgeSeed request received - Force: %v", req.Force)
	return knowledge.Seed(ctx, req)
}

func (c *ControllerV1) KnowledgeReseed(ctx context.Context, req *v1.KnowledgeReseedReq) (res *v1.KnowledgeReseedRes, err error) {
	g.Log().Info(ctx, "KnowledgeReseed request received")
	return knowledge.Reseed(ctx, req)
}
