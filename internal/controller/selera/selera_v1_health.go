package selera

import (
	"context"

	v1 "github.com/Malowking/selera/api/selera/v1"
	"github.com/Malowking/selera/core/vector_store"
	"github.com/gogf/gf/v2/frame/g"
)

func (c *ControllerV1) Health(ctx context.Context, req *v1.HealthReq) (res *v1.HealthRes, err error) {
	res = &v1.HealthRes{Status: "ok"}

	store, err := vector_store.GetDishStore()
	if err != nil {
		g.Log().Warningf(ctx, "Health check: vector store unavailable: %v", err)
		res.Status = "degraded"
		res.VectorStore = "unavailable"
		return res, nil
	}

	res.VectorStore = "connected"
	exists, err := store.CollectionExists(ctx)
	if err != nil {
		g.Log().Warningf(ctx, "Health check: collection check failed: %v", err)
		res.Status = "degraded"
		return res, nil
	}
	res.Corpus = exists
	return res, nil
}
