package knowledge

import (
	"context"

	v1 "github.com/Malowking/selera/api/selera/v1"
	"github.com/Malowking/selera/core/corpus"
	"github.com/Malowking/selera/core/embedding"
	"github.com/Malowking/selera/core/vector_store"
	"github.com/gogf/gf/v2/frame/g"
)

// Seed 首次播种知识库
func Seed(ctx context.Context, req *v1.KnowledgeSeedReq) (*v1.KnowledgeSeedRes, error) {
	store, err := vector_store.GetDishStore()
	if err != nil {
		return nil, err
	}
	embedder, err := embedding.GetEmbedder(ctx)
	if err != nil {
		return nil, err
	}

	result, err := corpus.Seed(ctx, store, embedder, req.Force)
	if err != nil {
		return nil, err
	}

	return &v1.KnowledgeSeedRes{
		DishCount: result.DishCount,
		Skipped:   result.Skipped,
	}, nil
}

// Reseed 清空并重建知识库
func Reseed(ctx context.Context, _ *v1.KnowledgeReseedReq) (*v1.KnowledgeReseedRes, error) {
	store, err := vector_store.GetDishStore()
	if err != nil {
		return nil, err
	}
	embedder, err := embedding.GetEmbedder(ctx)
	if err != nil {
		return nil, err
	}

	g.Log().Info(ctx, "Rebuilding dish knowledge base...")

	result, err := corpus.Reseed(ctx, store, embedder)
	if err != nil {
		return nil, err
	}

	return &v1.KnowledgeReseedRes{DishCount: result.DishCount}, nil
}
