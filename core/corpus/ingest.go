package corpus

import (
	"context"

	"github.com/Malowking/selera/core/embedding"
	"github.com/Malowking/selera/core/errors"
	"github.com/Malowking/selera/core/knowledge"
	"github.com/Malowking/selera/core/vector_store"
	"github.com/gogf/gf/v2/frame/g"
)

// 单次embedding请求的批大小，受多数embedding服务的请求条数上限约束
const embedBatchSize = 10

// SeedResult 播种结果
type SeedResult struct {
	DishCount int      `json:"dish_count"`
	DishIDs   []string `json:"dish_ids"`
	Skipped   bool     `json:"skipped"` // 语料已存在且未要求重建
}

// Ingest 把菜品语料投影、向量化并写入向量库。
// 投影文本而非原始JSON作为embedding输入，保证检索语义与记录字段一致。
func Ingest(ctx context.Context, store vector_store.DishStore, embedder embedding.Embedder, dishes []*knowledge.Dish) ([]string, error) {
	if len(dishes) == 0 {
		return []string{}, nil
	}

	texts := make([]string, len(dishes))
	for i, dish := range dishes {
		texts[i] = knowledge.ProjectionText(dish)
	}

	vectors := make([][]float32, 0, len(dishes))
	for start := 0; start < len(texts); start += embedBatchSize {
		end := start + embedBatchSize
		if end > len(texts) {
			end = len(texts)
		}

		batch, err := embedder.EmbedStrings(ctx, texts[start:end], knowledge.EmbeddingDim)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrIngestFailed, err, "failed to embed dish batch [%d:%d]", start, end)
		}
		if len(batch) != end-start {
			return nil, errors.Newf(errors.ErrIngestFailed, "embedding service returned %d vectors for %d texts", len(batch), end-start)
		}
		vectors = append(vectors, batch...)
	}

	ids, err := store.InsertDishes(ctx, dishes, vectors)
	if err != nil {
		return nil, errors.Wrap(errors.ErrIngestFailed, err, "failed to store dish vectors")
	}

	g.Log().Infof(ctx, "Ingested %d dishes into the knowledge base", len(ids))
	return ids, nil
}

// Seed 首次播种：集合已存在且非强制时跳过，避免重复写入
func Seed(ctx context.Context, store vector_store.DishStore, embedder embedding.Embedder, force bool) (*SeedResult, error) {
	exists, err := store.CollectionExists(ctx)
	if err != nil {
		return nil, err
	}

	if exists && !force {
		g.Log().Infof(ctx, "Knowledge base already exists, skipping seed (use reseed to rebuild)")
		return &SeedResult{Skipped: true}, nil
	}

	if exists && force {
		return Reseed(ctx, store, embedder)
	}

	if err := store.EnsureCollection(ctx); err != nil {
		return nil, err
	}

	dishes, err := LoadDishes(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := Ingest(ctx, store, embedder, dishes)
	if err != nil {
		return nil, err
	}

	return &SeedResult{DishCount: len(ids), DishIDs: ids}, nil
}

// Reseed 清空并重建语料，用于语料文件更新后的全量刷新
func Reseed(ctx context.Context, store vector_store.DishStore, embedder embedding.Embedder) (*SeedResult, error) {
	if err := store.DeleteAll(ctx); err != nil {
		return nil, err
	}

	dishes, err := LoadDishes(ctx)
	if err != nil {
		return nil, err
	}

	ids, err := Ingest(ctx, store, embedder, dishes)
	if err != nil {
		return nil, err
	}

	g.Log().Infof(ctx, "Knowledge base rebuilt with %d dishes", len(ids))
	return &SeedResult{DishCount: len(ids), DishIDs: ids}, nil
}
