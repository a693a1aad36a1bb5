package knowledge

import (
	"context"
	"strings"

	"github.com/Malowking/selera/core/errors"
	"github.com/gogf/gf/v2/frame/g"
)

const (
	// DefaultSearchLimit 未指定limit时的默认返回数量
	DefaultSearchLimit = 5
	// DefaultBrowseLimit 菜系浏览的默认返回数量
	DefaultBrowseLimit = 10
	// MaxSearchLimit limit上限，超出时收敛而不是报错，用于约束结果集开销
	MaxSearchLimit = 50
	// candidateMultiplier 候选池相对limit的过采样倍数。
	// 近似最近邻搜索叠加服务端过滤时，候选池太紧会导致少返回。
	candidateMultiplier = 10
)

// Embedder 文本向量化服务。接口在本包声明以避免循环依赖，
// 实现见 core/embedding。
type Embedder interface {
	EmbedStrings(ctx context.Context, texts []string, dim int) ([][]float32, error)
}

// Store 检索层依赖的向量存储子集。实现见 core/vector_store。
// Search 返回按相似度降序排列的结果，排序权威在存储层。
type Store interface {
	Search(ctx context.Context, vector []float32, candidatePool int, limit int, filter *SearchFilter) ([]ScoredDish, error)
}

// Retriever 知识检索层：把自然语言查询加结构化过滤条件翻译成带排序的菜品序列。
// 依赖在构造时注入，进程内共享复用，连接池由底层客户端负责。
type Retriever struct {
	embedder Embedder
	store    Store
}

// NewRetriever 创建检索层实例
func NewRetriever(embedder Embedder, store Store) *Retriever {
	return &Retriever{
		embedder: embedder,
		store:    store,
	}
}

// Search 语义检索。
// 空查询在调用Embedding服务之前拒绝；limit缺省为5，上限收敛到50。
// 基础设施故障（embedding或存储）返回 ErrRetrievalUnavailable / ErrIndexNotReady，
// 绝不吞成空结果——空结果只代表"过滤后无匹配"这一合法状态。
func (r *Retriever) Search(ctx context.Context, query string, limit int, filter *SearchFilter) ([]ScoredDish, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "query must not be empty")
	}

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	if limit > MaxSearchLimit {
		g.Log().Infof(ctx, "search limit %d exceeds ceiling, clamped to %d", limit, MaxSearchLimit)
		limit = MaxSearchLimit
	}

	vectors, err := r.embedder.EmbedStrings(ctx, []string{query}, EmbeddingDim)
	if err != nil {
		g.Log().Errorf(ctx, "query embedding failed: %v", err)
		return nil, errors.Wrapf(errors.ErrRetrievalUnavailable, err, "embedding service unavailable")
	}
	if len(vectors) != 1 {
		return nil, errors.Newf(errors.ErrRetrievalUnavailable, "invalid embedding result length, got=%d, expected=1", len(vectors))
	}

	results, err := r.store.Search(ctx, vectors[0], limit*candidateMultiplier, limit, filter)
	if err != nil {
		// 索引未就绪单独透传，调用方可以提示"稍后重试"
		if errors.IsCode(err, errors.ErrIndexNotReady) {
			return nil, err
		}
		g.Log().Errorf(ctx, "vector search failed: %v", err)
		return nil, errors.Wrapf(errors.ErrRetrievalUnavailable, err, "vector store unavailable")
	}

	// 存储层已按得分降序返回，这里只保序透传，不做二次排序
	return results, nil
}

// LookupByName 按菜名查找。
// 实现为"对菜名做语义检索取最佳匹配"，是近似查找而非精确键查找：
// 字面相近但语义不同的记录可能被返回。未命中返回 (nil, nil)。
func (r *Retriever) LookupByName(ctx context.Context, name string) (*ScoredDish, error) {
	results, err := r.Search(ctx, name, 1, nil)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// BrowseByCuisine 按菜系浏览。
// 用菜系名本身作为语义查询并叠加精确过滤：过滤是精确的，排序是近似的，
// 因此这是近似浏览而非穷举列表。穷举路径见 DishStore.ListByCuisine。
func (r *Retriever) BrowseByCuisine(ctx context.Context, cuisine string, limit int) ([]ScoredDish, error) {
	if strings.TrimSpace(cuisine) == "" {
		return nil, errors.New(errors.ErrInvalidParameter, "cuisine_type must not be empty")
	}
	if limit <= 0 {
		limit = DefaultBrowseLimit
	}
	return r.Search(ctx, cuisine, limit, FilterCuisine(cuisine))
}
