package vector_store

import (
	"context"

	"github.com/Malowking/selera/core/knowledge"
)

// VectorStoreType 向量数据库类型
type VectorStoreType string

const (
	VectorStoreTypeMilvus     VectorStoreType = "milvus"
	VectorStoreTypePostgreSQL VectorStoreType = "pgvector"
)

// VectorStoreConfig 向量数据库配置
type VectorStoreConfig struct {
	Type       VectorStoreType // 向量数据库类型
	Client     interface{}     // 客户端实例
	Database   string          // 数据库名称
	Collection string          // 集合/表名称
	MetricType string          // 距离度量类型（默认 COSINE）
}

// DishStore 菜品向量存储接口。
// 语料是唯一的持久化状态：只有批量写入和整体清空，常规运行中没有单条删除。
type DishStore interface {
	// EnsureCollection 创建集合（如果不存在），并校验向量维度配置
	EnsureCollection(ctx context.Context) error

	// CollectionExists 检查集合是否存在
	CollectionExists(ctx context.Context) (bool, error)

	// InsertDishes 批量插入菜品及其向量，返回生成的记录ID
	InsertDishes(ctx context.Context, dishes []*knowledge.Dish, vectors [][]float32) ([]string, error)

	// DeleteAll 清空语料，仅用于重新播种
	DeleteAll(ctx context.Context) error

	// Search 过滤式相似度搜索。
	// candidatePool 为近似搜索的候选池大小，结果截断到limit并保持降序。
	// 索引缺失/构建中返回 ErrIndexNotReady，其余故障返回 ErrVectorSearch。
	Search(ctx context.Context, vector []float32, candidatePool int, limit int, filter *knowledge.SearchFilter) ([]knowledge.ScoredDish, error)

	// ListByCuisine 纯过滤的菜系列表（不做向量排序），是浏览操作的穷举路径
	ListByCuisine(ctx context.Context, cuisine string, limit int) ([]*knowledge.Dish, error)

	// ExactByName 归一化菜名精确查找，未命中返回 (nil, nil)
	ExactByName(ctx context.Context, name string) (*knowledge.Dish, error)

	// Close 释放底层连接
	Close() error
}
