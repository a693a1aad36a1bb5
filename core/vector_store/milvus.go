package vector_store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Malowking/selera/core/common"
	"github.com/Malowking/selera/core/errors"
	"github.com/Malowking/selera/core/knowledge"
	milvusModel "github.com/Malowking/selera/internal/model/milvus"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"
	"github.com/milvus-io/milvus/client/v2/column"
	"github.com/milvus-io/milvus/client/v2/entity"
	"github.com/milvus-io/milvus/client/v2/index"
	"github.com/milvus-io/milvus/client/v2/milvusclient"
)

// MilvusStore Milvus向量数据库实现
type MilvusStore struct {
	client     *milvusclient.Client
	database   string
	collection string
}

// InitializeMilvusStore 从配置初始化Milvus存储
func InitializeMilvusStore(ctx context.Context) (DishStore, error) {
	address := g.Cfg().MustGet(ctx, "milvus.address", "").String()
	database := g.Cfg().MustGet(ctx, "milvus.database", "default").String()
	collection := g.Cfg().MustGet(ctx, "milvus.collection", "malaysian_dishes").String()

	if address == "" {
		return nil, fmt.Errorf("milvus.address is required but not found in config file. Please check your config.yaml file and ensure milvus.address is properly set")
	}

	g.Log().Infof(ctx, "Connecting to Milvus at: %s, database: %s", address, database)

	client, err := milvusclient.New(ctx, &milvusclient.ClientConfig{
		Address: address,
		DBName:  database,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create milvus client (address: %s, database: %s): %w", address, database, err)
	}

	config := &VectorStoreConfig{
		Type:       VectorStoreTypeMilvus,
		Client:     client,
		Database:   database,
		Collection: collection,
	}

	return NewMilvusStore(config)
}

// NewMilvusStore 创建Milvus向量存储实例
func NewMilvusStore(config *VectorStoreConfig) (DishStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	client, ok := config.Client.(*milvusclient.Client)
	if !ok {
		return nil, fmt.Errorf("client must be *milvusclient.Client")
	}

	if config.Collection == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}
	if !common.ValidateCollectionName(config.Collection) {
		return nil, fmt.Errorf("invalid collection name: %s", config.Collection)
	}

	return &MilvusStore{
		client:     client,
		database:   config.Database,
		collection: config.Collection,
	}, nil
}

// EnsureCollection 创建集合（如果不存在）并校验向量维度。
// 维度不匹配是致命配置错误，直接失败而不是逐条报错。
func (m *MilvusStore) EnsureCollection(ctx context.Context) error {
	exists, err := m.CollectionExists(ctx)
	if err != nil {
		return err
	}

	dim := knowledge.EmbeddingDim
	if exists {
		desc, err := m.client.DescribeCollection(ctx, milvusclient.NewDescribeCollectionOption(m.collection))
		if err != nil {
			return errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to describe collection %s", m.collection)
		}
		for _, field := range desc.Schema.Fields {
			if field.Name != "vector" {
				continue
			}
			if d, ok := field.TypeParams["dim"]; ok && d != fmt.Sprintf("%d", dim) {
				return errors.Newf(errors.ErrVectorStoreInit,
					"collection %s has vector dim %s, expected %d; fix the index or re-create the collection", m.collection, d, dim)
			}
		}
		return nil
	}

	schema := &entity.Schema{
		CollectionName: m.collection,
		Description:    "Malaysian dish records with projection embeddings",
		AutoID:         false,
		Fields:         milvusModel.GetDishCollectionFields(fmt.Sprintf("%d", dim)),
	}

	err = m.client.CreateCollection(ctx, milvusclient.NewCreateCollectionOption(m.collection, schema).WithIndexOptions(
		milvusclient.NewCreateIndexOption(m.collection, "vector", index.NewHNSWIndex(entity.COSINE, 64, 128))))
	if err != nil {
		return errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to create Milvus collection %s", m.collection)
	}

	// 载入内存，否则搜索会报 collection not loaded
	_, err = m.client.LoadCollection(ctx, milvusclient.NewLoadCollectionOption(m.collection))
	if err != nil {
		return errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to load Milvus collection %s", m.collection)
	}

	g.Log().Infof(ctx, "Collection '%s' created with dimension %d, index built and loaded", m.collection, dim)
	return nil
}

// CollectionExists 检查集合是否存在
func (m *MilvusStore) CollectionExists(ctx context.Context) (bool, error) {
	has, err := m.client.HasCollection(ctx, milvusclient.NewHasCollectionOption(m.collection))
	if err != nil {
		return false, errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to check if collection exists")
	}
	return has, nil
}

// InsertDishes 批量插入菜品及其向量
func (m *MilvusStore) InsertDishes(ctx context.Context, dishes []*knowledge.Dish, vectors [][]float32) ([]string, error) {
	if len(dishes) != len(vectors) {
		return nil, errors.Newf(errors.ErrVectorInsert, "dishes and vectors length mismatch: %d vs %d", len(dishes), len(vectors))
	}
	if len(dishes) == 0 {
		return []string{}, nil
	}

	ids := make([]string, len(dishes))
	names := make([]string, len(dishes))
	nameNorms := make([]string, len(dishes))
	cuisines := make([]string, len(dishes))
	categories := make([]string, len(dishes))
	halal := make([]int8, len(dishes))
	vegetarian := make([]int8, len(dishes))
	documents := make([][]byte, len(dishes))

	for idx, dish := range dishes {
		if len(vectors[idx]) != knowledge.EmbeddingDim {
			return nil, errors.Newf(errors.ErrVectorInsert, "vector dim mismatch for dish %q: got %d, expected %d",
				dish.Name, len(vectors[idx]), knowledge.EmbeddingDim)
		}
		if dish.ID == "" {
			dish.ID = uuid.New().String()
		}
		ids[idx] = dish.ID
		names[idx] = dish.Name
		nameNorms[idx] = common.NormalizeDishName(dish.Name)
		cuisines[idx] = dish.CuisineType
		categories[idx] = dish.Category
		halal[idx] = dietaryColumn(dish, knowledge.DietaryHalal)
		vegetarian[idx] = dietaryColumn(dish, knowledge.DietaryVegetarian)

		docBytes, err := json.Marshal(dish)
		if err != nil {
			return nil, errors.Newf(errors.ErrVectorInsert, "failed to marshal dish %q: %v", dish.Name, err)
		}
		documents[idx] = docBytes
	}

	columns := []column.Column{
		column.NewColumnVarChar("id", ids),
		column.NewColumnVarChar("name", names),
		column.NewColumnVarChar("name_norm", nameNorms),
		column.NewColumnVarChar("cuisine_type", cuisines),
		column.NewColumnVarChar("category", categories),
		column.NewColumnInt8("halal", halal),
		column.NewColumnInt8("vegetarian", vegetarian),
		column.NewColumnJSONBytes("document", documents),
		column.NewColumnFloatVector("vector", knowledge.EmbeddingDim, vectors),
	}

	result, err := m.client.Insert(ctx, milvusclient.NewColumnBasedInsertOption(m.collection, columns...))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrVectorInsert, err, "failed to insert dishes")
	}

	g.Log().Infof(ctx, "Successfully inserted %d dishes into collection '%s'", result.InsertCount, m.collection)
	return ids, nil
}

// DeleteAll 清空语料。通过删集合重建实现，保证索引配置一致。
// 幂等：集合不存在时直接重建。
func (m *MilvusStore) DeleteAll(ctx context.Context) error {
	exists, err := m.CollectionExists(ctx)
	if err != nil {
		return errors.Wrapf(errors.ErrVectorDelete, err, "failed to check collection before clearing")
	}
	if exists {
		if err := m.client.DropCollection(ctx, milvusclient.NewDropCollectionOption(m.collection)); err != nil {
			return errors.Wrapf(errors.ErrVectorDelete, err, "failed to drop collection %s", m.collection)
		}
		g.Log().Infof(ctx, "Collection '%s' dropped for re-seeding", m.collection)
	}
	return m.EnsureCollection(ctx)
}

// Search 过滤式相似度搜索
func (m *MilvusStore) Search(ctx context.Context, vector []float32, candidatePool int, limit int, filter *knowledge.SearchFilter) ([]knowledge.ScoredDish, error) {
	if candidatePool < limit {
		candidatePool = limit
	}

	searchOpt := milvusclient.NewSearchOption(m.collection, candidatePool, []entity.Vector{entity.FloatVector(vector)}).
		WithANNSField("vector").
		WithOutputFields("id", "document").
		WithConsistencyLevel(entity.ClBounded)

	if expr := BuildMilvusFilterExpr(filter); expr != "" {
		searchOpt = searchOpt.WithFilter(expr)
	}

	results, err := m.client.Search(ctx, searchOpt)
	if err != nil {
		return nil, classifyMilvusError(err)
	}

	if len(results) == 0 {
		return []knowledge.ScoredDish{}, nil
	}

	scored, err := m.decodeSearchResult(results[0].Fields, results[0].Scores)
	if err != nil {
		return nil, err
	}

	// 候选池为过采样结果，这里截断到调用方要求的limit，保持存储层给出的降序
	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// ListByCuisine 纯过滤列表，无向量排序
func (m *MilvusStore) ListByCuisine(ctx context.Context, cuisine string, limit int) ([]*knowledge.Dish, error) {
	expr := fmt.Sprintf(`cuisine_type == "%s"`, common.SanitizeMilvusString(cuisine))

	rs, err := m.client.Query(ctx, milvusclient.NewQueryOption(m.collection).
		WithFilter(expr).
		WithOutputFields("document").
		WithLimit(limit))
	if err != nil {
		return nil, classifyMilvusError(err)
	}

	return decodeDocumentColumn(rs.Fields)
}

// ExactByName 归一化菜名精确查找
func (m *MilvusStore) ExactByName(ctx context.Context, name string) (*knowledge.Dish, error) {
	expr := fmt.Sprintf(`name_norm == "%s"`, common.SanitizeMilvusString(common.NormalizeDishName(name)))

	rs, err := m.client.Query(ctx, milvusclient.NewQueryOption(m.collection).
		WithFilter(expr).
		WithOutputFields("document").
		WithLimit(1))
	if err != nil {
		return nil, classifyMilvusError(err)
	}

	dishes, err := decodeDocumentColumn(rs.Fields)
	if err != nil {
		return nil, err
	}
	if len(dishes) == 0 {
		return nil, nil
	}
	return dishes[0], nil
}

// Close 释放Milvus连接
func (m *MilvusStore) Close() error {
	return m.client.Close(context.Background())
}

// BuildMilvusFilterExpr 把结构化过滤条件编译成Milvus布尔表达式。
// 缺失的字段不产生子句，所有子句按 and 连接。
func BuildMilvusFilterExpr(filter *knowledge.SearchFilter) string {
	if filter.IsEmpty() {
		return ""
	}

	var clauses []string
	if filter.CuisineType != nil {
		clauses = append(clauses, fmt.Sprintf(`cuisine_type == "%s"`, common.SanitizeMilvusString(*filter.CuisineType)))
	}
	if filter.Category != nil {
		clauses = append(clauses, fmt.Sprintf(`category == "%s"`, common.SanitizeMilvusString(*filter.Category)))
	}
	if filter.Halal != nil {
		clauses = append(clauses, fmt.Sprintf(`halal == %d`, milvusModel.DietaryFlag(*filter.Halal, true)))
	}
	if filter.Vegetarian != nil {
		clauses = append(clauses, fmt.Sprintf(`vegetarian == %d`, milvusModel.DietaryFlag(*filter.Vegetarian, true)))
	}
	return strings.Join(clauses, " and ")
}

// decodeSearchResult 把搜索结果列转换为带得分的菜品记录
func (m *MilvusStore) decodeSearchResult(columns []column.Column, scores []float32) ([]knowledge.ScoredDish, error) {
	dishes, err := decodeDocumentColumn(columns)
	if err != nil {
		return nil, err
	}

	scored := make([]knowledge.ScoredDish, len(dishes))
	for i, dish := range dishes {
		scored[i].Dish = dish
		if i < len(scores) {
			scored[i].Score = scores[i]
		}
	}
	return scored, nil
}

// decodeDocumentColumn 从document列解出完整菜品记录
func decodeDocumentColumn(columns []column.Column) ([]*knowledge.Dish, error) {
	var docCol column.Column
	for _, col := range columns {
		if col.Name() == "document" {
			docCol = col
			break
		}
	}
	if docCol == nil {
		return []*knowledge.Dish{}, nil
	}

	dishes := make([]*knowledge.Dish, 0, docCol.Len())
	for i := 0; i < docCol.Len(); i++ {
		val, err := docCol.Get(i)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrVectorSearch, err, "failed to read document column at %d", i)
		}

		var raw []byte
		switch v := val.(type) {
		case string:
			raw = []byte(v)
		case []byte:
			raw = v
		default:
			return nil, errors.Newf(errors.ErrVectorSearch, "unexpected document column type %T", val)
		}

		dish := &knowledge.Dish{}
		if err := json.Unmarshal(raw, dish); err != nil {
			return nil, errors.Wrapf(errors.ErrVectorSearch, err, "failed to unmarshal dish document")
		}
		dishes = append(dishes, dish)
	}
	return dishes, nil
}

func dietaryColumn(dish *knowledge.Dish, key string) int8 {
	v, known := dish.Dietary(key)
	return milvusModel.DietaryFlag(v, known)
}

// classifyMilvusError 区分"索引未就绪"与一般性搜索故障
func classifyMilvusError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "index not found") ||
		strings.Contains(msg, "index not ready") ||
		strings.Contains(msg, "not loaded") ||
		strings.Contains(msg, "collection not found") ||
		strings.Contains(msg, "can't find collection") {
		return errors.Wrapf(errors.ErrIndexNotReady, err, "similarity index is not ready")
	}
	return errors.Wrapf(errors.ErrVectorSearch, err, "milvus request failed")
}
