package vector_store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Malowking/selera/core/common"
	"github.com/Malowking/selera/core/errors"
	"github.com/Malowking/selera/core/knowledge"
	pgvectorModel "github.com/Malowking/selera/internal/model/pgvector"
	"github.com/gogf/gf/v2/frame/g"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pgvector/pgvector-go"
)

// PostgresStore PostgreSQL向量数据库实现
type PostgresStore struct {
	pool     *pgxpool.Pool
	database string
	schema   string // 向量数据存储的 schema
	table    string
}

// InitializePostgresStore 初始化PostgreSQL向量存储
func InitializePostgresStore(ctx context.Context) (DishStore, error) {
	host := g.Cfg().MustGet(ctx, "postgres.host", "").String()
	port := g.Cfg().MustGet(ctx, "postgres.port", "5432").String()
	user := g.Cfg().MustGet(ctx, "postgres.user", "").String()
	password := g.Cfg().MustGet(ctx, "postgres.password", "").String()
	database := g.Cfg().MustGet(ctx, "postgres.database", "").String()
	sslMode := g.Cfg().MustGet(ctx, "postgres.sslmode", "disable").String()
	collection := g.Cfg().MustGet(ctx, "postgres.collection", "malaysian_dishes").String()

	if host == "" || user == "" || database == "" {
		return nil, fmt.Errorf("postgres configuration is incomplete. Required: host, user, database")
	}

	// 构建连接字符串（去掉空密码的 password= 参数）
	var connStr string
	if password != "" {
		connStr = fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			host, port, user, password, database, sslMode)
	} else {
		connStr = fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
			host, port, user, database, sslMode)
	}

	g.Log().Infof(ctx, "Connecting to PostgreSQL at: %s:%s, database: %s", host, port, database)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	config := &VectorStoreConfig{
		Type:       VectorStoreTypePostgreSQL,
		Client:     pool,
		Database:   database,
		Collection: collection,
	}

	store, err := NewPostgresStore(config)
	if err != nil {
		pool.Close()
		return nil, err
	}

	return store, nil
}

// NewPostgresStore 创建PostgreSQL向量存储实例
func NewPostgresStore(config *VectorStoreConfig) (DishStore, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	pool, ok := config.Client.(*pgxpool.Pool)
	if !ok {
		return nil, fmt.Errorf("client must be *pgxpool.Pool")
	}

	if config.Database == "" {
		return nil, fmt.Errorf("database name cannot be empty")
	}
	if config.Collection == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	return &PostgresStore{
		pool:     pool,
		database: config.Database,
		schema:   "vectors", // 使用独立的 vectors schema
		table:    sanitizeTableName(config.Collection),
	}, nil
}

func (p *PostgresStore) fullTableName() string {
	return fmt.Sprintf("%s.%s", p.schema, p.table)
}

// EnsureCollection 准备扩展、schema和菜品表
func (p *PostgresStore) EnsureCollection(ctx context.Context) error {
	// 1. 检查 pgvector 扩展是否已安装
	var extensionExists bool
	err := p.pool.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_extension WHERE extname = 'vector')").Scan(&extensionExists)
	if err != nil {
		return errors.Wrap(errors.ErrVectorStoreInit, err, "failed to check pgvector extension")
	}

	if !extensionExists {
		g.Log().Infof(ctx, "pgvector extension not found, attempting to create...")
		_, err = p.pool.Exec(ctx, "CREATE EXTENSION vector")
		if err != nil {
			return errors.Wrap(errors.ErrVectorStoreInit, err,
				"failed to create pgvector extension. Please ensure pgvector is installed for your PostgreSQL version")
		}
		g.Log().Infof(ctx, "pgvector extension created successfully")
	}

	// 2. 创建独立的 vectors schema
	_, err = p.pool.Exec(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", p.schema))
	if err != nil {
		return errors.Wrap(errors.ErrVectorStoreInit, err, "failed to create vectors schema")
	}

	// 3. 建表和索引
	tableSchema := pgvectorModel.DishTableSchema{}
	dim := knowledge.EmbeddingDim

	_, err = p.pool.Exec(ctx, tableSchema.GenerateCreateTableSQL(p.schema, p.table, dim))
	if err != nil {
		return errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to create table %s", p.fullTableName())
	}

	for _, indexSQL := range tableSchema.GenerateCreateIndexSQL(p.schema, p.table) {
		_, err = p.pool.Exec(ctx, indexSQL)
		if err != nil {
			return errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to create index on table %s", p.fullTableName())
		}
	}

	g.Log().Infof(ctx, "Table '%s' ready with dimension %d and indexes", p.fullTableName(), dim)
	return nil
}

// CollectionExists 检查菜品表是否存在
func (p *PostgresStore) CollectionExists(ctx context.Context) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT FROM information_schema.tables WHERE table_schema = $1 AND table_name = $2)",
		p.schema, p.table,
	).Scan(&exists)
	if err != nil {
		return false, errors.Wrapf(errors.ErrVectorStoreInit, err, "failed to check if table %s exists", p.fullTableName())
	}
	return exists, nil
}

// InsertDishes 批量插入菜品及其向量
func (p *PostgresStore) InsertDishes(ctx context.Context, dishes []*knowledge.Dish, vectors [][]float32) ([]string, error) {
	if len(dishes) != len(vectors) {
		return nil, errors.Newf(errors.ErrVectorInsert, "dishes and vectors length mismatch: %d vs %d", len(dishes), len(vectors))
	}
	if len(dishes) == 0 {
		return []string{}, nil
	}

	ids := make([]string, len(dishes))

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrVectorInsert, err, "failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	insertSQL := fmt.Sprintf(`
		INSERT INTO %s (id, name, name_norm, cuisine_type, category, halal, vegetarian, document, vector)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.fullTableName())

	for idx, dish := range dishes {
		if len(vectors[idx]) != knowledge.EmbeddingDim {
			return nil, errors.Newf(errors.ErrVectorInsert, "vector dim mismatch for dish %q: got %d, expected %d",
				dish.Name, len(vectors[idx]), knowledge.EmbeddingDim)
		}
		if dish.ID == "" {
			dish.ID = uuid.New().String()
		}
		ids[idx] = dish.ID

		docBytes, err := json.Marshal(dish)
		if err != nil {
			return nil, errors.Newf(errors.ErrVectorInsert, "failed to marshal dish %q: %v", dish.Name, err)
		}

		_, err = tx.Exec(ctx, insertSQL,
			dish.ID,
			dish.Name,
			common.NormalizeDishName(dish.Name),
			dish.CuisineType,
			dish.Category,
			dietaryColumn(dish, knowledge.DietaryHalal),
			dietaryColumn(dish, knowledge.DietaryVegetarian),
			docBytes,
			pgvector.NewVector(vectors[idx]),
		)
		if err != nil {
			return nil, errors.Wrapf(errors.ErrVectorInsert, err, "failed to insert dish %q", dish.Name)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, errors.Wrap(errors.ErrVectorInsert, err, "failed to commit transaction")
	}

	g.Log().Infof(ctx, "Successfully inserted %d dishes into table '%s'", len(dishes), p.fullTableName())
	return ids, nil
}

// DeleteAll 清空语料，保留表结构
func (p *PostgresStore) DeleteAll(ctx context.Context) error {
	exists, err := p.CollectionExists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return p.EnsureCollection(ctx)
	}

	result, err := p.pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", p.fullTableName()))
	if err != nil {
		return errors.Wrapf(errors.ErrVectorDelete, err, "failed to clear table %s", p.fullTableName())
	}

	g.Log().Infof(ctx, "Cleared %d dishes from table '%s' for re-seeding", result.RowsAffected(), p.fullTableName())
	return nil
}

// Search 过滤式相似度搜索。
// 余弦距离通过 <=> 算子计算，得分换算为 1-distance，降序由 ORDER BY 保证。
func (p *PostgresStore) Search(ctx context.Context, vector []float32, candidatePool int, limit int, filter *knowledge.SearchFilter) ([]knowledge.ScoredDish, error) {
	if candidatePool < limit {
		candidatePool = limit
	}

	whereClause, args := buildPostgresFilter(filter, 2)
	args = append([]interface{}{pgvector.NewVector(vector)}, args...)

	querySQL := fmt.Sprintf(`
		SELECT document, 1 - (vector <=> $1) AS score
		FROM %s
		%s
		ORDER BY vector <=> $1
		LIMIT %d
	`, p.fullTableName(), whereClause, candidatePool)

	rows, err := p.pool.Query(ctx, querySQL, args...)
	if err != nil {
		return nil, classifyPostgresError(err)
	}
	defer rows.Close()

	scored := make([]knowledge.ScoredDish, 0, limit)
	for rows.Next() {
		var docBytes []byte
		var score float64
		if err := rows.Scan(&docBytes, &score); err != nil {
			return nil, errors.Wrap(errors.ErrVectorSearch, err, "failed to scan search row")
		}

		dish := &knowledge.Dish{}
		if err := json.Unmarshal(docBytes, dish); err != nil {
			return nil, errors.Wrap(errors.ErrVectorSearch, err, "failed to unmarshal dish document")
		}
		scored = append(scored, knowledge.ScoredDish{Dish: dish, Score: float32(score)})
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPostgresError(err)
	}

	if len(scored) > limit {
		scored = scored[:limit]
	}
	return scored, nil
}

// ListByCuisine 纯过滤列表，无向量排序
func (p *PostgresStore) ListByCuisine(ctx context.Context, cuisine string, limit int) ([]*knowledge.Dish, error) {
	querySQL := fmt.Sprintf(`
		SELECT document FROM %s WHERE cuisine_type = $1 ORDER BY name LIMIT %d
	`, p.fullTableName(), limit)

	rows, err := p.pool.Query(ctx, querySQL, cuisine)
	if err != nil {
		return nil, classifyPostgresError(err)
	}
	defer rows.Close()

	dishes := make([]*knowledge.Dish, 0, limit)
	for rows.Next() {
		var docBytes []byte
		if err := rows.Scan(&docBytes); err != nil {
			return nil, errors.Wrap(errors.ErrVectorSearch, err, "failed to scan dish row")
		}
		dish := &knowledge.Dish{}
		if err := json.Unmarshal(docBytes, dish); err != nil {
			return nil, errors.Wrap(errors.ErrVectorSearch, err, "failed to unmarshal dish document")
		}
		dishes = append(dishes, dish)
	}
	if err := rows.Err(); err != nil {
		return nil, classifyPostgresError(err)
	}
	return dishes, nil
}

// ExactByName 归一化菜名精确查找
func (p *PostgresStore) ExactByName(ctx context.Context, name string) (*knowledge.Dish, error) {
	querySQL := fmt.Sprintf("SELECT document FROM %s WHERE name_norm = $1 LIMIT 1", p.fullTableName())

	var docBytes []byte
	err := p.pool.QueryRow(ctx, querySQL, common.NormalizeDishName(name)).Scan(&docBytes)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, classifyPostgresError(err)
	}

	dish := &knowledge.Dish{}
	if err := json.Unmarshal(docBytes, dish); err != nil {
		return nil, errors.Wrap(errors.ErrVectorSearch, err, "failed to unmarshal dish document")
	}
	return dish, nil
}

// Close 释放连接池
func (p *PostgresStore) Close() error {
	p.pool.Close()
	return nil
}

// buildPostgresFilter 把结构化过滤条件编译成参数化WHERE子句。
// firstArg 是第一个占位符的编号（向量参数占用 $1）。
func buildPostgresFilter(filter *knowledge.SearchFilter, firstArg int) (string, []interface{}) {
	if filter.IsEmpty() {
		return "", nil
	}

	var clauses []string
	var args []interface{}
	argN := firstArg

	addClause := func(column string, value interface{}) {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, argN))
		args = append(args, value)
		argN++
	}

	if filter.CuisineType != nil {
		addClause("cuisine_type", *filter.CuisineType)
	}
	if filter.Category != nil {
		addClause("category", *filter.Category)
	}
	if filter.Halal != nil {
		addClause("halal", boolToFlag(*filter.Halal))
	}
	if filter.Vegetarian != nil {
		addClause("vegetarian", boolToFlag(*filter.Vegetarian))
	}

	return "WHERE " + strings.Join(clauses, " AND "), args
}

func boolToFlag(v bool) int16 {
	if v {
		return 1
	}
	return 0
}

func sanitizeTableName(name string) string {
	// 简单的表名清理：只允许字母、数字和下划线
	var result strings.Builder
	for _, char := range name {
		if (char >= 'a' && char <= 'z') || (char >= 'A' && char <= 'Z') || (char >= '0' && char <= '9') || char == '_' {
			result.WriteRune(char)
		} else {
			result.WriteRune('_')
		}
	}
	return result.String()
}

// classifyPostgresError 区分"表/索引尚未就绪"与一般性查询故障
func classifyPostgresError(err error) error {
	msg := strings.ToLower(err.Error())
	if strings.Contains(msg, "does not exist") && (strings.Contains(msg, "relation") || strings.Contains(msg, "schema")) {
		return errors.Wrap(errors.ErrIndexNotReady, err, "dish table is not ready")
	}
	return errors.Wrap(errors.ErrVectorSearch, err, "postgres request failed")
}
