package pgvector

import (
	"fmt"
)

// FieldDefinition describes a single column of a vector table
type FieldDefinition struct {
	Name        string
	Type        string
	Nullable    bool
	PrimaryKey  bool
	Default     string
	Description string
}

// IndexDefinition describes an index on a vector table
type IndexDefinition struct {
	Name        string
	Fields      []string
	IndexType   string // "hnsw" or "" for btree
	IndexOps    string // e.g. "vector_cosine_ops"
	Description string
}

// DishTableSchema 菜品向量表结构定义。
// dietary 列采用三态编码：-1 未知，0 否，1 是。
// 原始记录完整保存在 document JSONB 列中，过滤列只做冗余索引。
type DishTableSchema struct {
	Id          string    `pg:"id,varchar(64),primary_key"`
	Name        string    `pg:"name,varchar(256)"`
	NameNorm    string    `pg:"name_norm,varchar(256)"`
	CuisineType string    `pg:"cuisine_type,varchar(128)"`
	Category    string    `pg:"category,varchar(128)"`
	Halal       int8      `pg:"halal,smallint"`
	Vegetarian  int8      `pg:"vegetarian,smallint"`
	Document    string    `pg:"document,jsonb"`
	Vector      []float32 `pg:"vector,vector"`
}

// GetFields returns the PostgreSQL field definitions for the dish table
func (DishTableSchema) GetFields(dim int) []FieldDefinition {
	return []FieldDefinition{
		{
			Name:        "id",
			Type:        "VARCHAR(64)",
			Nullable:    false,
			PrimaryKey:  true,
			Description: "Dish unique ID (primary key)",
		},
		{
			Name:        "name",
			Type:        "VARCHAR(256)",
			Nullable:    false,
			Description: "Dish name as authored",
		},
		{
			Name:        "name_norm",
			Type:        "VARCHAR(256)",
			Nullable:    false,
			Description: "Lowercased, whitespace-collapsed dish name for exact lookup",
		},
		{
			Name:        "cuisine_type",
			Type:        "VARCHAR(128)",
			Nullable:    false,
			Description: "Cuisine type (for filtering)",
		},
		{
			Name:        "category",
			Type:        "VARCHAR(128)",
			Nullable:    false,
			Description: "Dish category (for filtering)",
		},
		{
			Name:        "halal",
			Type:        "SMALLINT",
			Nullable:    false,
			Default:     "-1",
			Description: "Halal flag: -1 unknown, 0 no, 1 yes",
		},
		{
			Name:        "vegetarian",
			Type:        "SMALLINT",
			Nullable:    false,
			Default:     "-1",
			Description: "Vegetarian flag: -1 unknown, 0 no, 1 yes",
		},
		{
			Name:        "document",
			Type:        "JSONB",
			Nullable:    false,
			Description: "Full dish record (JSONB)",
		},
		{
			Name:        "vector",
			Type:        fmt.Sprintf("vector(%d)", dim),
			Nullable:    false,
			Description: "Projection text embedding vector",
		},
	}
}

// GetIndexes returns the index definitions for the dish table
func (DishTableSchema) GetIndexes(tableName string) []IndexDefinition {
	return []IndexDefinition{
		{
			Name:        fmt.Sprintf("%s_vector_idx", tableName),
			Fields:      []string{"vector"},
			IndexType:   "hnsw",
			IndexOps:    "vector_cosine_ops",
			Description: "HNSW index for fast vector similarity search using cosine distance",
		},
		{
			Name:        fmt.Sprintf("%s_cuisine_idx", tableName),
			Fields:      []string{"cuisine_type"},
			Description: "Cuisine filter index",
		},
		{
			Name:        fmt.Sprintf("%s_name_norm_idx", tableName),
			Fields:      []string{"name_norm"},
			Description: "Exact name lookup index",
		},
	}
}

// GenerateCreateTableSQL generates the CREATE TABLE SQL statement
func (t DishTableSchema) GenerateCreateTableSQL(schemaName, tableName string, dim int) string {
	fields := t.GetFields(dim)
	fullTableName := fmt.Sprintf("%s.%s", schemaName, tableName)

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n", fullTableName)

	for i, field := range fields {
		sql += fmt.Sprintf("    %s %s", field.Name, field.Type)

		if field.PrimaryKey {
			sql += " PRIMARY KEY"
		} else if !field.Nullable {
			sql += " NOT NULL"
		}

		if field.Default != "" && !field.PrimaryKey {
			sql += fmt.Sprintf(" DEFAULT %s", field.Default)
		}

		if i < len(fields)-1 {
			sql += ","
		}
		sql += "\n"
	}

	sql += ")"
	return sql
}

// GenerateCreateIndexSQL generates the CREATE INDEX SQL statements
func (t DishTableSchema) GenerateCreateIndexSQL(schemaName, tableName string) []string {
	indexes := t.GetIndexes(tableName)
	fullTableName := fmt.Sprintf("%s.%s", schemaName, tableName)

	sqls := make([]string, len(indexes))
	for i, idx := range indexes {
		if idx.IndexType == "hnsw" && idx.IndexOps != "" {
			sqls[i] = fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON %s USING %s (%s %s)",
				idx.Name, fullTableName, idx.IndexType, idx.Fields[0], idx.IndexOps,
			)
		} else {
			sqls[i] = fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS %s ON %s (%s)",
				idx.Name, fullTableName, idx.Fields[0],
			)
		}
	}

	return sqls
}
