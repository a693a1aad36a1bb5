package vector_store

import (
	"context"
	"testing"

	"github.com/Malowking/selera/core/knowledge"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPostgresConnStr = "host=localhost port=5432 user=postgres password=postgres dbname=selera_test sslmode=disable"

// TestPostgresStoreRoundTrip 针对本地pgvector实例的端到端测试
func TestPostgresStoreRoundTrip(t *testing.T) {
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testPostgresConnStr)
	if err != nil {
		t.Skip("PostgreSQL 未运行，跳过测试")
	}
	if err := pool.Ping(ctx); err != nil {
		t.Skip("PostgreSQL 未运行，跳过测试")
	}
	defer pool.Close()

	store, err := NewPostgresStore(&VectorStoreConfig{
		Type:       VectorStoreTypePostgreSQL,
		Client:     pool,
		Database:   "selera_test",
		Collection: "selera_dishes_it",
	})
	require.NoError(t, err)

	_, _ = pool.Exec(ctx, "DROP TABLE IF EXISTS vectors.selera_dishes_it")
	defer func() {
		_, _ = pool.Exec(ctx, "DROP TABLE IF EXISTS vectors.selera_dishes_it")
	}()

	require.NoError(t, store.EnsureCollection(ctx))

	exists, err := store.CollectionExists(ctx)
	require.NoError(t, err)
	assert.True(t, exists)

	dishes := integrationDishes()
	vectors := [][]float32{unitVector(0), unitVector(1)}
	ids, err := store.InsertDishes(ctx, dishes, vectors)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	t.Run("相似度排序", func(t *testing.T) {
		results, err := store.Search(ctx, unitVector(0), 20, 2, nil)
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "Nasi Lemak", results[0].Dish.Name)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("清真过滤", func(t *testing.T) {
		halal := true
		results, err := store.Search(ctx, unitVector(1), 20, 5, &knowledge.SearchFilter{Halal: &halal})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "Nasi Lemak", results[0].Dish.Name)
	})

	t.Run("按名称精确查找", func(t *testing.T) {
		dish, err := store.ExactByName(ctx, "char  koay TEOW")
		require.NoError(t, err)
		require.NotNil(t, dish)
		assert.Equal(t, "Char Koay Teow", dish.Name)

		missing, err := store.ExactByName(ctx, "Pad Thai")
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("按菜系穷举", func(t *testing.T) {
		list, err := store.ListByCuisine(ctx, "Chinese Malaysian", 10)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "Char Koay Teow", list[0].Name)
	})

	t.Run("清空后表仍在", func(t *testing.T) {
		require.NoError(t, store.DeleteAll(ctx))
		exists, err := store.CollectionExists(ctx)
		require.NoError(t, err)
		assert.True(t, exists)

		results, err := store.Search(ctx, unitVector(0), 20, 5, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}
