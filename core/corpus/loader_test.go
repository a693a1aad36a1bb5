package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Malowking/selera/core/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDishes(t *testing.T) {
	t.Run("合法语料", func(t *testing.T) {
		data := []byte(`[
			{"name":"Laksa","cuisine_type":"Nyonya","category":"Main course","description":"Spicy noodle soup."},
			{"name":"Cendol","cuisine_type":"Malay","category":"Dessert","description":"Iced dessert."}
		]`)
		dishes, err := decodeDishes(data)
		require.NoError(t, err)
		require.Len(t, dishes, 2)
		assert.Equal(t, "Laksa", dishes[0].Name)
		assert.Equal(t, "Nyonya", dishes[0].CuisineType)
	})

	t.Run("缺少菜名拒绝", func(t *testing.T) {
		data := []byte(`[{"cuisine_type":"Malay","description":"nameless"}]`)
		_, err := decodeDishes(data)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCorpusLoad))
	})

	t.Run("非法JSON拒绝", func(t *testing.T) {
		_, err := decodeDishes([]byte(`{not json`))
		require.Error(t, err)
	})

	t.Run("空数组合法", func(t *testing.T) {
		dishes, err := decodeDishes([]byte(`[]`))
		require.NoError(t, err)
		assert.Empty(t, dishes)
	})
}

func TestLoadDishesFromFile(t *testing.T) {
	ctx := context.Background()

	t.Run("从文件加载", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dishes.json")
		content := `[{"name":"Roti Canai","cuisine_type":"Indian Malaysian","category":"Main course","description":"Flaky flatbread."}]`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		dishes, err := loadDishesFromFile(ctx, path)
		require.NoError(t, err)
		require.Len(t, dishes, 1)
		assert.Equal(t, "Roti Canai", dishes[0].Name)
	})

	t.Run("文件不存在报语料错误", func(t *testing.T) {
		_, err := loadDishesFromFile(ctx, "/nonexistent/dishes.json")
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCorpusLoad))
	})
}
