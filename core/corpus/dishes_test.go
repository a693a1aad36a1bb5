package corpus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinDishes(t *testing.T) {
	dishes := BuiltinDishes()

	t.Run("语料规模固定", func(t *testing.T) {
		assert.Len(t, dishes, 16)
	})

	t.Run("菜名唯一且必填字段齐全", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, dish := range dishes {
			require.NotEmpty(t, dish.Name)
			assert.False(t, seen[dish.Name], "duplicate dish name: %s", dish.Name)
			seen[dish.Name] = true

			assert.NotEmpty(t, dish.Description, "dish %s missing description", dish.Name)
			assert.NotEmpty(t, dish.CuisineType, "dish %s missing cuisine_type", dish.Name)
		}
	})

	t.Run("每道菜都带四项饮食属性", func(t *testing.T) {
		keys := []string{"halal", "vegetarian", "vegan", "gluten_free"}
		for _, dish := range dishes {
			require.NotNil(t, dish.DietaryInfo, "dish %s missing dietary_info", dish.Name)
			for _, key := range keys {
				_, ok := dish.DietaryInfo[key]
				assert.True(t, ok, "dish %s missing dietary key %s", dish.Name, key)
			}
		}
	})

	t.Run("覆盖全部五个菜系", func(t *testing.T) {
		cuisines := make(map[string]int)
		for _, dish := range dishes {
			cuisines[dish.CuisineType]++
		}
		for _, cuisine := range []string{"Malay", "Chinese Malaysian", "Nyonya", "Indian Malaysian", "Mamak"} {
			assert.Greater(t, cuisines[cuisine], 0, "no dishes for cuisine %s", cuisine)
		}
	})

	t.Run("每次调用返回独立副本", func(t *testing.T) {
		first := BuiltinDishes()
		first[0].Name = "mutated"
		second := BuiltinDishes()
		assert.NotEqual(t, "mutated", second[0].Name)
	})

	t.Run("招牌菜存在且饮食属性正确", func(t *testing.T) {
		byName := make(map[string]map[string]bool)
		for _, dish := range dishes {
			byName[dish.Name] = dish.DietaryInfo
		}

		require.Contains(t, byName, "Nasi Lemak")
		assert.True(t, byName["Nasi Lemak"]["halal"])
		assert.False(t, byName["Nasi Lemak"]["vegetarian"])

		require.Contains(t, byName, "Bak Kut Teh")
		assert.False(t, byName["Bak Kut Teh"]["halal"])

		require.Contains(t, byName, "Cendol")
		assert.True(t, byName["Cendol"]["vegetarian"])
	})
}
