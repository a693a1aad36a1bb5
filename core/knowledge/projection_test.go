package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string { return &s }

func sampleDish() *Dish {
	return &Dish{
		Name:          "Nasi Lemak",
		CuisineType:   "Malay",
		Category:      "Main course",
		Description:   "Fragrant rice cooked in coconut milk.",
		Ingredients:   []string{"Rice", "Coconut milk", "Sambal"},
		CookingMethod: strptr("Rice is cooked with coconut milk."),
		TasteProfile:  []string{"Savory", "Spicy"},
		DietaryInfo:   map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": true},
		CulturalSignificance: strptr("Malaysia's unofficial national dish."),
		TypicalMealTime:      []string{"Breakfast", "Anytime"},
		RegionalOrigin:       strptr("Nationwide"),
		CommonPairings:       []string{"Fried chicken", "Rendang"},
	}
}

func TestProjectionText(t *testing.T) {
	t.Run("完整记录的固定字段顺序", func(t *testing.T) {
		text := ProjectionText(sampleDish())
		lines := strings.Split(text, "\n")

		expected := []string{
			"Malaysian Dish: Nasi Lemak",
			"Cuisine Type: Malay",
			"Category: Main course",
			"Description: Fragrant rice cooked in coconut milk.",
			"Ingredients: Rice, Coconut milk, Sambal",
			"Cooking Method: Rice is cooked with coconut milk.",
			"Taste Profile: Savory, Spicy",
			"Dietary: Halal",
			"Cultural Significance: Malaysia's unofficial national dish.",
			"Typical Meal Time: Breakfast, Anytime",
			"Regional Origin: Nationwide",
			"Common Pairings: Fried chicken, Rendang",
		}
		require.Equal(t, expected, lines)
	})

	t.Run("缺失可选字段使用占位文本", func(t *testing.T) {
		dish := sampleDish()
		dish.CookingMethod = nil
		dish.CulturalSignificance = nil
		dish.RegionalOrigin = nil
		dish.DietaryInfo = map[string]bool{"halal": false, "vegetarian": false}

		text := ProjectionText(dish)
		assert.Contains(t, text, "Cooking Method: Not specified")
		assert.Contains(t, text, "Dietary: None specified")
		assert.Contains(t, text, "Cultural Significance: N/A")
		assert.Contains(t, text, "Regional Origin: Various regions")
	})

	t.Run("饮食行只列出为真的标志", func(t *testing.T) {
		dish := sampleDish()
		dish.DietaryInfo = map[string]bool{"halal": true, "vegetarian": true, "vegan": true, "gluten_free": true}

		text := ProjectionText(dish)
		assert.Contains(t, text, "Dietary: Halal, Vegetarian, Vegan")
		// gluten_free 不参与投影的饮食行
		assert.NotContains(t, text, "Gluten-free")
	})

	t.Run("空字符串可选字段等价于缺失", func(t *testing.T) {
		dish := sampleDish()
		dish.CookingMethod = strptr("")
		text := ProjectionText(dish)
		assert.Contains(t, text, "Cooking Method: Not specified")
	})

	t.Run("投影是确定性的", func(t *testing.T) {
		dish := sampleDish()
		first := ProjectionText(dish)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, ProjectionText(dish))
		}
	})

	t.Run("字段变更一定改变投影文本", func(t *testing.T) {
		dish := sampleDish()
		before := ProjectionText(dish)
		dish.CookingMethod = strptr("Slow-braised overnight.")
		assert.NotEqual(t, before, ProjectionText(dish))
	})

	t.Run("饮食信息整体缺失", func(t *testing.T) {
		dish := sampleDish()
		dish.DietaryInfo = nil
		text := ProjectionText(dish)
		assert.Contains(t, text, "Dietary: None specified")
	})
}
