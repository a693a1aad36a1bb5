package corpus

import (
	"github.com/Malowking/selera/core/knowledge"
)

func strPtr(s string) *string { return &s }

// BuiltinDishes 返回内置的马来西亚菜品语料。
// 每次调用返回新的切片，调用方可安全修改（ingest 会填充ID）。
func BuiltinDishes() []*knowledge.Dish {
	return []*knowledge.Dish{
		// 马来菜系
		{
			Name:        "Nasi Lemak",
			CuisineType: "Malay",
			Category:    "Main course",
			Description: "Fragrant rice cooked in coconut milk and pandan leaf, Malaysia's national dish. Traditionally served with sambal, fried anchovies (ikan bilis), peanuts, boiled egg, and cucumber.",
			Ingredients: []string{"Rice", "Coconut milk", "Pandan leaves", "Sambal", "Ikan bilis", "Peanuts", "Eggs", "Cucumber"},
			CookingMethod: strPtr("Rice is cooked with coconut milk and pandan leaves. Served with various accompaniments including spicy sambal, crispy fried anchovies, roasted peanuts, hard-boiled egg, and fresh cucumber slices."),
			TasteProfile: []string{"Savory", "Spicy", "Umami"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Malaysia's unofficial national dish, eaten at any time of day. Represents the multicultural nature of Malaysian cuisine with Malay, Chinese, and Indian influences."),
			TypicalMealTime: []string{"Breakfast", "Lunch", "Dinner", "Anytime"},
			RegionalOrigin:  strPtr("Nationwide, originated from Malay communities"),
			CommonPairings:  []string{"Fried chicken", "Rendang", "Sambal sotong", "Curry"},
		},
		{
			Name:        "Rendang",
			CuisineType: "Malay",
			Category:    "Main course",
			Description: "Slow-cooked dry curry with beef or chicken, coconut milk, and a complex spice paste. Rich, tender, and intensely flavorful.",
			Ingredients: []string{"Beef or chicken", "Coconut milk", "Galangal", "Lemongrass", "Turmeric", "Ginger", "Garlic", "Shallots", "Chilies", "Tamarind"},
			CookingMethod: strPtr("Meat is slow-cooked for hours in coconut milk with a rich spice paste until the liquid reduces and the meat becomes tender and caramelized."),
			TasteProfile: []string{"Savory", "Spicy", "Umami", "Sweet"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Ceremonial dish from Minangkabau culture, often served during Eid and weddings. CNN named it the world's most delicious food."),
			TypicalMealTime: []string{"Lunch", "Dinner"},
			RegionalOrigin:  strPtr("Originally from Sumatra, adopted throughout Malaysia"),
			CommonPairings:  []string{"Nasi lemak", "Ketupat", "Lemang", "Steamed rice"},
		},
		{
			Name:        "Satay",
			CuisineType: "Malay",
			Category:    "Main course",
			Description: "Skewered and grilled marinated meat (chicken, beef, or lamb) served with peanut sauce, cucumber, onions, and rice cakes.",
			Ingredients: []string{"Chicken/beef/lamb", "Turmeric", "Lemongrass", "Garlic", "Peanut sauce", "Cucumber", "Onions", "Rice cakes (ketupat)"},
			CookingMethod: strPtr("Meat is marinated in turmeric and spices, threaded onto bamboo skewers, and grilled over charcoal fire. Served with thick peanut sauce."),
			TasteProfile: []string{"Savory", "Sweet", "Umami"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Popular street food and party dish, brought by Javanese immigrants. Social eating experience."),
			TypicalMealTime: []string{"Lunch", "Dinner", "Snack"},
			RegionalOrigin:  strPtr("Kajang is famous for satay"),
			CommonPairings:  []string{"Peanut sauce", "Cucumber", "Onions", "Nasi impit"},
		},

		// 华人菜系
		{
			Name:        "Char Koay Teow",
			CuisineType: "Chinese Malaysian",
			Category:    "Main course",
			Description: "Stir-fried flat rice noodles with prawns, Chinese sausage, bean sprouts, and eggs, cooked over high heat with dark soy sauce.",
			Ingredients: []string{"Flat rice noodles", "Prawns", "Chinese sausage", "Bean sprouts", "Eggs", "Chinese chives", "Dark soy sauce", "Chili paste"},
			CookingMethod: strPtr("Noodles are stir-fried over extremely high heat (wok hei) with ingredients in stages, creating smoky charred flavor."),
			TasteProfile: []string{"Savory", "Umami", "Sweet"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": false, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Iconic Penang street food, represents Chinese Malaysian culinary heritage. Requires high skill to achieve perfect wok hei."),
			TypicalMealTime: []string{"Lunch", "Dinner"},
			RegionalOrigin:  strPtr("Penang"),
			CommonPairings:  []string{"Lime juice", "Pickled green chilies"},
		},
		{
			Name:        "Hokkien Mee",
			CuisineType: "Chinese Malaysian",
			Category:    "Main course",
			Description: "Thick yellow noodles braised in dark soy sauce with pork, prawns, squid, and pork lard. Two versions: KL (dark) and Penang (spicy soup).",
			Ingredients: []string{"Yellow noodles", "Pork", "Prawns", "Squid", "Dark soy sauce", "Cabbage", "Pork lard", "Bean sprouts"},
			CookingMethod: strPtr("Noodles are stir-fried with meat and seafood, then braised in dark soy sauce until caramelized (KL style)."),
			TasteProfile: []string{"Savory", "Umami", "Sweet"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": false, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Introduced by Hokkien Chinese immigrants, represents adaptation of Chinese cuisine to Malaysian tastes."),
			TypicalMealTime: []string{"Dinner"},
			RegionalOrigin:  strPtr("Kuala Lumpur and Penang (different styles)"),
			CommonPairings:  []string{"Sambal", "Lime", "Green chilies"},
		},
		{
			Name:        "Bak Kut Teh",
			CuisineType: "Chinese Malaysian",
			Category:    "Main course",
			Description: "Herbal pork rib soup simmered with Chinese herbs and spices. Comfort food with medicinal properties.",
			Ingredients: []string{"Pork ribs", "Garlic", "Star anise", "Cinnamon", "Dong quai", "Chuanxiong", "Dang shen", "Dark soy sauce"},
			CookingMethod: strPtr("Pork ribs are simmered for hours with Chinese herbs and spices until tender and flavorful."),
			TasteProfile: []string{"Savory", "Umami"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": false, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Created by Hokkien immigrants as nutritious breakfast for laborers. Each family has secret herb recipe."),
			TypicalMealTime: []string{"Breakfast", "Lunch"},
			RegionalOrigin:  strPtr("Klang Valley"),
			CommonPairings:  []string{"White rice", "You tiao (fried dough)", "Chinese tea"},
		},

		// 娘惹菜系
		{
			Name:        "Laksa",
			CuisineType: "Nyonya",
			Category:    "Main course",
			Description: "Spicy noodle soup with rich coconut curry broth, combining Chinese and Malay flavors. Multiple regional variations exist.",
			Ingredients: []string{"Rice noodles", "Coconut milk", "Laksa paste", "Prawns", "Fish cake", "Bean sprouts", "Eggs", "Laksa leaves"},
			CookingMethod: strPtr("Spice paste is cooked with coconut milk to create rich curry broth, served with noodles and toppings."),
			TasteProfile: []string{"Spicy", "Savory", "Umami"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": false, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Represents Peranakan culture fusion of Chinese and Malay. Each region (Penang, Sarawak, Johor) has distinct version."),
			TypicalMealTime: []string{"Lunch", "Dinner"},
			RegionalOrigin:  strPtr("Penang, Sarawak, Johor (different styles)"),
			CommonPairings:  []string{"Sambal belacan", "Lime"},
		},
		{
			Name:        "Ayam Pongteh",
			CuisineType: "Nyonya",
			Category:    "Main course",
			Description: "Nyonya braised chicken with fermented soybean paste (tau cheo), potatoes in sweet-savory sauce.",
			Ingredients: []string{"Chicken", "Tau cheo (fermented soybean)", "Potatoes", "Shallots", "Garlic", "Gula melaka", "Dark soy sauce"},
			CookingMethod: strPtr("Chicken and potatoes are braised slowly with fermented soybean paste until tender and sauce thickens."),
			TasteProfile: []string{"Savory", "Sweet", "Umami"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": false, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Classic Nyonya dish showcasing Chinese ingredients (tau cheo) with Malay cooking techniques."),
			TypicalMealTime: []string{"Lunch", "Dinner"},
			RegionalOrigin:  strPtr("Melaka"),
			CommonPairings:  []string{"White rice", "Acar (pickles)"},
		},

		// 印度菜系
		{
			Name:        "Roti Canai",
			CuisineType: "Indian Malaysian",
			Category:    "Main course",
			Description: "Flaky, layered flatbread served with curry dhal or other curries. Malaysian Indian breakfast staple.",
			Ingredients: []string{"Flour", "Ghee or oil", "Condensed milk", "Egg", "Salt", "Water"},
			CookingMethod: strPtr("Dough is stretched paper-thin, folded to create layers, then griddled until crispy outside and fluffy inside."),
			TasteProfile: []string{"Savory"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": true, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Evolved from Indian paratha, became distinctly Malaysian. Mamak stall signature item."),
			TypicalMealTime: []string{"Breakfast", "Anytime"},
			RegionalOrigin:  strPtr("Nationwide, mamak stalls"),
			CommonPairings:  []string{"Dhal curry", "Fish curry", "Sambal", "Sugar (roti kosong)"},
		},
		{
			Name:        "Nasi Kandar",
			CuisineType: "Mamak",
			Category:    "Main course",
			Description: "Steamed rice served with variety of curries and side dishes, with mixed curry gravy poured over. Originated from Penang mamak shops.",
			Ingredients: []string{"Rice", "Various curries (chicken, mutton, fish, squid)", "Vegetables", "Fried chicken", "Boiled eggs", "Papadam"},
			CookingMethod: strPtr("Rice is served with customer's choice of curries and dishes, with mixed curry gravy ladled over everything."),
			TasteProfile: []string{"Spicy", "Savory", "Umami"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Created by Tamil Muslim vendors who carried rice in kandar (pole). 24-hour availability makes it iconic."),
			TypicalMealTime: []string{"Lunch", "Dinner", "Late night"},
			RegionalOrigin:  strPtr("Penang"),
			CommonPairings:  []string{"Fried chicken", "Various curries", "Papadam", "Achar"},
		},
		{
			Name:        "Banana Leaf Rice",
			CuisineType: "Indian Malaysian",
			Category:    "Main course",
			Description: "Rice served on banana leaf with variety of vegetable curries, papadam, and optional meat dishes. Unlimited vegetable refills.",
			Ingredients: []string{"Rice", "Vegetable curries", "Papadam", "Rasam", "Yogurt", "Optional meat curry"},
			CookingMethod: strPtr("Rice and curries are served on banana leaf, eaten with hands. Vegetable curries are refillable."),
			TasteProfile: []string{"Spicy", "Savory", "Umami"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": true, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("South Indian tradition, banana leaf is biodegradable and adds subtle flavor. Represents community dining."),
			TypicalMealTime: []string{"Lunch", "Dinner"},
			RegionalOrigin:  strPtr("Brickfields, Little India areas"),
			CommonPairings:  []string{"Fish head curry", "Mutton varuval", "Rasam", "Buttermilk"},
		},

		// 甜品与饮料
		{
			Name:        "Cendol",
			CuisineType: "Malay",
			Category:    "Dessert",
			Description: "Iced dessert with green rice flour jelly, coconut milk, palm sugar syrup, and shaved ice. Refreshing and sweet.",
			Ingredients: []string{"Pandan rice flour jelly", "Coconut milk", "Gula melaka (palm sugar)", "Shaved ice", "Red beans"},
			CookingMethod: strPtr("Green pandan jelly noodles are served with coconut milk, palm sugar syrup, and ice."),
			TasteProfile: []string{"Sweet", "Savory"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": true, "vegan": true, "gluten_free": true},
			CulturalSignificance: strPtr("Ancient dessert predating colonial era. Each region claims to have best cendol."),
			TypicalMealTime: []string{"Snack", "Dessert"},
			RegionalOrigin:  strPtr("Melaka and Penang are famous for cendol"),
			CommonPairings:  []string{"Durian (optional)", "Sweet corn"},
		},
		{
			Name:        "Teh Tarik",
			CuisineType: "Mamak",
			Category:    "Beverage",
			Description: "Pulled milk tea, Malaysia's national drink. Strong black tea with condensed milk, 'pulled' to create frothy top.",
			Ingredients: []string{"Black tea", "Condensed milk", "Evaporated milk"},
			CookingMethod: strPtr("Strong brewed tea is mixed with condensed and evaporated milk, then poured back and forth between containers to create froth and cool it."),
			TasteProfile: []string{"Sweet"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": true, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Iconic mamak stall beverage. The pulling action is an art form and creates signature frothy texture."),
			TypicalMealTime: []string{"Breakfast", "Anytime"},
			RegionalOrigin:  strPtr("Nationwide"),
			CommonPairings:  []string{"Roti canai", "Nasi lemak", "Curry puff"},
		},

		// 地方特色
		{
			Name:        "Sarawak Laksa",
			CuisineType: "Malay",
			Category:    "Main course",
			Description: "Sarawak's iconic spicy noodle soup with sambal belacan paste, coconut milk, and unique blend of spices. Different from Peninsular laksa.",
			Ingredients: []string{"Rice vermicelli", "Prawns", "Shredded chicken", "Bean sprouts", "Sambal belacan paste", "Coconut milk", "Tamarind", "Lemongrass"},
			CookingMethod: strPtr("Special laksa paste is cooked with coconut milk and tamarind to create distinctive spicy-sour broth."),
			TasteProfile: []string{"Spicy", "Savory", "Sour"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": true},
			CulturalSignificance: strPtr("Pride of Sarawak, created by Chinese Sarawakians. Anthony Bourdain declared it breakfast of gods."),
			TypicalMealTime: []string{"Breakfast", "Lunch"},
			RegionalOrigin:  strPtr("Sarawak"),
			CommonPairings:  []string{"Lime", "Sambal belacan"},
		},
		{
			Name:        "Kolo Mee",
			CuisineType: "Chinese Malaysian",
			Category:    "Main course",
			Description: "Sarawak dry noodles tossed in lard and shallot oil, topped with char siew and minced meat.",
			Ingredients: []string{"Egg noodles", "Char siew", "Minced pork", "Shallot oil", "Lard", "Vinegar", "White pepper"},
			CookingMethod: strPtr("Springy egg noodles are tossed with lard and shallot oil, topped with char siew and seasoned minced meat."),
			TasteProfile: []string{"Savory", "Umami"},
			DietaryInfo:  map[string]bool{"halal": false, "vegetarian": false, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Sarawak Chinese heritage dish, breakfast staple in Kuching."),
			TypicalMealTime: []string{"Breakfast", "Lunch"},
			RegionalOrigin:  strPtr("Sarawak"),
			CommonPairings:  []string{"Soup on the side", "Pickled green chilies"},
		},
		{
			Name:        "Mee Rebus",
			CuisineType: "Malay",
			Category:    "Main course",
			Description: "Yellow noodles in sweet potato-based gravy, topped with boiled egg, fried shallots, and lime.",
			Ingredients: []string{"Yellow noodles", "Sweet potato", "Bean sprouts", "Boiled eggs", "Fried shallots", "Green chilies", "Lime"},
			CookingMethod: strPtr("Thick gravy is made by blending sweet potato with spices, poured over noodles with toppings."),
			TasteProfile: []string{"Sweet", "Savory"},
			DietaryInfo:  map[string]bool{"halal": true, "vegetarian": false, "vegan": false, "gluten_free": false},
			CulturalSignificance: strPtr("Johor specialty, represents Malay-Javanese culinary influence."),
			TypicalMealTime: []string{"Breakfast", "Lunch"},
			RegionalOrigin:  strPtr("Johor"),
			CommonPairings:  []string{"Sambal", "Krupuk (crackers)"},
		},
	}
}
