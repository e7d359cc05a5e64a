package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeItem(t *testing.T) {
	t.Run("full payload", func(t *testing.T) {
		item := NormalizeItem(map[string]any{
			"food_name":       "  Fried rice ",
			"calories":        "650 kcal",
			"protein_g":       12.5,
			"carbs_g":         80,
			"fat_g":           "22",
			"sugar_g":         3,
			"sodium_mg":       900.0,
			"fiber_g":         2,
			"top_benefits":    []any{"Energy", " Satiety ", ""},
			"health_warnings": []any{"High sodium"},
			"dietary_advice":  "• Add vegetables • Reduce oil",
		})
		assert.Equal(t, "Fried rice", item.FoodName)
		assert.False(t, item.IsNonFood)
		assert.Equal(t, 650.0, item.Calories)
		assert.Equal(t, 12.5, item.ProteinG)
		assert.Equal(t, 80.0, item.CarbsG)
		assert.Equal(t, 22.0, item.FatG)
		assert.Equal(t, []string{"Energy", "Satiety"}, item.TopBenefits)
		assert.Equal(t, []string{"High sodium"}, item.HealthWarnings)
		assert.Equal(t, "- Add vegetables - Reduce oil", item.DietaryAdvice)
	})

	t.Run("food_item fallback and nested nutrients", func(t *testing.T) {
		item := NormalizeItem(map[string]any{
			"food_item": "Oatmeal",
			"nutrients": map[string]any{
				"calories": 150, "protein": 5, "carbs": 27, "fat": 3,
			},
		})
		assert.Equal(t, "Oatmeal", item.FoodName)
		assert.Equal(t, 150.0, item.Calories)
		assert.Equal(t, 5.0, item.ProteinG)
		assert.Equal(t, 27.0, item.CarbsG)
		assert.Equal(t, 3.0, item.FatG)
	})

	t.Run("flat field wins over nested", func(t *testing.T) {
		item := NormalizeItem(map[string]any{
			"food_name": "Toast",
			"calories":  200,
			"nutrients": map[string]any{"calories": 999},
		})
		assert.Equal(t, 200.0, item.Calories)
	})

	t.Run("missing name defaults", func(t *testing.T) {
		item := NormalizeItem(map[string]any{"calories": 100})
		assert.Equal(t, UnknownMealName, item.FoodName)
		assert.False(t, item.IsNonFood)
	})

	t.Run("nil map", func(t *testing.T) {
		item := NormalizeItem(nil)
		assert.Equal(t, UnknownMealName, item.FoodName)
		assert.Zero(t, item.Calories)
		assert.Empty(t, item.TopBenefits)
	})

	t.Run("non-food advice override", func(t *testing.T) {
		item := NormalizeItem(map[string]any{
			"food_name":      "This is not food",
			"dietary_advice": "model advice that must not survive",
		})
		assert.True(t, item.IsNonFood)
		assert.Equal(t, "No food detected. Please retake the photo.", item.DietaryAdvice)
	})
}

func TestParseModelContent(t *testing.T) {
	t.Run("valid object", func(t *testing.T) {
		item, err := ParseModelContent(`{"food_name":"Apple","calories":95}`)
		require.NoError(t, err)
		assert.Equal(t, "Apple", item.FoodName)
		assert.Equal(t, 95.0, item.Calories)
	})

	t.Run("empty content decodes as empty object", func(t *testing.T) {
		item, err := ParseModelContent("   ")
		require.NoError(t, err)
		assert.Equal(t, UnknownMealName, item.FoodName)
	})

	t.Run("invalid json is fatal", func(t *testing.T) {
		_, err := ParseModelContent("Sorry, I can't help with that.")
		assert.ErrorIs(t, err, ErrModelResponseInvalid)
	})
}

func TestParseTextContent(t *testing.T) {
	t.Run("items array", func(t *testing.T) {
		items, err := ParseTextContent(`{"items":[{"food_name":"Rice"},{"food_name":"Egg"}]}`)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "Rice", items[0].FoodName)
		assert.Equal(t, "Egg", items[1].FoodName)
	})

	t.Run("bare array", func(t *testing.T) {
		items, err := ParseTextContent(`[{"food_name":"Rice"}]`)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Rice", items[0].FoodName)
	})

	t.Run("bare object becomes singleton", func(t *testing.T) {
		items, err := ParseTextContent(`{"food_name":"Rice"}`)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "Rice", items[0].FoodName)
	})

	t.Run("invalid json", func(t *testing.T) {
		_, err := ParseTextContent(`{"items": [`)
		assert.ErrorIs(t, err, ErrModelResponseInvalid)
	})
}

func TestParseAdviceContent(t *testing.T) {
	advice, err := ParseAdviceContent(`{"advice":"  Eat   more fiber.  "}`)
	require.NoError(t, err)
	assert.Equal(t, "Eat more fiber.", advice)

	advice, err = ParseAdviceContent(`{}`)
	require.NoError(t, err)
	assert.Empty(t, advice)

	_, err = ParseAdviceContent(`not json`)
	assert.ErrorIs(t, err, ErrModelResponseInvalid)
}

func TestParseWeeklyContent(t *testing.T) {
	narrative, err := ParseWeeklyContent(`{"summary":"A solid  week.","highlights":["• Protein up","","  "]}`)
	require.NoError(t, err)
	assert.Equal(t, "A solid week.", narrative.Summary)
	assert.Equal(t, []string{"- Protein up"}, narrative.Highlights)
}
