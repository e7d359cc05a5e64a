package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"
)

// UnknownMealName is the food name applied when the provider omits one.
const UnknownMealName = "Unknown meal"

// NormalizeItem is the single point where an untrusted provider payload
// becomes a canonical NutritionItem. It never fails: absent or malformed
// fields degrade to defaults instead of discarding the item.
func NormalizeItem(raw map[string]any) models.NutritionItem {
	var nutrients map[string]any
	if nested, ok := raw["nutrients"].(map[string]any); ok {
		nutrients = nested
	}

	foodName := utils.ToTrimmedString(raw["food_name"], "")
	if foodName == "" {
		foodName = utils.ToTrimmedString(raw["food_item"], "")
	}
	if foodName == "" {
		foodName = UnknownMealName
	}
	isNonFood := utils.IsNonFoodName(foodName)

	advice := utils.NonFoodMessage()
	if !isNonFood {
		advice = utils.NormalizeAdviceText(utils.ToTrimmedString(raw["dietary_advice"], ""))
	}

	return models.NutritionItem{
		FoodName:       foodName,
		IsNonFood:      isNonFood,
		Calories:       nutritionField(raw, "calories", nutrients, "calories"),
		ProteinG:       nutritionField(raw, "protein_g", nutrients, "protein"),
		CarbsG:         nutritionField(raw, "carbs_g", nutrients, "carbs"),
		FatG:           nutritionField(raw, "fat_g", nutrients, "fat"),
		SugarG:         utils.ToNumber(raw["sugar_g"], 0),
		SodiumMg:       utils.ToNumber(raw["sodium_mg"], 0),
		FiberG:         utils.ToNumber(raw["fiber_g"], 0),
		TopBenefits:    utils.ToStringArray(raw["top_benefits"]),
		HealthWarnings: utils.ToStringArray(raw["health_warnings"]),
		DietaryAdvice:  advice,
	}
}

// nutritionField reads a flat field, falling back to the nested "nutrients"
// shape some older provider responses use.
func nutritionField(raw map[string]any, key string, nutrients map[string]any, nestedKey string) float64 {
	if value, ok := raw[key]; ok && value != nil {
		return utils.ToNumber(value, 0)
	}
	if nutrients != nil {
		return utils.ToNumber(nutrients[nestedKey], 0)
	}
	return 0
}

// decodeModelJSON parses the raw model response. Only a whole-payload parse
// failure is fatal; empty content decodes as an empty object.
func decodeModelJSON(content string) (any, error) {
	if strings.TrimSpace(content) == "" {
		content = "{}"
	}
	var parsed any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelResponseInvalid, err)
	}
	return parsed, nil
}

func asObject(value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return nil
}

// ParseModelContent parses a single-item analysis response.
func ParseModelContent(content string) (models.NutritionItem, error) {
	parsed, err := decodeModelJSON(content)
	if err != nil {
		return models.NutritionItem{}, err
	}
	return NormalizeItem(asObject(parsed)), nil
}

// ParseTextContent parses a multi-item text analysis response. Models do not
// reliably honor the "always return an items array" instruction, so a bare
// array and a bare object are accepted as well.
func ParseTextContent(content string) ([]models.NutritionItem, error) {
	parsed, err := decodeModelJSON(content)
	if err != nil {
		return nil, err
	}
	var rawItems []any
	switch v := parsed.(type) {
	case map[string]any:
		if items, ok := v["items"].([]any); ok {
			rawItems = items
		} else {
			rawItems = []any{v}
		}
	case []any:
		rawItems = v
	default:
		rawItems = []any{v}
	}
	out := make([]models.NutritionItem, 0, len(rawItems))
	for _, raw := range rawItems {
		out = append(out, NormalizeItem(asObject(raw)))
	}
	return out, nil
}

// ParseAdviceContent parses a daily-advice response down to its advice text.
func ParseAdviceContent(content string) (string, error) {
	parsed, err := decodeModelJSON(content)
	if err != nil {
		return "", err
	}
	obj := asObject(parsed)
	return utils.NormalizeAdviceText(utils.ToTrimmedString(obj["advice"], "")), nil
}

// WeeklyNarrative is the model-written portion of a weekly report.
type WeeklyNarrative struct {
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
}

// ParseWeeklyContent parses a weekly-report response. Highlights are
// normalized individually and empty entries dropped.
func ParseWeeklyContent(content string) (WeeklyNarrative, error) {
	parsed, err := decodeModelJSON(content)
	if err != nil {
		return WeeklyNarrative{}, err
	}
	obj := asObject(parsed)
	highlights := make([]string, 0)
	for _, item := range utils.ToStringArray(obj["highlights"]) {
		normalized := utils.NormalizeAdviceText(item)
		if normalized != "" {
			highlights = append(highlights, normalized)
		}
	}
	return WeeklyNarrative{
		Summary:    utils.NormalizeAdviceText(utils.ToTrimmedString(obj["summary"], "")),
		Highlights: highlights,
	}, nil
}
