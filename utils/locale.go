package utils

import "strings"

// Language bundles the response-language specific pieces of the analysis
// pipeline: the system prompt the model is instructed with, the keyword set
// that flags a non-food response, and the message shown in place of advice
// when no food was detected.
type Language struct {
	Code            string
	SystemPrompt    string
	NonFoodKeywords []string
	NonFoodMessage  string
}

var englishNonFoodKeywords = []string{"not food", "non-food", "no food", "not edible"}

var languages = map[string]Language{
	"en": {
		Code: "en",
		SystemPrompt: strings.Join([]string{
			"Role: You are a professional nutritionist.",
			"Task: Identify the food in the image, estimate nutrition, and give advice.",
			"Rules:",
			"1. Return strict JSON only.",
			"2. If the image is not food, mention it in food_name.",
			"3. Advice should be concise and actionable for the current intake.",
			"4. Must include keys: food_name, calories, protein_g, carbs_g, fat_g, sugar_g, sodium_mg, fiber_g, top_benefits, health_warnings, dietary_advice.",
			"5. top_benefits and health_warnings must be arrays of strings.",
		}, "\n"),
		NonFoodKeywords: englishNonFoodKeywords,
		NonFoodMessage:  "No food detected. Please retake the photo.",
	},
	"zh": {
		Code: "zh",
		SystemPrompt: strings.Join([]string{
			"角色：你是一名专业营养师。",
			"任务：识别图片中的食物，估算营养成分，并给出建议。",
			"规则：",
			"1. 只返回严格的 JSON。",
			"2. 如果图片中不是食物，请在 food_name 中说明。",
			"3. 建议应简洁，并针对当前摄入量可执行。",
			"4. 必须包含键：food_name, calories, protein_g, carbs_g, fat_g, sugar_g, sodium_mg, fiber_g, top_benefits, health_warnings, dietary_advice。",
			"5. top_benefits 和 health_warnings 必须是字符串数组。",
		}, "\n"),
		// Models occasionally answer in English regardless of the prompt
		// language, so the localized set keeps the English keywords too.
		NonFoodKeywords: append([]string{"不是食物", "非食物", "没有食物", "不可食用", "未检测到食物"}, englishNonFoodKeywords...),
		NonFoodMessage:  "你上传的图片未检测到食物，请重新拍摄。",
	},
}

var activeLanguage = languages["en"]

// SetResponseLanguage selects the deployment's response language. Unknown
// codes keep the current selection.
func SetResponseLanguage(code string) {
	if lang, ok := languages[strings.ToLower(strings.TrimSpace(code))]; ok {
		activeLanguage = lang
	}
}

// ResponseLanguage returns the active language configuration.
func ResponseLanguage() Language {
	return activeLanguage
}

// NonFoodMessage is the fixed advice text for non-food analysis results.
func NonFoodMessage() string {
	return activeLanguage.NonFoodMessage
}

// IsNonFoodName reports whether a model-reported food name indicates that no
// food was present. Empty names are "unknown", not confirmed non-food.
func IsNonFoodName(name string) bool {
	if name == "" {
		return false
	}
	normalized := strings.ToLower(name)
	for _, keyword := range activeLanguage.NonFoodKeywords {
		if strings.Contains(normalized, keyword) {
			return true
		}
	}
	return false
}
