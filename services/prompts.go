package services

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"
)

// num renders a float the way the prompts expect: no trailing zeros, no
// exponent for the value ranges involved.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// textAnalysisNotes extends the system prompt for text-description input.
var textAnalysisNotes = []string{
	"Note: The user input is a text description, not an image.",
	"If multiple foods are mentioned, return an items array with one record per food.",
	"If only one food is mentioned, still return an items array with 1 record.",
}

// BuildImageAnalysisRequest frames an image analysis call.
func BuildImageAnalysisRequest(image *InlineImage) CompletionRequest {
	return CompletionRequest{
		System: utils.ResponseLanguage().SystemPrompt,
		User:   "Return JSON following the rules.",
		Image:  image,
	}
}

// BuildTextAnalysisRequest frames a text-description analysis call.
func BuildTextAnalysisRequest(description string) CompletionRequest {
	system := append([]string{utils.ResponseLanguage().SystemPrompt}, textAnalysisNotes...)
	return CompletionRequest{
		System: strings.Join(system, "\n"),
		User:   "User food description: " + description,
	}
}

// BuildAdvicePrompt embeds the user's goal and today's intake, including the
// remaining-calorie figure (negative when over) and the ±10% target band.
func BuildAdvicePrompt(profile models.UserProfile, summary models.DailySummary) string {
	goal := profile.CalorieGoal()
	calories := summary.Calories
	lines := []string{
		"You are a nutritionist. Provide advice based on the user's goal and today's intake.",
		`Return strict JSON: {"advice":"..."}`,
		"User goal: " + profile.Target("maintain"),
		fmt.Sprintf("Today intake: %s kcal", num(calories)),
		fmt.Sprintf("Target calories: %s kcal", num(goal)),
		fmt.Sprintf("Remaining calories: %s kcal", num(goal-calories)),
		fmt.Sprintf("Macros (g): protein %s, carbs %s, fat %s",
			num(summary.ProteinG), num(summary.CarbsG), num(summary.FatG)),
		fmt.Sprintf("Sugar %sg, sodium %smg, fiber %sg",
			num(summary.SugarG), num(summary.SodiumMg), num(summary.FiberG)),
		fmt.Sprintf("Target range: %s-%s kcal",
			num(math.Round(goal*0.9)), num(math.Round(goal*1.1))),
	}
	if profile.Weight != nil && profile.Height != nil {
		if bmi, err := utils.CalculateBMI(*profile.Height, *profile.Weight); err == nil {
			lines = append(lines, fmt.Sprintf("Body: %s kg, %s cm, BMI %s (%s)",
				num(*profile.Weight), num(*profile.Height), num(bmi), utils.BMICategory(bmi)))
		}
	}
	if profile.ActivityLevel != nil && *profile.ActivityLevel != "" {
		lines = append(lines, "Activity level: "+*profile.ActivityLevel)
	}
	return strings.Join(lines, "\n")
}

// BuildWeeklyReportPrompt embeds the adherence counts and the raw per-day
// summaries, serialized as JSON for the model to reference.
func BuildWeeklyReportPrompt(profile models.UserProfile, weekly []models.DailySummary, stats WeeklyAdherence) string {
	goal := "unknown"
	if profile.DailyCalorieGoal != nil && *profile.DailyCalorieGoal != 0 {
		goal = num(*profile.DailyCalorieGoal)
	}
	payload, _ := json.Marshal(weekly)
	lines := []string{
		"Generate a weekly report from the past 7 days of intake data.",
		`Return strict JSON: {"summary":"...","highlights":["...","..."]}`,
		"User goal: " + profile.Target("unknown"),
		"Daily calorie goal: " + goal,
		fmt.Sprintf("Days met: %d, days over: %d, days under: %d",
			stats.DaysMet, stats.DaysOver, stats.DaysUnder),
		"7-day summary: " + string(payload),
	}
	return strings.Join(lines, "\n")
}
