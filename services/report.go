package services

import "github.com/GIIIB-56/Personal-Nutritionist-Program/models"

// WeeklyAdherence counts how a week's days fell against a daily calorie
// goal. The goal band is goal ±10%.
type WeeklyAdherence struct {
	TotalDays int `json:"total_days"`
	DaysMet   int `json:"days_met"`
	DaysOver  int `json:"days_over"`
	DaysUnder int `json:"days_under"`
}

// ComputeWeeklyAdherence classifies each daily summary against the goal
// band [goal*0.9, goal*1.1]. With no goal the counts stay zero and only
// TotalDays is reported.
func ComputeWeeklyAdherence(weekly []models.DailySummary, goal float64) WeeklyAdherence {
	stats := WeeklyAdherence{TotalDays: len(weekly)}
	if goal <= 0 {
		return stats
	}
	low := goal * 0.9
	high := goal * 1.1
	for _, day := range weekly {
		switch {
		case day.Calories > high:
			stats.DaysOver++
		case day.Calories < low:
			stats.DaysUnder++
		default:
			stats.DaysMet++
		}
	}
	return stats
}
