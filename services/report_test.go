package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
)

func TestComputeWeeklyAdherence(t *testing.T) {
	weekly := []models.DailySummary{
		{Day: "2024-01-08", Calories: 2000},
		{Day: "2024-01-09", Calories: 2300},
		{Day: "2024-01-10", Calories: 1500},
	}

	t.Run("classifies against the ±10% band", func(t *testing.T) {
		stats := ComputeWeeklyAdherence(weekly, 2000)
		assert.Equal(t, 3, stats.TotalDays)
		assert.Equal(t, 1, stats.DaysMet)
		assert.Equal(t, 1, stats.DaysOver)
		assert.Equal(t, 1, stats.DaysUnder)
	})

	t.Run("band edges count as met", func(t *testing.T) {
		edges := []models.DailySummary{
			{Calories: 1800}, // exactly goal*0.9
			{Calories: 2200}, // exactly goal*1.1
		}
		stats := ComputeWeeklyAdherence(edges, 2000)
		assert.Equal(t, 2, stats.DaysMet)
		assert.Zero(t, stats.DaysOver)
		assert.Zero(t, stats.DaysUnder)
	})

	t.Run("no goal reports only the day count", func(t *testing.T) {
		stats := ComputeWeeklyAdherence(weekly, 0)
		assert.Equal(t, 3, stats.TotalDays)
		assert.Zero(t, stats.DaysMet)
		assert.Zero(t, stats.DaysOver)
		assert.Zero(t, stats.DaysUnder)
	})

	t.Run("empty week", func(t *testing.T) {
		stats := ComputeWeeklyAdherence(nil, 2000)
		assert.Zero(t, stats.TotalDays)
	})
}
