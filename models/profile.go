package models

// UserProfile is the single mutable profile row. Every field is nullable; an
// absent profile reads as the zero value, which serializes as all nulls.
type UserProfile struct {
	ID               uint     `gorm:"primaryKey" json:"-"`
	Weight           *float64 `json:"weight"`
	Height           *float64 `json:"height"`
	ActivityLevel    *string  `json:"activity_level"`
	AIProvider       *string  `gorm:"column:ai_provider" json:"ai_provider"`
	OpenAIKey        *string  `gorm:"column:openai_key" json:"openai_key"`
	GeminiKey        *string  `json:"gemini_key"`
	ThemeMode        *string  `json:"theme_mode"`
	FontScale        *float64 `json:"font_scale"`
	TargetType       *string  `json:"target_type"`
	DailyCalorieGoal *float64 `json:"daily_calorie_goal"`
}

func (UserProfile) TableName() string { return "user_profiles" }

// CalorieGoal returns the daily calorie goal, 0 when unset.
func (p UserProfile) CalorieGoal() float64 {
	if p.DailyCalorieGoal == nil {
		return 0
	}
	return *p.DailyCalorieGoal
}

// Target returns the goal type with a fallback for unset profiles.
func (p UserProfile) Target(fallback string) string {
	if p.TargetType == nil || *p.TargetType == "" {
		return fallback
	}
	return *p.TargetType
}

// Complete reports whether the advice preconditions are met.
func (p UserProfile) Complete() bool {
	return p.Target("") != "" && p.CalorieGoal() != 0
}
