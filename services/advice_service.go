package services

import (
	"context"
	"fmt"
	"time"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/utils"
)

// WeeklyReport is the full weekly-report payload: the model narrative plus
// the locally computed adherence counts and date range.
type WeeklyReport struct {
	WeekStart  string   `json:"week_start"`
	WeekEnd    string   `json:"week_end"`
	Summary    string   `json:"summary"`
	Highlights []string `json:"highlights"`
	WeeklyAdherence
}

// AdviceService generates daily advice and weekly reports from persisted
// records and the user's profile.
type AdviceService struct {
	store   RecordStore
	records *RecordService

	newProvider func(cfg AIConfig) (Provider, error)
}

func NewAdviceService(store RecordStore) *AdviceService {
	return &AdviceService{
		store:       store,
		records:     NewRecordService(store),
		newProvider: NewProvider,
	}
}

// DailyAdvice produces one piece of advice for today's intake. The profile
// must carry a target type and a daily calorie goal.
func (s *AdviceService) DailyAdvice(ctx context.Context) (string, error) {
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return "", err
	}
	if !profile.Complete() {
		return "", fmt.Errorf("set target_type and daily_calorie_goal: %w", ErrProfileIncomplete)
	}
	summary, err := s.records.SummaryToday(ctx)
	if err != nil {
		return "", err
	}
	provider, err := s.newProvider(ResolveAIConfig(profile))
	if err != nil {
		return "", err
	}
	return ComputeDailyAdvice(ctx, provider, profile, summary)
}

// ComputeDailyAdvice runs the daily-advice prompt against a provider and
// returns the normalized advice text.
func ComputeDailyAdvice(ctx context.Context, provider Provider, profile models.UserProfile, summary models.DailySummary) (string, error) {
	content, err := provider.Complete(ctx, CompletionRequest{
		System: "You are a professional nutritionist. Reply in strict JSON only.",
		User:   BuildAdvicePrompt(profile, summary),
	})
	if err != nil {
		return "", err
	}
	return ParseAdviceContent(content)
}

// WeeklyReportFor builds the report for the calendar week containing
// dateParam (YYYY-MM-DD); an empty or malformed date means the current week.
func (s *AdviceService) WeeklyReportFor(ctx context.Context, dateParam string) (WeeklyReport, error) {
	anchor := time.Now()
	if parsed, ok := utils.ParseDateOnly(dateParam); ok {
		anchor = parsed
	}
	week := utils.WeekRangeFor(anchor)

	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return WeeklyReport{}, err
	}
	weekly, err := s.records.SummaryForRange(ctx, week.Start, week.End)
	if err != nil {
		return WeeklyReport{}, err
	}
	provider, err := s.newProvider(ResolveAIConfig(profile))
	if err != nil {
		return WeeklyReport{}, err
	}
	report, err := ComputeWeeklyReport(ctx, provider, profile, weekly)
	if err != nil {
		return WeeklyReport{}, err
	}
	report.WeekStart = week.Start
	report.WeekEnd = week.End
	return report, nil
}

// ComputeWeeklyReport classifies the week's days against the calorie goal,
// asks the provider for a narrative, and combines the two.
func ComputeWeeklyReport(ctx context.Context, provider Provider, profile models.UserProfile, weekly []models.DailySummary) (WeeklyReport, error) {
	stats := ComputeWeeklyAdherence(weekly, profile.CalorieGoal())
	content, err := provider.Complete(ctx, CompletionRequest{
		System: "You are a professional nutritionist. Reply in strict JSON only.",
		User:   BuildWeeklyReportPrompt(profile, weekly, stats),
	})
	if err != nil {
		return WeeklyReport{}, err
	}
	narrative, err := ParseWeeklyContent(content)
	if err != nil {
		return WeeklyReport{}, err
	}
	highlights := narrative.Highlights
	if len(highlights) == 0 && narrative.Summary != "" {
		// Some models fold everything into the summary; segment it so the
		// caller still gets displayable bullet items.
		highlights = utils.SplitAdvice(narrative.Summary)
	}
	return WeeklyReport{
		Summary:         narrative.Summary,
		Highlights:      highlights,
		WeeklyAdherence: stats,
	}, nil
}
