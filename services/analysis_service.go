package services

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/models"
)

var imageDataURIPattern = regexp.MustCompile(`(?i)^data:(image/(?:jpeg|jpg|png));base64,(.+)$`)

// AnalysisService turns a meal photo or free-text description into
// normalized nutrition items via the configured AI provider.
type AnalysisService struct {
	store RecordStore

	// newProvider is swapped out in tests.
	newProvider func(cfg AIConfig) (Provider, error)
}

func NewAnalysisService(store RecordStore) *AnalysisService {
	return &AnalysisService{store: store, newProvider: NewProvider}
}

func (s *AnalysisService) provider(ctx context.Context) (Provider, error) {
	profile, err := s.store.GetProfile(ctx)
	if err != nil {
		return nil, err
	}
	return s.newProvider(ResolveAIConfig(profile))
}

// AnalyzeImage recognizes the meal in a base64 data URI and returns the
// normalized item, tagged with source "image".
func (s *AnalysisService) AnalyzeImage(ctx context.Context, dataURI string) (models.NutritionItem, error) {
	match := imageDataURIPattern.FindStringSubmatch(strings.TrimSpace(dataURI))
	if match == nil {
		return models.NutritionItem{}, fmt.Errorf("expect data:image/jpeg;base64,...: %w", ErrInvalidImageFormat)
	}
	provider, err := s.provider(ctx)
	if err != nil {
		return models.NutritionItem{}, err
	}
	req := BuildImageAnalysisRequest(&InlineImage{MimeType: normalizeMimeType(match[1]), Base64: match[2]})
	content, err := provider.Complete(ctx, req)
	if err != nil {
		return models.NutritionItem{}, err
	}
	item, err := ParseModelContent(content)
	if err != nil {
		return models.NutritionItem{}, err
	}
	item.Source = "image"
	return item, nil
}

// AnalyzeText estimates nutrition for a free-text meal description and
// returns the normalized items, each tagged with source "text".
func (s *AnalysisService) AnalyzeText(ctx context.Context, description string) ([]models.NutritionItem, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("missing description: %w", ErrInvalidInput)
	}
	provider, err := s.provider(ctx)
	if err != nil {
		return nil, err
	}
	content, err := provider.Complete(ctx, BuildTextAnalysisRequest(description))
	if err != nil {
		return nil, err
	}
	items, err := ParseTextContent(content)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].Source = "text"
	}
	return items, nil
}

func normalizeMimeType(mime string) string {
	if strings.EqualFold(mime, "image/jpg") {
		return "image/jpeg"
	}
	return strings.ToLower(mime)
}
