package models

// NutritionItem is the canonical shape of one analyzed food entry, after the
// provider response has been normalized.
type NutritionItem struct {
	FoodName       string   `json:"food_name"`
	IsNonFood      bool     `json:"is_non_food"`
	Calories       float64  `json:"calories"`
	ProteinG       float64  `json:"protein_g"`
	CarbsG         float64  `json:"carbs_g"`
	FatG           float64  `json:"fat_g"`
	SugarG         float64  `json:"sugar_g"`
	SodiumMg       float64  `json:"sodium_mg"`
	FiberG         float64  `json:"fiber_g"`
	TopBenefits    []string `json:"top_benefits"`
	HealthWarnings []string `json:"health_warnings"`
	DietaryAdvice  string   `json:"dietary_advice"`
	Source         string   `json:"source,omitempty"` // "image" or "text"
}

// Record is a persisted nutrition entry. Records are append-only: created
// once, never updated or deleted. created_at is a local "YYYY-MM-DD HH:MM:SS"
// string so day bucketing is a plain prefix comparison.
type Record struct {
	ID             uint     `gorm:"primaryKey" json:"id"`
	FoodName       string   `gorm:"not null" json:"food_name"`
	IsNonFood      bool     `json:"is_non_food"`
	Calories       float64  `gorm:"not null" json:"calories"`
	ProteinG       float64  `gorm:"not null" json:"protein_g"`
	CarbsG         float64  `gorm:"not null" json:"carbs_g"`
	FatG           float64  `gorm:"not null" json:"fat_g"`
	SugarG         float64  `gorm:"not null" json:"sugar_g"`
	SodiumMg       float64  `gorm:"not null" json:"sodium_mg"`
	FiberG         float64  `gorm:"not null" json:"fiber_g"`
	TopBenefits    []string `gorm:"serializer:json" json:"top_benefits"`
	HealthWarnings []string `gorm:"serializer:json" json:"health_warnings"`
	DietaryAdvice  string   `json:"dietary_advice"`
	Source         string   `gorm:"not null" json:"source"`
	CreatedAt      string   `gorm:"autoCreateTime:false" json:"created_at"`
}

// Day returns the YYYY-MM-DD bucket a record belongs to.
func (r Record) Day() string {
	if len(r.CreatedAt) < 10 {
		return r.CreatedAt
	}
	return r.CreatedAt[:10]
}

// RecordFromItem snapshots a normalized item into a persistable record.
func RecordFromItem(item NutritionItem, source, createdAt string) *Record {
	return &Record{
		FoodName:       item.FoodName,
		IsNonFood:      item.IsNonFood,
		Calories:       item.Calories,
		ProteinG:       item.ProteinG,
		CarbsG:         item.CarbsG,
		FatG:           item.FatG,
		SugarG:         item.SugarG,
		SodiumMg:       item.SodiumMg,
		FiberG:         item.FiberG,
		TopBenefits:    item.TopBenefits,
		HealthWarnings: item.HealthWarnings,
		DietaryAdvice:  item.DietaryAdvice,
		Source:         source,
		CreatedAt:      createdAt,
	}
}

// DailySummary aggregates the seven nutrition fields over one calendar day.
// It is recomputed on every query, never persisted.
type DailySummary struct {
	Day      string  `json:"day,omitempty"`
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
	SugarG   float64 `json:"sugar_g"`
	SodiumMg float64 `json:"sodium_mg"`
	FiberG   float64 `json:"fiber_g"`
}

// Add accumulates one record into the summary.
func (s *DailySummary) Add(r Record) {
	s.Calories += r.Calories
	s.ProteinG += r.ProteinG
	s.CarbsG += r.CarbsG
	s.FatG += r.FatG
	s.SugarG += r.SugarG
	s.SodiumMg += r.SodiumMg
	s.FiberG += r.FiberG
}
