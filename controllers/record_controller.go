package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/config"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/services"
)

// CreateRecords stores one or more analyzed items as records. The body's
// "record" field accepts a single object or an array; an optional
// "record_date" (YYYY-MM-DD) backdates the records to that day.
func CreateRecords(c *gin.Context) {
	var body struct {
		Record     any    `json:"record"`
		RecordDate string `json:"record_date"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.Record == nil {
		respondError(c, 400, "Missing record in request body.")
		return
	}

	var rawItems []map[string]any
	switch v := body.Record.(type) {
	case []any:
		for _, entry := range v {
			if m, ok := entry.(map[string]any); ok {
				rawItems = append(rawItems, m)
			}
		}
	case map[string]any:
		rawItems = append(rawItems, v)
	}
	if len(rawItems) == 0 {
		respondError(c, 400, "Missing record in request body.")
		return
	}

	svc := services.NewRecordService(services.NewGormRecordStore(config.DB))
	ids, err := svc.InsertRecords(c.Request.Context(), rawItems, body.RecordDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(200, gin.H{"success": true, "ids": ids})
}

// ListTodayRecords returns today's records, newest first.
func ListTodayRecords(c *gin.Context) {
	svc := services.NewRecordService(services.NewGormRecordStore(config.DB))
	records, err := svc.ListToday(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, records)
}

// ListRecords returns the records of the day named by the date query
// parameter, defaulting to today.
func ListRecords(c *gin.Context) {
	date := c.Query("date")
	svc := services.NewRecordService(services.NewGormRecordStore(config.DB))

	var err error
	var records any
	if date == "" {
		records, err = svc.ListToday(c.Request.Context())
	} else {
		records, err = svc.ListByDate(c.Request.Context(), date)
	}
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, records)
}

// TodaySummary sums today's intake across the seven nutrition fields.
func TodaySummary(c *gin.Context) {
	svc := services.NewRecordService(services.NewGormRecordStore(config.DB))
	summary, err := svc.SummaryToday(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, summary)
}
