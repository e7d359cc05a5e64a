package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/config"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/services"
)

// TodayAdvice generates one piece of advice for today's intake.
func TodayAdvice(c *gin.Context) {
	svc := services.NewAdviceService(services.NewGormRecordStore(config.DB))
	advice, err := svc.DailyAdvice(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, gin.H{"advice": advice})
}

// WeeklyReport generates the report for the calendar week containing the
// date query parameter, defaulting to the current week.
func WeeklyReport(c *gin.Context) {
	svc := services.NewAdviceService(services.NewGormRecordStore(config.DB))
	report, err := svc.WeeklyReportFor(c.Request.Context(), c.Query("date"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	respondOK(c, report)
}
