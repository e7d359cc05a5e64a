package routes

import (
	"github.com/GIIIB-56/Personal-Nutritionist-Program/controllers"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.RequestLogger())

	api := r.Group("/api")
	{
		api.POST("/analyze", controllers.AnalyzeImage)
		api.POST("/analyze-text", controllers.AnalyzeText)

		api.POST("/records", controllers.CreateRecords)
		api.GET("/records", controllers.ListRecords)
		api.GET("/records/today", controllers.ListTodayRecords)
		api.GET("/summary/today", controllers.TodaySummary)

		api.GET("/advice/today", controllers.TodayAdvice)
		api.GET("/report/weekly", controllers.WeeklyReport)

		api.GET("/profile", controllers.GetProfile)
		api.PUT("/profile", controllers.UpdateProfile)
	}

	return r
}
