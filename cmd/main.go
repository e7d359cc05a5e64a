package main

import (
	"os"

	"github.com/GIIIB-56/Personal-Nutritionist-Program/config"
	"github.com/GIIIB-56/Personal-Nutritionist-Program/routes"
)

func main() {
	config.Init()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
