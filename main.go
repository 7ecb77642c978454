package main

import (
	"log"

	"wedding_planner/config"
	"wedding_planner/database"
	"wedding_planner/helper"
	"wedding_planner/router"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	app := fiber.New(fiber.Config{
		AppName: "wedding_planner",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins(),
		AllowMethods:     "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Authorization, Accept",
		AllowCredentials: true,
		ExposeHeaders:    "Set-Cookie",
		MaxAge:           600,
	}))

	database.ConnectDB()

	helper.StartChecklistScheduler()
	defer helper.StopChecklistScheduler()

	router.SetupRoutes(app)

	port := config.Config("PORT")
	if port == "" {
		port = "8002"
	}
	log.Fatal(app.Listen(":" + port))
}

func corsOrigins() string {
	if origins := config.Config("CORS_ORIGINS"); origins != "" {
		return origins
	}
	return "http://localhost:5173"
}
