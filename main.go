package main

import (
	"dc3/config"
	"dc3/database"
	authRoutes "dc3/routers/authRoutes"
	certificateRoutes "dc3/routers/certificateRoutes"
	companyRoutes "dc3/routers/companyRoutes"
	courseRoutes "dc3/routers/courseRoutes"
	trainerRoutes "dc3/routers/trainerRoutes"
	"dc3/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"log"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // roster workbooks can be large
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	certificateRoutes.SetupCertificateRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	trainerRoutes.SetupTrainerRoutes(app)
	companyRoutes.SetupCompanyRoutes(app)

	utils.InitializeCleanupScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
