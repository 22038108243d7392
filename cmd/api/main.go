package main

import (
	"log"
	"time"

	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/database"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/handlers"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/jobs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/notifications"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	database.ConnectDB(cfg)
	database.Migrate()
	database.SeedAdmin(cfg)
	notifications.InitEmailService(cfg)
	handlers.Setup(cfg)

	c := cron.New()
	c.AddFunc("*/5 * * * *", jobs.SendCitaReminders)
	go c.Start()
	log.Println("✅ Cron job for cita reminders scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:       false,
		AppName:       "Barberia API",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, Sec-WebSocket-Key, Sec-WebSocket-Version",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: cfg.FrontendURL != "*",
		MaxAge:           86400,
	}))

	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: time.Minute,
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Bienvenido al API de la barbería",
		})
	})

	routes.AuthRoutes(app, cfg)
	routes.CitaRoutes(app, cfg)
	routes.PagoRoutes(app, cfg)
	routes.PeluqueroRoutes(app, cfg)
	routes.ServicioRoutes(app, cfg)
	routes.ProductoRoutes(app, cfg)
	routes.WebsocketRoutes(app, cfg)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Printf("✅ Server is running on port %s", cfg.Port)
	err := app.Listen(":" + cfg.Port)
	if err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
