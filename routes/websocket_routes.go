package routes

import (
	config "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/configs"
	"github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/middleware"
	ws "github.com/eld4vd/Sistema-sencillo-de-reservas-para-barberias-sub001/websocket"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WebsocketRoutes exposes the live feed of the admin dashboard. The cookie
// JWT travels with the upgrade request, so the usual guard applies.
func WebsocketRoutes(app *fiber.App, cfg *config.Config) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws/admin", middleware.Protected(cfg), middleware.AdminRequired(), websocket.New(func(conn *websocket.Conn) {
		ws.Register <- conn
		defer func() {
			ws.Unregister <- conn
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}))
}
