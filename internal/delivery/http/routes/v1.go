package routes

import (
	"log"

	"hr360/internal/config"
	"hr360/internal/database"
	v1 "hr360/internal/delivery/http/routes/v1"
	"hr360/internal/infrastructure/cache"
	"hr360/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func RegisterV1(r fiber.Router, cfg config.Config, db database.DB, redis *cache.Redis, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	v1.Register(r, cfg, db, redis, hub, logger)
}
