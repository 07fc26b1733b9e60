package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// CORS allows browser dashboards on the listed origins to call the API.
// allowOrigins is a comma separated list; "*" allows any origin. Credentials
// are only allowed for explicit origins since browsers reject them with "*".
// AllowHeaders is left empty so preflights get their requested headers echoed.
func CORS(allowOrigins string) fiber.Handler {
	origins := strings.TrimSpace(allowOrigins)
	if origins == "" {
		origins = "*"
	}
	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		ExposeHeaders:    RequestIDHeader,
		AllowCredentials: origins != "*",
	})
}
