package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"salesdash/internal/model"
	"salesdash/internal/service"
)

const healthTimeout = 2 * time.Second

// Pinger is satisfied by *sql.DB and database.DatasetCheck.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Deps are the collaborators the HTTP layer needs.
type Deps struct {
	Data      service.DataService
	Assistant service.AssistantService
	// DB backs /health when the dataset lives in PostgreSQL; nil otherwise.
	DB Pinger
	// Gatherer backs /metrics; nil disables the endpoint.
	Gatherer prometheus.Gatherer
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// Dashboard routes are served both at the root and under /api.
func RegisterRoutes(app *fiber.App, deps Deps) {
	app.Get("/health", HealthCheck(deps.DB, deps.Data))
	app.Get("/healthz", LivenessProbe())

	if deps.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{})))
	}

	validate := newValidator()
	for _, r := range []fiber.Router{app, app.Group("/api")} {
		r.Get("/data", GetData(deps.Data))
		r.Post("/ai", AskAI(deps.Assistant, validate))
	}
}

// HealthCheck godoc
// @Summary      Readiness probe
// @Description  Pings the database when one is configured, otherwise checks that the dataset loads.
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      503  {object}  errorPayload
// @Router       /health [get]
func HealthCheck(db Pinger, data service.DataService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		var err error
		if db != nil {
			err = db.PingContext(ctx)
		} else {
			_, err = data.Load(ctx)
		}
		if err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe godoc
// @Summary  Liveness probe
// @Tags     Health
// @Success  200
// @Router   /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}

// GetData godoc
// @Summary      Sales rep data
// @Description  Returns the dashboard dataset exactly as stored.
// @Tags         Dummy Data
// @Produce      json
// @Success      200  {object}  object
// @Failure      500  {object}  errorPayload
// @Router       /api/data [get]
func GetData(svc service.DataService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		doc, err := svc.Load(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "DATA_UNAVAILABLE", "failed to load data")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).Send(doc)
	}
}

// AskAI godoc
// @Summary      Ask AI
// @Description  Accepts a question and returns a placeholder answer.
// @Tags         AI
// @Accept       json
// @Produce      json
// @Param        body  body      model.Question  true  "Question"
// @Success      200   {object}  model.Answer
// @Failure      400   {object}  errorPayload
// @Router       /api/ai [post]
func AskAI(svc service.AssistantService, validate *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// The body is decoded regardless of Content-Type. encoding/json would
		// replace invalid UTF-8 with U+FFFD, so such bodies are rejected up front.
		body := c.Body()
		if !utf8.Valid(body) {
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "invalid JSON payload")
		}
		var q model.Question
		if err := json.Unmarshal(body, &q); err != nil {
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) && typeErr.Field == "question" {
				return writeError(c, fiber.StatusBadRequest, "INVALID_QUESTION", "'question' must be a string")
			}
			return writeError(c, fiber.StatusBadRequest, "INVALID_JSON", "invalid JSON payload")
		}

		if err := validate.Struct(q); err != nil {
			field := "question"
			var verrs validator.ValidationErrors
			if errors.As(err, &verrs) && len(verrs) > 0 {
				field = verrs[0].Field()
			}
			return writeError(c, fiber.StatusBadRequest, "QUESTION_REQUIRED", fmt.Sprintf("missing '%s' in request body", field))
		}

		ans, err := svc.Ask(c.UserContext(), q.Question)
		if err != nil {
			if errors.Is(err, service.ErrQuestionRequired) {
				return writeError(c, fiber.StatusBadRequest, "QUESTION_REQUIRED", "missing 'question' in request body")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(ans)
	}
}
