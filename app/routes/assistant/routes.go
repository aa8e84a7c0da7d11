package assistant

import (
	"log"

	"pelita-schools/app/config"
	"pelita-schools/app/routes/auth"
	"pelita-schools/app/services"

	"github.com/gofiber/fiber/v2"
)

// SetupAssistantRoutes registers the chatbot endpoint. The assistant
// is shared by all requests; per-conversation state lives client-side
// and travels with each request.
func SetupAssistantRoutes(app *fiber.App) {
	a := services.NewAssistant(config.GetConfig().OpenAIKey)

	api := app.Group("/api/assistant")
	api.Use(auth.AuthMiddleware)
	api.Post("/chat", ChatAPI(a))
}

func ChatAPI(a *services.Assistant) fiber.Handler {
	return func(c *fiber.Ctx) error {
		type ChatRequest struct {
			Messages []services.ChatMessage `json:"messages"`
		}

		var req ChatRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "Invalid request body"})
		}
		if len(req.Messages) == 0 {
			return c.Status(400).JSON(fiber.Map{"success": false, "error": "No messages given"})
		}

		reply, err := a.Chat(c.Context(), req.Messages)
		if err != nil {
			if err == services.ErrAssistantNotConfigured {
				return c.Status(503).JSON(fiber.Map{"success": false, "error": "Assistant is not configured"})
			}
			log.Printf("Assistant call failed: %v", err)
			return c.Status(502).JSON(fiber.Map{"success": false, "error": "Assistant is unavailable"})
		}

		return c.JSON(fiber.Map{"success": true, "data": reply})
	}
}
