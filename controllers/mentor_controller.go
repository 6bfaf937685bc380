package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/gofiber/fiber/v2"

	"hackhub/config"
	"hackhub/utils"
)

type MentorController struct {
	Logger *log.Logger
}

func NewMentorController(logger *log.Logger) *MentorController {
	return &MentorController{Logger: logger}
}

type mentorInput struct {
	Message  string              `json:"message" validate:"required"`
	History  []utils.ChatMessage `json:"history"`
	Provider string              `json:"provider" validate:"omitempty,oneof=grok gemini"`
}

// Chat forwards a mentor conversation to a text-generation provider.
// OpenRouter (grok) is preferred when its key is configured and the caller
// did not ask for gemini; on its failure the call falls back to Gemini only
// if a Gemini key exists, otherwise the failure propagates. No retries.
func (mc *MentorController) Chat(c *fiber.Ctx) error {
	var input mentorInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	useGrok := config.AppConfig.OpenRouterKey != "" &&
		(input.Provider == "grok" || input.Provider == "")

	if useGrok {
		messages := make([]utils.ChatMessage, 0, len(input.History)+1)
		for _, msg := range input.History {
			role := "assistant"
			if msg.Role == "user" {
				role = "user"
			}
			messages = append(messages, utils.ChatMessage{Role: role, Content: msg.Content})
		}
		messages = append(messages, utils.ChatMessage{Role: "user", Content: input.Message})

		response, err := utils.ChatWithOpenRouter(messages)
		if err == nil {
			return c.JSON(fiber.Map{"response": response})
		}
		mc.Logger.Printf("openrouter failed, falling back to gemini: %v", err)
		if config.AppConfig.GeminiAPIKey == "" {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError,
				"Failed to get response from AI Mentor", err)
		}
	}

	response, err := utils.ChatWithGemini(input.History, input.Message)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			"Failed to get response from AI Mentor", err)
	}

	return c.JSON(fiber.Map{"response": response})
}

type generateIdeasInput struct {
	Keywords   string `json:"keywords"`
	Difficulty string `json:"difficulty"`
	TeamSize   string `json:"team_size"`
}

type GeneratedIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	TechStack   []string `json:"techStack"`
	Difficulty  string   `json:"difficulty"`
}

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// GenerateIdeas prompts a provider for three project ideas as strict JSON.
// Gemini is the primary generator; OpenRouter covers for it when Gemini is
// unconfigured or failing.
func (mc *MentorController) GenerateIdeas(c *fiber.Ctx) error {
	var input generateIdeasInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}

	if input.Keywords == "" {
		input.Keywords = "General, Technology, Innovation"
	}
	if input.Difficulty == "" {
		input.Difficulty = "Medium"
	}
	if input.TeamSize == "" {
		input.TeamSize = "2-4"
	}

	prompt := fmt.Sprintf(`Generate 3 unique and innovative hackathon project ideas based on the following criteria:
- Keywords/Topics: %s
- Difficulty Level: %s
- Ideal Team Size: %s people

For each idea, provide the following in a strictly valid JSON format array:
[
    {
        "title": "Idea Title",
        "description": "A compelling 2-3 sentence description of the problem and solution.",
        "tags": ["Tag1", "Tag2", "Tag3"],
        "techStack": ["Tech1", "Tech2", "Tech3"],
        "difficulty": "Easy/Medium/Hard"
    }
]

Do not include any markdown formatting. Just return the raw JSON array.`,
		input.Keywords, input.Difficulty, input.TeamSize)

	text, err := utils.GenerateWithGemini(prompt)
	if err != nil {
		mc.Logger.Printf("gemini generation failed: %v", err)
		if config.AppConfig.OpenRouterKey == "" {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError,
				"Failed to generate ideas. Please try again.", err)
		}
		text, err = utils.ChatWithOpenRouter([]utils.ChatMessage{
			{Role: "user", Content: prompt},
		})
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError,
				"Failed to generate ideas. Please try again.", err)
		}
	}

	ideas, err := parseGeneratedIdeas(text)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError,
			"Failed to generate ideas. Please try again.", err)
	}

	return c.JSON(fiber.Map{"ideas": ideas})
}

// parseGeneratedIdeas strips markdown fences and any chatter around the
// JSON array before decoding.
func parseGeneratedIdeas(text string) ([]GeneratedIdea, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")
	cleaned = strings.TrimSpace(cleaned)

	if match := jsonArrayPattern.FindString(cleaned); match != "" {
		cleaned = match
	}

	var ideas []GeneratedIdea
	if err := json.Unmarshal([]byte(cleaned), &ideas); err != nil {
		return nil, fmt.Errorf("provider returned unparseable ideas: %w", err)
	}
	return ideas, nil
}
