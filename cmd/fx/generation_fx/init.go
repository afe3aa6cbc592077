package generation_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"

	"astroportal/internal/api/controllers"
	"astroportal/internal/repositories"
	"astroportal/internal/services"
	"astroportal/pkg/queue"
	"astroportal/pkg/utils"
)

const queueCapacity = 256

var Module = fx.Provide(
	provideGenerationQueue,
	ProvideGenerationClient,
	provideGenerationService,
	provideGenerationWorker,
	controllers.NewGenerationController)

// GenerationConfig holds configuration for generation clients
type GenerationConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func provideGenerationQueue() queue.GenerationQueue {
	return queue.NewGenerationQueue(queueCapacity)
}

// ProvideGenerationClient creates a text-generation client based on
// environment variables.
func ProvideGenerationClient() (utils.GenerationClientInterface, error) {
	config := getGenerationConfig()

	log.Printf("Initializing %s generation client with model: %s", config.Provider, config.Model)

	switch strings.ToLower(config.Provider) {
	case "openai":
		return utils.NewOpenAIGenerationClient(config.APIKey, config.Model), nil
	case "gemini":
		client, err := utils.NewGeminiGenerationClient(config.APIKey, config.Model)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini client: %w", err)
		}
		return client, nil
	default:
		return nil, fmt.Errorf("unsupported generation provider: %s. Use 'openai' or 'gemini'", config.Provider)
	}
}

func provideGenerationService(
	orderRepo repositories.OrderRepository,
	profileRepo repositories.ProfileRepository,
	creditRepo repositories.CreditRepository,
	client utils.GenerationClientInterface,
) services.GenerationServiceInterface {
	return services.NewGenerationService(orderRepo, profileRepo, creditRepo, client)
}

func provideGenerationWorker(
	genService services.GenerationServiceInterface,
	genQueue queue.GenerationQueue,
) *services.GenerationWorker {
	return services.NewGenerationWorker(genService, genQueue)
}

func getGenerationConfig() GenerationConfig {
	provider := getEnvWithDefault("GENERATION_PROVIDER", "openai")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = os.Getenv("OPENAI_MODEL")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return GenerationConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
