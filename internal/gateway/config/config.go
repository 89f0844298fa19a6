package config

import (
	"flag"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	Env      string
	LLM      LLMConfig
	Session  SessionConfig
	Artifact ArtifactConfig
}

// LLMConfig selects the chat-completion backend. Provider is "groq",
// "gemini", or "fake"; an empty APIKey leaves the gateway running with AI
// features disabled.
type LLMConfig struct {
	Provider string
	APIKey   string
	Model    string
}

type SessionConfig struct {
	FilePath string
	PgDSN    string
}

type ArtifactConfig struct {
	Enabled   bool
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	port := flag.String("port", ":8081", "server port")
	flag.Parse()

	env := strings.TrimSpace(os.Getenv("APP_ENV"))
	if env == "" {
		env = "local"
	}

	return &Config{
		Port:     resolvePort(*port),
		Env:      env,
		LLM:      loadLLMConfig(),
		Session:  loadSessionConfig(),
		Artifact: loadArtifactConfig(env),
	}, nil
}

// resolvePort lets PORT override the -port flag, prefixing a bare port
// number with ":".
func resolvePort(flagPort string) string {
	envPort := os.Getenv("PORT")
	if envPort == "" {
		return flagPort
	}
	if strings.HasPrefix(envPort, ":") {
		return envPort
	}
	return ":" + envPort
}

func loadLLMConfig() LLMConfig {
	provider := strings.ToLower(strings.TrimSpace(os.Getenv("LLM_PROVIDER")))
	if provider == "" {
		provider = "groq"
	}

	var apiKey string
	switch provider {
	case "gemini":
		apiKey = firstNonEmpty(
			strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
			strings.TrimSpace(os.Getenv("GOOGLE_API_KEY")),
		)
	default:
		apiKey = strings.TrimSpace(os.Getenv("GROQ_API_KEY"))
	}

	return LLMConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    strings.TrimSpace(os.Getenv("LLM_MODEL")),
	}
}

func loadSessionConfig() SessionConfig {
	return SessionConfig{
		FilePath: firstNonEmpty(strings.TrimSpace(os.Getenv("SESSION_STORE_PATH")), "tmp/chat_sessions.json"),
		PgDSN:    strings.TrimSpace(os.Getenv("SESSION_STORE_PG_DSN")),
	}
}

func loadArtifactConfig(env string) ArtifactConfig {
	endpoint := resolveArtifactEndpoint(env)
	return ArtifactConfig{
		Enabled:   endpoint != "",
		Endpoint:  endpoint,
		Region:    firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_REGION")), "us-east-1"),
		AccessKey: firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_ACCESS_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_USER"))),
		SecretKey: firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_SECRET_KEY")), strings.TrimSpace(os.Getenv("MINIO_ROOT_PASSWORD"))),
		Bucket:    firstNonEmpty(strings.TrimSpace(os.Getenv("REPORT_S3_BUCKET")), "packwise-reports"),
		UseSSL:    resolveArtifactUseSSL(env),
	}
}

func resolveArtifactEndpoint(env string) string {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return strings.TrimSpace(os.Getenv("REPORT_MINIO_ENDPOINT"))
	}
	return strings.TrimSpace(os.Getenv("REPORT_S3_ENDPOINT"))
}

func resolveArtifactUseSSL(env string) bool {
	if strings.EqualFold(strings.TrimSpace(env), "local") {
		return false
	}
	raw := strings.TrimSpace(os.Getenv("REPORT_S3_USE_SSL"))
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return true
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
