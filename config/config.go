package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every setting the client, the API server and the export tool read
// from the environment.
type Config struct {
	BackendURL     string
	FactCheckURL   string
	FactCheckKey   string
	FirebaseAPIKey string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthCallbackPort  string

	SessionStore string
	SessionFile  string
	RedisAddr    string

	Port string

	KafkaBrokers []string
	KafkaTopic   string
	KafkaGroupID string

	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3Endpoint     string
	S3UsePathStyle bool
}

// Load reads .env (if present) and the process environment.
func Load() *Config {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		BackendURL:         strings.TrimRight(GetEnvOrDefault("FACTGUARD_BACKEND_URL", DefaultBackendURL), "/"),
		FactCheckURL:       strings.TrimRight(GetEnvOrDefault("FACTCHECK_BASE_URL", DefaultFactCheckURL), "/"),
		FactCheckKey:       os.Getenv("GOOGLE_FACTCHECK_API_KEY"),
		FirebaseAPIKey:     os.Getenv("FIREBASE_API_KEY"),
		GoogleClientID:     os.Getenv("GOOGLE_OAUTH_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_OAUTH_CLIENT_SECRET"),
		OAuthCallbackPort:  GetEnvOrDefault("OAUTH_CALLBACK_PORT", DefaultOAuthCallbackPort),
		SessionStore:       strings.ToLower(GetEnvOrDefault("SESSION_STORE", SessionStoreFile)),
		SessionFile:        GetEnvOrDefault("SESSION_FILE", defaultSessionFile()),
		RedisAddr:          GetEnvOrDefault("REDIS_ADDR", DefaultRedisAddr),
		Port:               GetEnvOrDefault("PORT", DefaultPort),
		KafkaBrokers:       splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:         GetEnvOrDefault("KAFKA_TOPIC", DefaultKafkaTopic),
		KafkaGroupID:       GetEnvOrDefault("KAFKA_GROUP_ID", DefaultKafkaGroupID),
		S3Bucket:           strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:           strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:          strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3Endpoint:         strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3UsePathStyle:     strings.EqualFold(strings.TrimSpace(os.Getenv("S3_USE_PATH_STYLE")), "true"),
	}

	if prefix := strings.TrimSpace(os.Getenv("S3_PREFIX")); prefix != "" {
		cfg.S3Prefix = strings.Trim(prefix, "/") + "/"
	}

	return cfg
}

// GetEnvOrDefault returns the value of an environment variable or a default value
func GetEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "factguard", "session.json")
}
