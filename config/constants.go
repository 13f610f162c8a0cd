package config

import "time"

// Service endpoints
const (
	// DefaultBackendURL is the analysis backend origin (serves /analyze/ and /history/)
	DefaultBackendURL = "http://127.0.0.1:8000"

	// DefaultFactCheckURL is the Google Fact Check Tools API origin
	DefaultFactCheckURL = "https://factchecktools.googleapis.com"

	// DefaultPort is the API server listen port
	DefaultPort = "8080"

	// DefaultOAuthCallbackPort is the loopback port used for Google sign-in redirects
	DefaultOAuthCallbackPort = "9999"

	// DefaultRedisAddr is used when SESSION_STORE=redis and REDIS_ADDR is unset
	DefaultRedisAddr = "localhost:6379"

	// DefaultKafkaTopic receives one event per completed analysis
	DefaultKafkaTopic = "factguard.analyses"

	// DefaultKafkaGroupID is the consumer group of the export tool's follow mode
	DefaultKafkaGroupID = "factguard-export"
)

// Session store kinds
const (
	SessionStoreFile  = "file"
	SessionStoreRedis = "redis"
)

// Timeouts
const (
	// HTTPTimeout bounds outbound calls from the API server only; the terminal
	// client issues requests without a deadline.
	HTTPTimeout = 60 * time.Second

	// URLExtractTimeout bounds article extraction for URL input
	URLExtractTimeout = 30 * time.Second

	// OAuthTimeout bounds how long the loopback server waits for the Google redirect
	OAuthTimeout = 3 * time.Minute
)

// ExampleHeadlines are offered in the analyze view as one-key inputs
var ExampleHeadlines = []string{
	"COVID-19 vaccines cause infertility, says study",
	"NASA confirms water on the Moon",
	"Pakistan to host World Cup in 2027",
}
