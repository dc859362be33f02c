package config

import "github.com/kelseyhightower/envconfig"

// parseEnv overlays environment variables onto config. Variable names match
// the envconfig tags on Config (ADDRESS, DATABASE_DSN, SECRET_KEY,
// ACCESS_TOKEN_TTL, GEMINI_API_KEY, GEMINI_API_URL, CHAT_TIMEOUT,
// HISTORY_LIMIT, CORS_ALLOW_ORIGIN). Absent variables leave the current
// values untouched; durations accept Go syntax such as "30m".
func parseEnv(config *Config) {
	if err := envconfig.Process("", config); err != nil {
		panic(err)
	}
}
