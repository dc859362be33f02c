package config

import (
	"flag"
	"os"
	"time"

	"github.com/chineye-ai/chatserver/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token lifetime, minutes
//	-k string   Gemini API key
//	-u string   Gemini API URL
//	-l int      chat history limit
//	-o string   CORS allowed origin
//
// os.Args is first filtered through flagx.FilterArgs so flags owned by other
// packages do not trip the parser. The token lifetime is accepted as integer
// minutes and converted to a time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-k", "-u", "-l", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenMinutes := fs.Int("t", int(config.AccessTokenTTL.Minutes()), "access token lifetime (in minutes)")

	fs.StringVar(&config.GeminiAPIKey, "k", config.GeminiAPIKey, "Gemini API key")
	fs.StringVar(&config.GeminiAPIURL, "u", config.GeminiAPIURL, "Gemini API URL")
	fs.IntVar(&config.HistoryLimit, "l", config.HistoryLimit, "chat history limit")
	fs.StringVar(&config.CORSAllowOrigin, "o", config.CORSAllowOrigin, "CORS allowed origin")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.AccessTokenTTL = time.Duration(*accessTokenMinutes) * time.Minute
}
