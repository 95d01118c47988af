package config

import (
	"flag"
	"os"
	"time"

	"github.com/dimaum1001/financas-web/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags:
//
//	-a string   HTTP bind address (e.g., ":8000")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-o string   comma-separated CORS origins
//
// os.Args is filtered to these flags first so that flags registered by
// other packages do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-o"})

	fs := flag.NewFlagSet("server", flag.ContinueOnError)

	fs.StringVar(&cfg.Addr, "a", cfg.Addr, "address and port to run server")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database DSN")
	fs.StringVar(&cfg.SecretKey, "s", cfg.SecretKey, "secret key")
	fs.StringVar(&cfg.CORSOrigins, "o", cfg.CORSOrigins, "allowed CORS origins")

	tokenMinutes := fs.Int("t", int(cfg.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.AccessTokenValidityDuration = time.Duration(*tokenMinutes) * time.Minute
}
