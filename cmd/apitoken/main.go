// Command apitoken mints a bearer token for a merchant backend calling the
// query and refund routes. It reads the same configuration as the server.
package main

import (
	"fmt"
	"os"
	"time"

	"vnpay-connector/config"
	"vnpay-connector/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	client := pflag.StringP("client", "c", "", "token subject, e.g. shop-backend (required)")
	scopes := pflag.StringSliceP("scope", "s", []string{service.ScopeQuery, service.ScopeRefund}, "scopes to grant")
	ttl := pflag.Duration("ttl", 0, "token lifetime; 0 uses auth.token_expiry")
	cfgPath := pflag.String("config", "", "config file path")
	pflag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	expiry := cfg.Auth.TokenExpiry
	if *ttl > 0 {
		expiry = *ttl
	}

	tokenSvc := service.NewJWTTokenService(cfg.Auth.JWTSecret, expiry, cfg.Auth.JWTIssuer)
	token, expiresAt, err := tokenSvc.Generate(*client, *scopes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires %s\n", expiresAt.UTC().Format(time.RFC3339))
}
