package config

import (
	"fmt"
	"strings"
	"time"

	"vnpay-connector/pkg/apperror"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	Redis  RedisConfig  `mapstructure:"redis"`
	VNPay  VNPayConfig  `mapstructure:"vnpay"`
	Auth   AuthConfig   `mapstructure:"auth"`
	Log    LogConfig    `mapstructure:"log"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug, release, test
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Addr returns the Redis address string.
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// VNPayConfig is the merchant's gateway account and endpoint configuration.
// It is loaded once at startup and only read afterwards.
type VNPayConfig struct {
	TmnCode      string        `mapstructure:"tmn_code"`
	HashSecret   string        `mapstructure:"hash_secret"`
	PaymentURL   string        `mapstructure:"payment_url"`
	APIURL       string        `mapstructure:"api_url"`
	ReturnURL    string        `mapstructure:"return_url"`
	IPNURL       string        `mapstructure:"ipn_url"`
	Locale       string        `mapstructure:"locale"`
	Currency     string        `mapstructure:"currency"`
	Version      string        `mapstructure:"version"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Timezone     string        `mapstructure:"timezone"`     // IANA name; empty = server local time
	ExpireAfter  time.Duration `mapstructure:"expire_after"` // 0 = no vnp_ExpireDate
	IPNReplayTTL time.Duration `mapstructure:"ipn_replay_ttl"`
}

// Validate reports the first missing credential as a configuration error.
func (c VNPayConfig) Validate() error {
	if strings.TrimSpace(c.TmnCode) == "" {
		return apperror.ErrConfiguration("vnpay.tmn_code")
	}
	if strings.TrimSpace(c.HashSecret) == "" {
		return apperror.ErrConfiguration("vnpay.hash_secret")
	}
	return nil
}

// Location returns the time zone used for vnp_CreateDate.
// Unknown zone names fall back to the server's local zone.
func (c VNPayConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AuthConfig holds the bearer-token settings for the merchant API routes.
type AuthConfig struct {
	JWTSecret   string        `mapstructure:"jwt_secret"`
	JWTIssuer   string        `mapstructure:"jwt_issuer"`
	TokenExpiry time.Duration `mapstructure:"token_expiry"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`  // debug, info, warn, error
	Pretty bool   `mapstructure:"pretty"` // human-readable output (dev only)
}

// Load reads configuration from file and environment variables.
// Environment variables override file values. There is no prefix so the
// gateway credentials keep their usual names: vnpay.tmn_code -> VNPAY_TMN_CODE.
func Load(path string) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("vnpay.tmn_code", "")
	v.SetDefault("vnpay.hash_secret", "")
	v.SetDefault("vnpay.payment_url", "https://sandbox.vnpayment.vn/paymentv2/vpcpay.html")
	v.SetDefault("vnpay.api_url", "https://sandbox.vnpayment.vn/merchant_webapi/api/transaction")
	v.SetDefault("vnpay.return_url", "http://localhost:5000/vnpay_return")
	v.SetDefault("vnpay.ipn_url", "http://localhost:5000/vnpay_ipn")
	v.SetDefault("vnpay.locale", "vn")
	v.SetDefault("vnpay.currency", "VND")
	v.SetDefault("vnpay.version", "2.1.0")
	v.SetDefault("vnpay.timeout", "30s")
	v.SetDefault("vnpay.timezone", "")
	v.SetDefault("vnpay.expire_after", "0s")
	v.SetDefault("vnpay.ipn_replay_ttl", "24h")
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.jwt_issuer", "vnpay-connector")
	v.SetDefault("auth.token_expiry", "24h")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", false)

	// File config
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Environment variables: VNPAY_HASH_SECRET -> vnpay.hash_secret
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file (not required, env vars can suffice)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}
