package core

import (
	"log"
	"net"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env      string
		Debug    bool
		TestMode bool
		AppName  string
		Build    string

		SecretKey        string
		DefaultFromEmail string
		SendgridAPIKey   string
		RollbarToken     string

		Server   ServerConfig
		Store    StoreConfig
		Database DatabaseConfig
	}

	ServerConfig struct {
		Host                      string
		Addr                      string
		DebugAddr                 string
		ShutdownTimeout           time.Duration
		JWTExpirationDelta        time.Duration
		JWTRefreshExpirationDelta time.Duration
	}

	// StoreConfig points at the remote record store (a collection-per-resource
	// CRUD service; the reference deployment runs the devstore app on :3001).
	StoreConfig struct {
		BaseURL string
		Timeout time.Duration
	}

	// DatabaseConfig configures the devstore's optional postgres backend.
	DatabaseConfig struct {
		Engine     string
		Name       string
		User       string
		Password   string
		Host       string
		Port       string
		DisableTLS bool
	}
)

func (c DatabaseConfig) Address() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *Config) FromEmail() mail.Address {
	return mail.Address{Name: c.AppName, Address: c.DefaultFromEmail}
}

// NewConfig loads configuration from defaults, an optional config/.env.<env>
// file and ENV-prefixed environment variables (eg. DEV_SECRETKEY).
func NewConfig() *Config {
	conf := viper.New()
	conf.SetTypeByDefaultValue(true)

	// defaults
	conf.SetDefault("debug", true)
	conf.SetDefault("appName", "Unigestion")
	conf.SetDefault("build", "dev")
	conf.SetDefault("secretKey", "x2b$+0q=7dz&uo(h!x)#*c2(#yg4h^$cegm2emy57=9pq5-wer")
	conf.SetDefault("defaultFromEmail", "noreply@universidad.edu")
	conf.SetDefault("sendgridApiKey", "")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("serverHost", "localhost")
	conf.SetDefault("serverAddr", ":8000")
	conf.SetDefault("serverDebugAddr", ":4000")
	conf.SetDefault("shutdownTimeout", 5*time.Second)
	conf.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	conf.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)
	conf.SetDefault("storeBaseUrl", "http://localhost:3001")
	conf.SetDefault("storeTimeout", 30*time.Second)
	conf.SetDefault("dbEngine", "postgres")
	conf.SetDefault("dbName", "")
	conf.SetDefault("dbUser", "")
	conf.SetDefault("dbPassword", "")
	conf.SetDefault("dbHost", "localhost")
	conf.SetDefault("dbPort", "5432")
	conf.SetDefault("dbDisableTls", true)

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	if env == "" {
		env = "DEV"
	}
	conf.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:              env,
		Debug:            conf.GetBool("debug"),
		TestMode:         env == "TEST",
		AppName:          conf.GetString("appName"),
		Build:            conf.GetString("build"),
		SecretKey:        conf.GetString("secretKey"),
		DefaultFromEmail: conf.GetString("defaultFromEmail"),
		SendgridAPIKey:   conf.GetString("sendgridApiKey"),
		RollbarToken:     conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Host:                      conf.GetString("serverHost"),
			Addr:                      conf.GetString("serverAddr"),
			DebugAddr:                 conf.GetString("serverDebugAddr"),
			ShutdownTimeout:           conf.GetDuration("shutdownTimeout"),
			JWTExpirationDelta:        conf.GetDuration("jwtExpirationDelta"),
			JWTRefreshExpirationDelta: conf.GetDuration("jwtRefreshExpirationDelta"),
		},
		Store: StoreConfig{
			BaseURL: conf.GetString("storeBaseUrl"),
			Timeout: conf.GetDuration("storeTimeout"),
		},
		Database: DatabaseConfig{
			Engine:     conf.GetString("dbEngine"),
			Name:       conf.GetString("dbName"),
			User:       conf.GetString("dbUser"),
			Password:   conf.GetString("dbPassword"),
			Host:       conf.GetString("dbHost"),
			Port:       conf.GetString("dbPort"),
			DisableTLS: conf.GetBool("dbDisableTls"),
		},
	}
}
