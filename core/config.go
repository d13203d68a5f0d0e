package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the process configuration. It is built once at startup by
// NewConfig and passed by reference to the components that need it.
type Config struct {
	Env      string // DEV (local; default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	AppName  string

	Server struct {
		Addr string
	}

	Database struct {
		URI  string
		Name string
	}

	FromName       string
	FromEmail      string
	SendgridApiKey string
	RollbarToken   string
	AllowedOrigins []string
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "HRMS Lite")
	v.SetDefault("serverAddr", ":8000")
	v.SetDefault("databaseUri", "mongodb://localhost:27017")
	v.SetDefault("databaseName", "hrms_lite")
	v.SetDefault("fromName", "HRMS Lite")
	v.SetDefault("fromEmail", "noreply@localhost")
	v.SetDefault("allowedOrigins", []string{"*"})

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf := &Config{
		Env:            env,
		Debug:          v.GetBool("debug"),
		TestMode:       env == "TEST",
		AppName:        v.GetString("appName"),
		FromName:       v.GetString("fromName"),
		FromEmail:      v.GetString("fromEmail"),
		SendgridApiKey: v.GetString("sendgridApiKey"),
		RollbarToken:   v.GetString("rollbarToken"),
		AllowedOrigins: v.GetStringSlice("allowedOrigins"),
	}
	conf.Server.Addr = v.GetString("serverAddr")
	conf.Database.URI = v.GetString("databaseUri")
	conf.Database.Name = v.GetString("databaseName")
	return conf
}

func (conf *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: conf.FromName, Address: conf.FromEmail}
}
