package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all runtime settings, resolved once at startup.
type Config struct {
	AppName  string
	Env      string // DEV (local; default), TEST, QA, PROD
	Debug    bool
	TestMode bool
	Build    string

	// API is the remote MedHistory backend the client talks to.
	API struct {
		BaseURL string
		// Timeout bounds each request; 0 disables the client-side deadline
		// so a request only ends when the server answers or the caller cancels.
		Timeout time.Duration
	}

	// SessionFile is where the bearer token and cached profile live between runs.
	SessionFile string

	// Sandbox is the local fake-backend server.
	Sandbox struct {
		Address   string
		SecretKey []byte
		TokenTTL  time.Duration
	}

	RollbarToken string
}

var Conf *Config

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "MedHistory")
	v.SetDefault("apiBaseURL", "http://localhost:8400")
	v.SetDefault("apiTimeout", time.Duration(0))
	v.SetDefault("sessionFile", defaultSessionFile())
	v.SetDefault("sandboxAddress", ":8400")
	v.SetDefault("sandboxSecretKey", "k3y-p0ur-le-bac-a-sable-seulement!")
	v.SetDefault("sandboxTokenTTL", 7*24*time.Hour)
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "dev")

	env := os.Getenv("ENV")
	testMode := false
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		testMode = true
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
		AppName:      v.GetString("appName"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     testMode,
		Build:        v.GetString("build"),
		SessionFile:  v.GetString("sessionFile"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	conf.API.BaseURL = strings.TrimRight(v.GetString("apiBaseURL"), "/")
	conf.API.Timeout = v.GetDuration("apiTimeout")
	conf.Sandbox.Address = v.GetString("sandboxAddress")
	conf.Sandbox.SecretKey = []byte(v.GetString("sandboxSecretKey"))
	conf.Sandbox.TokenTTL = v.GetDuration("sandboxTokenTTL")
	Conf = conf
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "medhistory", "session.json")
}
