package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	ServerConfig struct {
		Address         string
		DebugHost       string
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
	}

	BackendConfig struct {
		BaseURL  string
		InMemory bool
		Timeout  time.Duration // 0: no timeout
	}

	ReportsConfig struct {
		CacheTTL time.Duration
	}

	MailConfig struct {
		DefaultFromEmail mail.Address
		SendgridApiKey   string
	}

	Config struct {
		Env          string
		Build        string
		Debug        bool
		TestMode     bool
		AppName      string
		RollbarToken string
		Server       ServerConfig
		Backend      BackendConfig
		Reports      ReportsConfig
		Mail         MailConfig
	}
)

// NewConfig loads the configuration from defaults, the optional `config/.env.<env>` file and the environment.
func NewConfig() *Config {
	conf := viper.New()

	// defaults
	conf.SetTypeByDefaultValue(true)
	conf.SetDefault("debug", true)
	conf.SetDefault("testMode", false)
	conf.SetDefault("appName", "Gestión Académica")
	conf.SetDefault("build", "develop")
	conf.SetDefault("rollbarToken", "")
	conf.SetDefault("server.address", ":8000")
	conf.SetDefault("server.debugHost", ":4000")
	conf.SetDefault("server.shutdownTimeout", 5*time.Second)
	conf.SetDefault("server.disableReqLogs", false)
	conf.SetDefault("backend.baseURL", "http://localhost:8080")
	conf.SetDefault("backend.inMemory", false)
	conf.SetDefault("backend.timeout", time.Duration(0))
	conf.SetDefault("reports.cacheTTL", 30*time.Second)
	conf.SetDefault("mail.defaultFromEmail", "noreply@localhost")
	conf.SetDefault("mail.sendgridApiKey", "")

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		conf.SetDefault("testMode", true)
	}
	conf.SetEnvPrefix(env)
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(configDir(), ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	conf.AutomaticEnv()

	return &Config{
		Env:          env,
		Build:        conf.GetString("build"),
		Debug:        conf.GetBool("debug"),
		TestMode:     conf.GetBool("testMode"),
		AppName:      conf.GetString("appName"),
		RollbarToken: conf.GetString("rollbarToken"),
		Server: ServerConfig{
			Address:         conf.GetString("server.address"),
			DebugHost:       conf.GetString("server.debugHost"),
			ShutdownTimeout: conf.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  conf.GetBool("server.disableReqLogs"),
		},
		Backend: BackendConfig{
			BaseURL:  strings.TrimRight(conf.GetString("backend.baseURL"), "/"),
			InMemory: conf.GetBool("backend.inMemory"),
			Timeout:  conf.GetDuration("backend.timeout"),
		},
		Reports: ReportsConfig{
			CacheTTL: conf.GetDuration("reports.cacheTTL"),
		},
		Mail: MailConfig{
			DefaultFromEmail: mail.Address{
				Name:    conf.GetString("appName"),
				Address: conf.GetString("mail.defaultFromEmail"),
			},
			SendgridApiKey: conf.GetString("mail.sendgridApiKey"),
		},
	}
}

// configDir is where the .env files live; CONFIG_DIR overrides the default "./config".
func configDir() string {
	if dir := os.Getenv("CONFIG_DIR"); dir != "" {
		return dir
	}
	wd, err := os.Getwd()
	if err != nil {
		log.Fatal(err)
	}
	return filepath.Join(wd, "config")
}
