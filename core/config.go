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
	Config struct {
		AppName          string
		Build            string
		Env              string // DEV (local; default), TEST, QA, PROD
		Debug            bool
		TestMode         bool
		SecretKey        string
		RollbarToken     string
		SendgridApiKey   string
		FrontendBaseURL  string
		defaultFromEmail string
		ClassroomEmail   string // recipients of assigned content

		Server   ServerConfig
		Session  SessionConfig
		Workflow WorkflowConfig
	}

	ServerConfig struct {
		Address         string
		Host            string
		DebugHost       string
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		ShutdownTimeout time.Duration
		DisableReqLogs  bool
		RateLimit       float64 // mutating requests per second, per session
		RateBurst       int
	}

	SessionConfig struct {
		TokenExpirationDelta time.Duration
		IdleTimeout          time.Duration
		SweepInterval        time.Duration
	}

	// WorkflowConfig holds the fixed delays of the simulated operations.
	WorkflowConfig struct {
		DashboardLoadDelay time.Duration
		ResponseDelay      time.Duration
		UploadDelay        time.Duration
		GenerationDelay    time.Duration
	}
)

func (c *Config) DefaultFromEmail() mail.Address {
	addr, err := mail.ParseAddress(c.defaultFromEmail)
	if err != nil {
		return mail.Address{Name: c.AppName, Address: "noreply@localhost"}
	}
	return *addr
}

// NewConfig loads the configuration from defaults, the optional `config/.env.<env>` file and the environment.
func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "EduMind")
	v.SetDefault("build", "develop")
	v.SetDefault("secretKey", "poq5-wer)enb$+57=dz&uoxh2(h!x)#*c2(#yg4h^$cegm2emy")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("sendgridApiKey", "")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("defaultFromEmail", "EduMind <noreply@localhost>")
	v.SetDefault("classroomEmail", "class@localhost")

	v.SetDefault("server.address", ":8000")
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.debugHost", ":4000")
	v.SetDefault("server.readTimeout", 5*time.Second)
	v.SetDefault("server.writeTimeout", 5*time.Second)
	v.SetDefault("server.shutdownTimeout", 5*time.Second)
	v.SetDefault("server.disableReqLogs", false)
	v.SetDefault("server.rateLimit", 5.0)
	v.SetDefault("server.rateBurst", 10)

	v.SetDefault("session.tokenExpirationDelta", 24*time.Hour)
	v.SetDefault("session.idleTimeout", 2*time.Hour)
	v.SetDefault("session.sweepInterval", 5*time.Minute)

	v.SetDefault("workflow.dashboardLoadDelay", 1000*time.Millisecond)
	v.SetDefault("workflow.responseDelay", 1000*time.Millisecond)
	v.SetDefault("workflow.uploadDelay", 1500*time.Millisecond)
	v.SetDefault("workflow.generationDelay", 2000*time.Millisecond)

	env := strings.ToUpper(os.Getenv("ENV"))
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(Getwd(), "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	return &Config{
		AppName:          v.GetString("appName"),
		Build:            v.GetString("build"),
		Env:              env,
		Debug:            v.GetBool("debug"),
		TestMode:         v.GetBool("testMode"),
		SecretKey:        v.GetString("secretKey"),
		RollbarToken:     v.GetString("rollbarToken"),
		SendgridApiKey:   v.GetString("sendgridApiKey"),
		FrontendBaseURL:  v.GetString("frontendBaseURL"),
		defaultFromEmail: v.GetString("defaultFromEmail"),
		ClassroomEmail:   v.GetString("classroomEmail"),
		Server: ServerConfig{
			Address:         v.GetString("server.address"),
			Host:            v.GetString("server.host"),
			DebugHost:       v.GetString("server.debugHost"),
			ReadTimeout:     v.GetDuration("server.readTimeout"),
			WriteTimeout:    v.GetDuration("server.writeTimeout"),
			ShutdownTimeout: v.GetDuration("server.shutdownTimeout"),
			DisableReqLogs:  v.GetBool("server.disableReqLogs"),
			RateLimit:       v.GetFloat64("server.rateLimit"),
			RateBurst:       v.GetInt("server.rateBurst"),
		},
		Session: SessionConfig{
			TokenExpirationDelta: v.GetDuration("session.tokenExpirationDelta"),
			IdleTimeout:          v.GetDuration("session.idleTimeout"),
			SweepInterval:        v.GetDuration("session.sweepInterval"),
		},
		Workflow: WorkflowConfig{
			DashboardLoadDelay: v.GetDuration("workflow.dashboardLoadDelay"),
			ResponseDelay:      v.GetDuration("workflow.responseDelay"),
			UploadDelay:        v.GetDuration("workflow.uploadDelay"),
			GenerationDelay:    v.GetDuration("workflow.generationDelay"),
		},
	}
}

// NewTestConfig returns the configuration used by tests: no delays are changed, only outputs are silenced.
func NewTestConfig() *Config {
	conf := NewConfig()
	conf.Debug = false
	conf.TestMode = true
	conf.Server.DisableReqLogs = true
	return conf
}
