package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"

	"github.com/strikelab/punchkiosk/internal/pkg/models"
)

// InitConfig loads configuration from an optional file plus environment
// variables. Environment variables win, using underscore-delimited keys
// (e.g. DATABASE_HOST overrides database.host).
func InitConfig(configPath string) *models.Config {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			log.Println("error loading config from file", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	configs := &models.Config{}
	if err := v.Unmarshal(configs); err != nil {
		log.Fatalf("failed to unmarshal configuration: %v", err)
	}

	return configs
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "punchkiosk")
	v.SetDefault("app.environment", "local")
	v.SetDefault("app.debug", true)
	v.SetDefault("app.version", "development")

	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 9990)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.shutdown_timeout", 30)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_conns", 10)
	v.SetDefault("database.idle_conns", 2)

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("nsq.nsqd_address", "localhost:4150")
	v.SetDefault("nsq.consumer_channel", "kiosk-dashboard")

	v.SetDefault("jwt.expiration", 60)
	v.SetDefault("jwt.issuer", "punchkiosk")

	v.SetDefault("sumup.api_base_url", "https://api.sumup.com")
	v.SetDefault("sumup.request_timeout", 15)

	v.SetDefault("machine.activation_timeout", 10)

	// The punch wait exceeds the machine's internal 30s sensing window.
	v.SetDefault("session.payment_wait_seconds", 120)
	v.SetDefault("session.punch_wait_seconds", 45)
	v.SetDefault("session.poll_grace_seconds", 10)
	v.SetDefault("session.poll_interval_millis", 2000)

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.file_path", "")
}
