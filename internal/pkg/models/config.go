package models

// Config represents application configuration
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	NSQ      NSQConfig      `mapstructure:"nsq"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	SumUp    SumUpConfig    `mapstructure:"sumup"`
	Machine  MachineConfig  `mapstructure:"machine"`
	Session  SessionConfig  `mapstructure:"session"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Logger   LoggerConfig   `mapstructure:"logger"`
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
	Debug       bool   `mapstructure:"debug"`
	Version     string `mapstructure:"version"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	ReadTimeout     int    `mapstructure:"read_timeout"`
	WriteTimeout    int    `mapstructure:"write_timeout"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string `mapstructure:"host"`
	Port      int    `mapstructure:"port"`
	Username  string `mapstructure:"username"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	SSLMode   string `mapstructure:"ssl_mode"`
	MaxConns  int    `mapstructure:"max_conns"`
	IdleConns int    `mapstructure:"idle_conns"`
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// NSQConfig contains NSQ connection configuration
type NSQConfig struct {
	NSQDAddress     string   `mapstructure:"nsqd_address"`
	LookupdAddrs    []string `mapstructure:"lookupd_addrs"`
	ConsumerChannel string   `mapstructure:"consumer_channel"`
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string `mapstructure:"secret"`
	Expiration int    `mapstructure:"expiration"` // in minutes
	Issuer     string `mapstructure:"issuer"`
}

// SumUpConfig contains payment provider credentials.
// Test and live credentials are both loaded; the pair actually used is
// selected by the explicit test-mode flag carried on each request, never
// by ambient state.
type SumUpConfig struct {
	APIBaseURL       string `mapstructure:"api_base_url"`
	TestAPIKey       string `mapstructure:"test_api_key"`
	TestMerchantCode string `mapstructure:"test_merchant_code"`
	LiveAPIKey       string `mapstructure:"live_api_key"`
	LiveMerchantCode string `mapstructure:"live_merchant_code"`
	RequestTimeout   int    `mapstructure:"request_timeout"` // in seconds
}

// MachineConfig contains the physical punch machine endpoint configuration
type MachineConfig struct {
	Endpoint          string `mapstructure:"endpoint"`
	ActivationTimeout int    `mapstructure:"activation_timeout"` // in seconds
}

// SessionConfig contains the per-session timeout windows.
// PunchWaitSeconds must exceed the machine's internal sensing timeout so
// a legitimate late report is not missed.
type SessionConfig struct {
	PaymentWaitSeconds int `mapstructure:"payment_wait_seconds"`
	PunchWaitSeconds   int `mapstructure:"punch_wait_seconds"`
	PollGraceSeconds   int `mapstructure:"poll_grace_seconds"`
	PollIntervalMillis int `mapstructure:"poll_interval_millis"`
}

// AdminConfig contains admin dashboard credentials
type AdminConfig struct {
	Username     string `mapstructure:"username"`
	PasswordHash string `mapstructure:"password_hash"` // bcrypt hash
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	FilePath string `mapstructure:"file_path"`
}
