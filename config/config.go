package config

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Ledger struct {
		// LockTimeout bounds how long an operation waits for an account lock.
		LockTimeout time.Duration `mapstructure:"lock_timeout"`
	} `mapstructure:"ledger"`
	Database struct {
		Enabled  bool   `mapstructure:"enabled"`
		Migrate  bool   `mapstructure:"migrate"`
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`
	Redis struct {
		Enabled  bool          `mapstructure:"enabled"`
		Host     string        `mapstructure:"host"`
		Port     string        `mapstructure:"port"`
		Password string        `mapstructure:"password"`
		DB       int           `mapstructure:"db"`
		TTL      time.Duration `mapstructure:"ttl"`
	} `mapstructure:"redis"`
	JWT struct {
		SecretKey string `mapstructure:"secret_key"`
	} `mapstructure:"jwt"`
}

var AppConfig Config

// ErrJWTSecretAusente means jwt.secret_key is blank; no token is issued or accepted then.
var ErrJWTSecretAusente = errors.New("jwt.secret_key is not configured")

// JWTKey returns the signing key, or ErrJWTSecretAusente when it is blank.
func (c Config) JWTKey() ([]byte, error) {
	if strings.TrimSpace(c.JWT.SecretKey) == "" {
		return nil, ErrJWTSecretAusente
	}
	return []byte(c.JWT.SecretKey), nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("ledger.lock_timeout", 2*time.Second)
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.migrate", true)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "bytebank")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.ttl", 10*time.Minute)
	v.SetDefault("jwt.secret_key", "")
}

// LoadConfig reads config.yml from path. A missing file is not an error:
// defaults and environment variables (SERVER_PORT, LEDGER_LOCK_TIMEOUT, ...) still apply.
func LoadConfig(path string) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	setDefaults(v)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			log.Fatalf("Error reading config file, %s", err)
		}
	}

	if err := v.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Unable to decode into struct, %v", err)
	}
}
