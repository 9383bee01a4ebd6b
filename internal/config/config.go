package config

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/vfg2006/ads-manager-api/pkg/log"
)

// Config carrega todas as configurações da aplicação a partir do
// ambiente. Valores padrão cobrem o desenvolvimento local.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Meta     MetaConfig     `mapstructure:"meta"`
	AWS      AWSConfig      `mapstructure:"aws"`
	Stripe   StripeConfig   `mapstructure:"stripe"`
	Worker   WorkerConfig   `mapstructure:"worker"`
	Sync     SyncConfig     `mapstructure:"sync"`
}

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
}

type MetaConfig struct {
	URL        string `mapstructure:"url"`
	APIVersion string `mapstructure:"api_version"`
}

type AWSConfig struct {
	Region        string `mapstructure:"region"`
	TaskQueueURL  string `mapstructure:"task_queue_url"`
	UploadsBucket string `mapstructure:"uploads_bucket"`
	UserPoolID    string `mapstructure:"user_pool_id"`
}

type StripeConfig struct {
	APIKey string `mapstructure:"api_key"`
}

type WorkerConfig struct {
	Enabled      bool `mapstructure:"enabled"`
	PollInterval int  `mapstructure:"poll_interval_seconds"`
}

type SyncConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	CronSchedule string `mapstructure:"cron_schedule"`
}

// Load lê o .env quando presente e monta a configuração via variáveis
// de ambiente com o prefixo ADS
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.L.Info("Arquivo .env não encontrado, usando variáveis de ambiente")
	}

	v := viper.New()
	v.SetEnvPrefix("ADS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)
	bindEnvs(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "falha ao carregar configurações")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "postgres")
	v.SetDefault("database.name", "ads_manager")
	v.SetDefault("database.sslmode", "disable")

	v.SetDefault("meta.url", "https://graph.facebook.com")
	v.SetDefault("meta.api_version", "v18.0")

	v.SetDefault("aws.region", "us-east-1")

	v.SetDefault("worker.enabled", true)
	v.SetDefault("worker.poll_interval_seconds", 5)

	v.SetDefault("sync.enabled", true)
	v.SetDefault("sync.cron_schedule", "0 3 * * *")
}

// bindEnvs força o viper a enxergar as chaves aninhadas no ambiente
func bindEnvs(v *viper.Viper) {
	keys := []string{
		"server.port",
		"database.host", "database.port", "database.user",
		"database.password", "database.name", "database.sslmode",
		"meta.url", "meta.api_version",
		"aws.region", "aws.task_queue_url", "aws.uploads_bucket", "aws.user_pool_id",
		"stripe.api_key",
		"worker.enabled", "worker.poll_interval_seconds",
		"sync.enabled", "sync.cron_schedule",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}
