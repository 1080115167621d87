package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var (
	ErrReadConfig    = errors.New("error reading config")
	ErrInvalidConfig = errors.New("invalid config")
)

const EnvPrefix = "OPSDASH"

type Config struct {
	HTTP  HTTP  `mapstructure:"http"`
	DB    DB    `mapstructure:"db"`
	Sync  Sync  `mapstructure:"sync"`
	Kafka Kafka `mapstructure:"kafka"`
	Log   Log   `mapstructure:"log"`
}

type HTTP struct {
	Addr        string   `mapstructure:"addr" validate:"required"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

type DB struct {
	ConnString     string `mapstructure:"conn_string" validate:"required"`
	MigrationsPath string `mapstructure:"migrations_path" validate:"required"`
}

type Sync struct {
	BatchSize        int           `mapstructure:"batch_size" validate:"gte=1"`
	MaxErrorMessages int           `mapstructure:"max_error_messages" validate:"gte=1"`
	Interval         time.Duration `mapstructure:"interval" validate:"gte=0"`
	FetchTimeout     time.Duration `mapstructure:"fetch_timeout" validate:"gt=0"`
	APIKey           string        `mapstructure:"api_key"`
	Devices          Source        `mapstructure:"devices"`
	TopUps           Source        `mapstructure:"topups"`
}

// Source locates a sheet either by CSV export URL or by spreadsheet ID for
// the Sheets API. URL wins when both are set.
type Source struct {
	URL           string `mapstructure:"url" validate:"omitempty,url"`
	SpreadsheetID string `mapstructure:"spreadsheet_id"`
	Range         string `mapstructure:"range"`
}

func (s Source) Configured() bool {
	return s.URL != "" || s.SpreadsheetID != ""
}

type Kafka struct {
	Brokers     []string `mapstructure:"brokers"`
	ReportTopic string   `mapstructure:"report_topic" validate:"required_with=Brokers"`
}

func (k Kafka) Enabled() bool {
	return len(k.Brokers) > 0 && k.ReportTopic != ""
}

type Log struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.cors_origins", []string{"http://localhost:3000"})
	v.SetDefault("db.conn_string", "")
	v.SetDefault("db.migrations_path", "./internal/db/migrations")
	v.SetDefault("sync.batch_size", 10)
	v.SetDefault("sync.max_error_messages", 5)
	v.SetDefault("sync.interval", time.Duration(0))
	v.SetDefault("sync.fetch_timeout", 30*time.Second)
	v.SetDefault("sync.api_key", "")
	v.SetDefault("sync.devices.url", "")
	v.SetDefault("sync.devices.spreadsheet_id", "")
	v.SetDefault("sync.devices.range", "")
	v.SetDefault("sync.topups.url", "")
	v.SetDefault("sync.topups.spreadsheet_id", "")
	v.SetDefault("sync.topups.range", "")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.report_topic", "")
	v.SetDefault("log.level", "info")
}

// Load reads defaults, then the optional file at path, then OPSDASH_*
// environment variables.
func Load(path string) (Config, error) {
	const fn = "config:Load"
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%s:%w:%w", fn, ErrReadConfig, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s:%w:%w", fn, ErrReadConfig, err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("%s:%w:%w", fn, ErrInvalidConfig, err)
	}
	return cfg, nil
}
