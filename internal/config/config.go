package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App                 App                 `mapstructure:",squash"`
	Server              Server              `mapstructure:",squash"`
	Storage             Storage             `mapstructure:",squash"`
	Database            Database            `mapstructure:",squash"`
	MonthRollover       MonthRollover       `mapstructure:",squash"`
	SummarySnapshotSync SummarySnapshotSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// IsDevelopment indica se a aplicação roda em ambiente local
func (a App) IsDevelopment() bool {
	return a.Env == "" || a.Env == "development"
}

type Server struct {
	Host               string        `mapstructure:"host"`
	Port               string        `mapstructure:"port"`
	CORSAllowedOrigins []string      `mapstructure:"cors_allowed_origins"`
	RateLimitRPS       float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst     int           `mapstructure:"rate_limit_burst"`
	ShutdownTimeout    time.Duration `mapstructure:"shutdown_timeout"`
}

type Storage struct {
	DataDir  string        `mapstructure:"data_dir"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

type Database struct {
	Enabled      bool   `mapstructure:"snapshot_enabled"`
	DSN          string `mapstructure:"-"`
	Driver       string `mapstructure:"database_driver"`
	Password     string `mapstructure:"database_password"`
	URL          string `mapstructure:"database_url"`
	User         string `mapstructure:"database_user"`
	MaxOpenConns int    `mapstructure:"database_max_open_conns"`
	MaxIdleConns int    `mapstructure:"database_max_idle_conns"`
}

type MonthRollover struct {
	CronSchedule string `mapstructure:"month_rollover_cron"`
	Enabled      bool   `mapstructure:"month_rollover_enabled"`
}

type SummarySnapshotSync struct {
	CronSchedule      string `mapstructure:"snapshot_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"snapshot_sync_max_concurrent_jobs"`
	MonthLookBack     int    `mapstructure:"snapshot_sync_month_lookback"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3001)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("SHUTDOWN_TIMEOUT", "30s")

	viper.SetDefault("DATA_DIR", filepath.Join("data", "months"))
	viper.SetDefault("CACHE_TTL", "30s")

	viper.SetDefault("SNAPSHOT_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/econoapp?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_MAX_IDLE_CONNS", 2)

	viper.SetDefault("MONTH_ROLLOVER_CRON", "5 0 1 * *") // Dia 1 de cada mês às 00:05
	viper.SetDefault("MONTH_ROLLOVER_ENABLED", true)

	viper.SetDefault("SNAPSHOT_SYNC_CRON", "0 2 * * *")      // Todos os dias às 2h da manhã
	viper.SetDefault("SNAPSHOT_SYNC_MAX_CONCURRENT_JOBS", 3) // 3 meses processados em paralelo
	viper.SetDefault("SNAPSHOT_SYNC_MONTH_LOOKBACK", 2)      // Mês corrente e o anterior

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	if config.SummarySnapshotSync.MaxConcurrentJobs < 1 {
		config.SummarySnapshotSync.MaxConcurrentJobs = 1
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
