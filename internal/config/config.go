package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App         App         `mapstructure:",squash"`
	Server      Server      `mapstructure:",squash"`
	Backend     Backend     `mapstructure:",squash"`
	Auth        Auth        `mapstructure:",squash"`
	Dashboard   Dashboard   `mapstructure:",squash"`
	Chart       Chart       `mapstructure:",squash"`
	AutoRefresh AutoRefresh `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

// Backend é a API de vendas consultada pelo dashboard
type Backend struct {
	URL     string        `mapstructure:"dashboard_api_url"`
	Token   string        `mapstructure:"dashboard_api_token"`
	Timeout time.Duration `mapstructure:"dashboard_api_timeout"`
}

type Auth struct {
	Secret  string `mapstructure:"auth_secret"`
	Enabled bool   `mapstructure:"auth_enabled"`
}

type Dashboard struct {
	DefaultRange string `mapstructure:"dashboard_default_range"`
	Locale       string `mapstructure:"dashboard_locale"`
	Currency     string `mapstructure:"dashboard_currency"`
}

type Chart struct {
	Format            string `mapstructure:"chart_format"`
	Width             int    `mapstructure:"chart_width"`
	Height            int    `mapstructure:"chart_height"`
	DecimationSamples int    `mapstructure:"chart_decimation_samples"`
}

type AutoRefresh struct {
	CronSchedule string `mapstructure:"auto_refresh_cron"`
	Enabled      bool   `mapstructure:"auto_refresh_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("APP_ENV", "")

	viper.SetDefault("DASHBOARD_API_URL", "http://localhost:3000/api")
	viper.SetDefault("DASHBOARD_API_TOKEN", "")
	viper.SetDefault("DASHBOARD_API_TIMEOUT", "30s")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_ENABLED", true)

	viper.SetDefault("DASHBOARD_DEFAULT_RANGE", "7d")
	viper.SetDefault("DASHBOARD_LOCALE", "en-US")
	viper.SetDefault("DASHBOARD_CURRENCY", "USD")

	viper.SetDefault("CHART_FORMAT", "png")
	viper.SetDefault("CHART_WIDTH", 640)
	viper.SetDefault("CHART_HEIGHT", 320)
	viper.SetDefault("CHART_DECIMATION_SAMPLES", 250)

	viper.SetDefault("AUTO_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("AUTO_REFRESH_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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

	if config.Chart.Width <= 0 {
		config.Chart.Width = 640
	}
	if config.Chart.Height <= 0 {
		config.Chart.Height = 320
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
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
