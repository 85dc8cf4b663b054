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
	App     App     `mapstructure:",squash"`
	Server  Server  `mapstructure:",squash"`
	Cors    Cors    `mapstructure:",squash"`
	Metrics Metrics `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host              string        `mapstructure:"host"`
	Port              string        `mapstructure:"port"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	MaxBodyBytes      int64         `mapstructure:"max_body_bytes"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

type Metrics struct {
	Enabled bool   `mapstructure:"metrics_enabled"`
	Path    string `mapstructure:"metrics_path"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 5000)

	viper.SetDefault("READ_HEADER_TIMEOUT", "2s")
	viper.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	viper.SetDefault("MAX_BODY_BYTES", 1<<20) // 1 MiB

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("METRICS_ENABLED", true)
	viper.SetDefault("METRICS_PATH", "/metrics")

	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env): ", err)
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

	if config.Metrics.Path == "" {
		config.Metrics.Path = "/metrics"
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual: ", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de: ", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
