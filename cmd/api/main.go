package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/memotag-sales-api/internal/api"
	"github.com/vfg2006/memotag-sales-api/internal/config"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/advising"
	"github.com/vfg2006/memotag-sales-api/internal/usecases/analyzing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	analyzer := analyzing.NewService()
	advisor := advising.NewService(analyzer)

	server, err := api.New(cfg, advisor)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
