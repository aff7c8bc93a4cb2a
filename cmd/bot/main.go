package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"homework-bot/internal/adapters/practicum"
	"homework-bot/internal/adapters/telegram"
	"homework-bot/internal/infra/config"
	httpinfra "homework-bot/internal/infra/http"
	applog "homework-bot/internal/infra/log"
	"homework-bot/internal/infra/metrics"
	"homework-bot/internal/usecase/watch"
)

func main() {
	cfg := config.Load()
	logger := applog.NewLogger(cfg.AppEnv, cfg.LogFile)

	if missing := cfg.Missing(); len(missing) > 0 {
		// Без секретов цикл не стартует, выход штатный.
		logger.WithLevel(zerolog.FatalLevel).
			Str("vars", strings.Join(missing, ", ")).
			Msg("bot: требуемые переменные окружения отсутствуют")
		os.Exit(0)
	}

	metrics.MustRegister(prometheus.DefaultRegisterer)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opsServer := httpinfra.NewServer(logger.With().Str("component", "ops").Logger())
	opsServer.Start(ctx, cfg.OpsAddr)

	botAPI, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logger.Fatal().Err(err).Msg("bot: не удалось создать бота")
	}

	notifier := telegram.NewNotifier(botAPI, cfg.Telegram.ChatID, logger.With().Str("component", "telegram").Logger())
	source := practicum.NewClient(cfg.Practicum.Token, cfg.Practicum.Endpoint, cfg.Practicum.Timeout)

	fromDate := time.Now().Add(-cfg.Poll.Lookback).Unix()
	service := watch.NewService(source, notifier, logger.With().Str("component", "watch").Logger(), cfg.Poll.Interval, fromDate)

	logger.Info().Int64("from_date", fromDate).Dur("interval", cfg.Poll.Interval).Msg("bot: запуск цикла опроса")
	service.Run(ctx)
	logger.Info().Msg("bot: остановлен по сигналу")
}
