package watch

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"homework-bot/internal/domain"
	"homework-bot/internal/infra/metrics"
)

const (
	outcomeSent  = "sent"
	outcomeEmpty = "empty"
	outcomeError = "error"
)

// Service — долгоживущий цикл опроса статусов домашних работ. Владеет меткой
// времени from_date и текстом последнего уведомления об ошибке; оба поля
// меняются только между циклами, конкурентного доступа к ним нет.
type Service struct {
	source   domain.StatusSource
	notifier domain.Notifier
	log      zerolog.Logger

	interval  time.Duration
	fromDate  int64
	lastError string
}

// NewService создаёт сервис опроса. fromDate — нижняя граница первого запроса,
// дальше метку двигает только current_date из успешного ответа сервера.
func NewService(source domain.StatusSource, notifier domain.Notifier, logger zerolog.Logger, interval time.Duration, fromDate int64) *Service {
	return &Service{
		source:   source,
		notifier: notifier,
		log:      logger,
		interval: interval,
		fromDate: fromDate,
	}
}

// Run крутит циклы опроса до отмены контекста. Ошибка цикла не останавливает
// цикл: пауза между попытками всегда одна и та же, без бэкоффа.
func (s *Service) Run(ctx context.Context) {
	for {
		s.runCycle(ctx)
		select {
		case <-ctx.Done():
			return
		case <-time.After(s.interval):
		}
	}
}

// runCycle выполняет один цикл: запрос, разбор, уведомление, продвижение метки.
// Метка двигается только после полностью успешного цикла.
func (s *Service) runCycle(ctx context.Context) {
	page, err := s.source.Fetch(ctx, s.fromDate)
	if err != nil {
		s.reportFailure(ctx, err)
		return
	}
	homeworks, err := CheckResponse(page)
	if err != nil {
		s.reportFailure(ctx, err)
		return
	}
	if len(homeworks) == 0 {
		s.log.Info().Int64("from_date", s.fromDate).Msg("домашние задания не найдены")
		metrics.IncPollCycle(outcomeEmpty)
	} else {
		// Обрабатывается только первая запись ответа: одно уведомление
		// за цикл, остальные записи этого окна не отправляются.
		message, err := FormatStatus(homeworks[0])
		if err != nil {
			s.reportFailure(ctx, err)
			return
		}
		if err := s.notifier.Send(ctx, message); err != nil {
			// Сбой доставки не считается сбоем цикла, иначе он породил
			// бы уведомление о невозможности отправить уведомление.
			s.log.Error().Err(err).Msg("сбой отправки уведомления о статусе")
		}
		metrics.IncPollCycle(outcomeSent)
	}
	s.advance(page)
}

// reportFailure логирует сбой цикла и шлёт уведомление, если его текст
// отличается от предыдущего. Повторные одинаковые сбои чат не засоряют.
func (s *Service) reportFailure(ctx context.Context, cause error) {
	metrics.IncPollCycle(outcomeError)
	s.log.Error().Err(cause).Int64("from_date", s.fromDate).Msg("цикл опроса завершился ошибкой")

	message := fmt.Sprintf("Сбой в работе программы: %v", cause)
	if message == s.lastError {
		return
	}
	if err := s.notifier.Send(ctx, message); err != nil {
		s.log.Error().Err(err).Msg("сбой отправки уведомления об ошибке")
	}
	s.lastError = message
}

func (s *Service) advance(page domain.StatusPage) {
	if page.CurrentDate == nil {
		return
	}
	s.fromDate = *page.CurrentDate
	metrics.SetWatermark(s.fromDate)
}
