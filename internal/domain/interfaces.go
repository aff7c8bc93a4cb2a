package domain

import "context"

// StatusSource выполняет запрос статусов домашних работ начиная с метки времени.
type StatusSource interface {
	Fetch(ctx context.Context, fromDate int64) (StatusPage, error)
}

// Notifier доставляет текстовое сообщение в чат пользователя.
type Notifier interface {
	Send(ctx context.Context, text string) error
}
