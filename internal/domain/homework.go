package domain

import "encoding/json"

// Homework описывает одну запись о домашней работе из ответа API Практикума.
// Поля указателями: отсутствие ключа в JSON отличимо от пустого значения.
type Homework struct {
	Name   *string `json:"homework_name"`
	Status *string `json:"status"`
}

// StatusPage представляет ответ API на запрос статусов с метки from_date.
// Homeworks остаётся сырым JSON: валидатор сам различает отсутствующий ключ
// и значение неверной формы.
type StatusPage struct {
	Homeworks   json.RawMessage `json:"homeworks"`
	CurrentDate *int64          `json:"current_date"`
}
