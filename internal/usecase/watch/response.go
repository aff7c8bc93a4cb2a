package watch

import (
	"encoding/json"
	"errors"
	"fmt"

	"homework-bot/internal/domain"
)

var (
	// ErrNoHomeworksKey означает, что в ответе API нет ключа homeworks.
	ErrNoHomeworksKey = errors.New("ответ API не содержит ключ 'homeworks'")
	// ErrHomeworksNotList означает, что значение homeworks не является списком работ.
	ErrHomeworksNotList = errors.New("поле homeworks в ответе API не является списком работ")
	// ErrStatusMissing означает, что в записи о работе нет ключа status.
	ErrStatusMissing = errors.New("в данных о домашней работе нет ключа 'status'")
)

// CheckResponse проверяет форму ответа API и возвращает список домашних работ.
// Пустой список — не ошибка: новых работ просто нет.
func CheckResponse(page domain.StatusPage) ([]domain.Homework, error) {
	if page.Homeworks == nil {
		return nil, ErrNoHomeworksKey
	}
	var homeworks []domain.Homework
	if err := json.Unmarshal(page.Homeworks, &homeworks); err != nil {
		return nil, ErrHomeworksNotList
	}
	// json null проходит Unmarshal, но списком не является.
	if homeworks == nil {
		return nil, ErrHomeworksNotList
	}
	return homeworks, nil
}

// FormatStatus строит текст уведомления об изменении статуса работы.
// Отсутствующее имя работы подставляется пустой строкой, отсутствующий или
// неизвестный статус — ошибка без вердикта по умолчанию.
func FormatStatus(homework domain.Homework) (string, error) {
	if homework.Status == nil {
		return "", ErrStatusMissing
	}
	verdict, err := domain.Verdict(*homework.Status)
	if err != nil {
		return "", err
	}
	var name string
	if homework.Name != nil {
		name = *homework.Name
	}
	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
