package domain

import "fmt"

// Статусы проверки, которые присылает API.
const (
	StatusApproved  = "approved"
	StatusReviewing = "reviewing"
	StatusRejected  = "rejected"
)

var verdicts = map[string]string{
	StatusApproved:  "Работа проверена: ревьюеру всё понравилось. Ура!",
	StatusReviewing: "Работа взята на проверку ревьюером.",
	StatusRejected:  "Работа проверена: у ревьюера есть замечания.",
}

// UnknownStatusError возвращается при статусе, которого нет в каталоге вердиктов.
type UnknownStatusError struct {
	Status string
}

func (e *UnknownStatusError) Error() string {
	return fmt.Sprintf("неизвестный статус домашней работы: %q", e.Status)
}

// Verdict возвращает текст вердикта для статуса проверки.
// Статус вне каталога — ошибка, подмены вердикта по умолчанию нет.
func Verdict(status string) (string, error) {
	verdict, ok := verdicts[status]
	if !ok {
		return "", &UnknownStatusError{Status: status}
	}
	return verdict, nil
}
