package watch

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"homework-bot/internal/domain"
)

func TestCheckResponseMissingKey(t *testing.T) {
	_, err := CheckResponse(domain.StatusPage{})
	if !errors.Is(err, ErrNoHomeworksKey) {
		t.Fatalf("ожидали ErrNoHomeworksKey, получили %v", err)
	}
}

func TestCheckResponseWrongShape(t *testing.T) {
	shapes := []string{`123`, `{"homework_name":"hw1"}`, `"hw1"`, `null`}
	for _, raw := range shapes {
		_, err := CheckResponse(domain.StatusPage{Homeworks: json.RawMessage(raw)})
		if !errors.Is(err, ErrHomeworksNotList) {
			t.Fatalf("для %s ожидали ErrHomeworksNotList, получили %v", raw, err)
		}
	}
}

func TestCheckResponseEmptyList(t *testing.T) {
	homeworks, err := CheckResponse(domain.StatusPage{Homeworks: json.RawMessage(`[]`)})
	if err != nil {
		t.Fatalf("пустой список не ошибка: %v", err)
	}
	if len(homeworks) != 0 {
		t.Fatalf("ожидали пустой список, получили %d записей", len(homeworks))
	}
}

func TestCheckResponseReturnsHomeworks(t *testing.T) {
	raw := json.RawMessage(`[{"homework_name":"hw1","status":"approved"},{"homework_name":"hw2","status":"rejected"}]`)
	homeworks, err := CheckResponse(domain.StatusPage{Homeworks: raw})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	if len(homeworks) != 2 {
		t.Fatalf("ожидали 2 записи, получили %d", len(homeworks))
	}
	if homeworks[0].Name == nil || *homeworks[0].Name != "hw1" {
		t.Fatalf("ожидали имя первой работы hw1")
	}
	if homeworks[0].Status == nil || *homeworks[0].Status != "approved" {
		t.Fatalf("ожидали статус первой работы approved")
	}
}

func TestFormatStatus(t *testing.T) {
	name := "hw1"
	status := domain.StatusApproved
	message, err := FormatStatus(domain.Homework{Name: &name, Status: &status})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	want := `Изменился статус проверки работы "hw1". Работа проверена: ревьюеру всё понравилось. Ура!`
	if message != want {
		t.Fatalf("получили %q, ожидали %q", message, want)
	}
}

func TestFormatStatusWithoutName(t *testing.T) {
	status := domain.StatusReviewing
	message, err := FormatStatus(domain.Homework{Status: &status})
	if err != nil {
		t.Fatalf("не ожидали ошибку: %v", err)
	}
	want := `Изменился статус проверки работы "". Работа взята на проверку ревьюером.`
	if message != want {
		t.Fatalf("получили %q, ожидали %q", message, want)
	}
}

func TestFormatStatusMissingStatus(t *testing.T) {
	name := "hw1"
	_, err := FormatStatus(domain.Homework{Name: &name})
	if !errors.Is(err, ErrStatusMissing) {
		t.Fatalf("ожидали ErrStatusMissing, получили %v", err)
	}
}

func TestFormatStatusUnknownStatus(t *testing.T) {
	name := "hw1"
	status := "checked"
	_, err := FormatStatus(domain.Homework{Name: &name, Status: &status})
	var unknown *domain.UnknownStatusError
	if !errors.As(err, &unknown) {
		t.Fatalf("ожидали UnknownStatusError, получили %v", err)
	}
	if !strings.Contains(err.Error(), "checked") {
		t.Fatalf("ошибка должна называть статус: %q", err.Error())
	}
}
