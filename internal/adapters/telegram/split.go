package telegram

import "strings"

// Телеграм не принимает сообщения длиннее 4096 знаков.
const messageLimit = 4096

// SplitMessage режет текст на части не длиннее лимита Телеграма.
// Резать старается по границе строки, чтобы не рвать абзацы.
func SplitMessage(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	runes := []rune(trimmed)
	if len(runes) <= messageLimit {
		return []string{trimmed}
	}

	var parts []string
	for len(runes) > 0 {
		cut := len(runes)
		if cut > messageLimit {
			cut = lastLineBreak(runes, messageLimit)
		}
		chunk := strings.Trim(string(runes[:cut]), "\n")
		if chunk != "" {
			parts = append(parts, chunk)
		}
		runes = runes[cut:]
		for len(runes) > 0 && runes[0] == '\n' {
			runes = runes[1:]
		}
	}
	if len(parts) == 0 {
		return []string{trimmed}
	}
	return parts
}

// lastLineBreak возвращает позицию разреза не дальше limit: конец последней
// строки, целиком влезающей в лимит, либо сам limit, если переносов нет.
func lastLineBreak(runes []rune, limit int) int {
	for i := limit; i > 0; i-- {
		if runes[i-1] == '\n' {
			return i
		}
	}
	return limit
}
