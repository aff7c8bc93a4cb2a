package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger создаёт настроенный zerolog с выводом в консоль и в файл логов.
// Консоль получает человекочитаемые строки, файл — поток JSON. Если файл
// открыть не удалось, остаётся только консоль.
func NewLogger(appEnv, filePath string) zerolog.Logger {
	level := zerolog.InfoLevel
	if appEnv == "dev" {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339

	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}}
	if filePath != "" {
		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log: не удалось открыть файл логов %q: %v\n", filePath, err)
		} else {
			writers = append(writers, zerolog.SyncWriter(file))
		}
	}
	return zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger().Level(level)
}
