package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

type Options struct {
	Level slog.Level
	// File receives JSON records when set.
	File string
	// Journal sends records to the systemd journal.
	Journal bool
	// Console receives text records when non-nil. The interactive UI leaves
	// it unset so nothing is written over the screen it draws.
	Console io.Writer
}

type Logger struct {
	*slog.Logger
	file *os.File
}

func New(opts Options) (*Logger, error) {
	handlerOpts := &slog.HandlerOptions{Level: opts.Level}

	var handlers []slog.Handler

	var consoleHandler slog.Handler
	if opts.Console != nil {
		consoleHandler = slog.NewTextHandler(opts.Console, handlerOpts)
		handlers = append(handlers, consoleHandler)
	}

	var file *os.File
	if opts.File != "" {
		var err error
		file, err = openLogFile(opts.File)
		if err != nil {
			return nil, err
		}
		handlers = append(handlers, slog.NewJSONHandler(file, handlerOpts))
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if consoleHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = consoleHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	var handler slog.Handler
	switch len(handlers) {
	case 0:
		handler = slog.DiscardHandler
	case 1:
		handler = handlers[0]
	default:
		handler = slogmulti.Fanout(handlers...)
	}

	return &Logger{Logger: slog.New(handler), file: file}, nil
}

func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, fileMode)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	return file, nil
}

func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
}
