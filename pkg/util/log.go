package util

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// prefixFormatter puts a fixed prefix in front of every formatted entry.
type prefixFormatter struct {
	prefix string
	inner  log.Formatter
}

func (f *prefixFormatter) Format(e *log.Entry) ([]byte, error) {
	b, err := f.inner.Format(e)
	if err != nil {
		return nil, err
	}

	return append([]byte(f.prefix), b...), nil
}

// SetupLog points the standard logger at w with prefix on every line.
func SetupLog(w io.Writer, prefix string, debug bool) {
	log.SetOutput(w)
	log.SetFormatter(&prefixFormatter{
		prefix: prefix,
		inner:  &log.TextFormatter{DisableColors: true, FullTimestamp: true},
	})

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// InitLog sends log output to the file at dest. The terminal belongs to the
// game, so nothing is written to stdout or stderr.
func InitLog(dest, prefix string, debug bool) (io.Closer, error) {
	f, err := os.OpenFile(dest, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	SetupLog(f, prefix, debug)

	return f, nil
}
