package hzlog

import (
	"io"
)

func NopLogger() *Logger {
	return MustBuild(DefaultConfig(), io.Discard)
}
