package logger

import (
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"testing"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("verbose"))
}

func TestWriterLogsEachLine(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	w := Writer{Log: zap.New(core)}

	n, err := w.Write([]byte("GET / HTTP/1.1 200\n"))
	assert.NoError(t, err)
	assert.Equal(t, 19, n)
	if assert.Equal(t, 1, logs.Len()) {
		assert.Equal(t, "GET / HTTP/1.1 200", logs.All()[0].Message)
	}
}
