// MIT License
//
// Copyright (c) 2022-2026 GoAkt Team
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZap(t *testing.T) {
	t.Run("With unknown level writes debug entries", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(Level(42), buffer)
		require.True(t, logger.Enabled(DebugLevel))

		logger.Debug("test debug")
		msg, lvl := extract(t, buffer.Bytes())
		assert.Equal(t, "test debug", msg)
		assert.Equal(t, DebugLevel.String(), lvl)
	})
	t.Run("With debug level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(DebugLevel, buffer)

		logger.Debugf("resolved %d topic name(s)", 3)
		msg, lvl := extract(t, buffer.Bytes())
		assert.Equal(t, "resolved 3 topic name(s)", msg)
		assert.Equal(t, "debug", lvl)
	})
	t.Run("With info level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)

		logger.Debug("dropped")
		require.Empty(t, buffer.String())

		logger.Infof("topic %s deleted", "alpha")
		msg, lvl := extract(t, buffer.Bytes())
		assert.Equal(t, "topic alpha deleted", msg)
		assert.Equal(t, "info", lvl)

		buffer.Reset()
		logger.Info("mock controller is no longer active")
		msg, _ = extract(t, buffer.Bytes())
		assert.Equal(t, "mock controller is no longer active", msg)
	})
	t.Run("With warn level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(WarningLevel, buffer)

		logger.Info("dropped")
		require.Empty(t, buffer.String())

		logger.Warn("not implemented")
		msg, lvl := extract(t, buffer.Bytes())
		assert.Equal(t, "not implemented", msg)
		assert.Equal(t, "warn", lvl)

		buffer.Reset()
		logger.Warnf("rejected deletion of %d topic(s)", 2)
		msg, _ = extract(t, buffer.Bytes())
		assert.Equal(t, "rejected deletion of 2 topic(s)", msg)
	})
	t.Run("With error level", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(ErrorLevel, buffer)

		logger.Warnf("dropped %d", 1)
		require.Empty(t, buffer.String())

		logger.Errorf("failed: %s", "boom")
		msg, lvl := extract(t, buffer.Bytes())
		assert.Equal(t, "failed: boom", msg)
		assert.Equal(t, "error", lvl)

		buffer.Reset()
		logger.Error("boom")
		msg, _ = extract(t, buffer.Bytes())
		assert.Equal(t, "boom", msg)
	})
	t.Run("Enabled", func(t *testing.T) {
		logger := NewZap(WarningLevel, new(bytes.Buffer))
		assert.False(t, logger.Enabled(DebugLevel))
		assert.False(t, logger.Enabled(InfoLevel))
		assert.True(t, logger.Enabled(WarningLevel))
		assert.True(t, logger.Enabled(ErrorLevel))
	})
}

func TestZapWith(t *testing.T) {
	t.Run("adds structured fields to output", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With(
			"topic", "alpha",
			"topicID", uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8"),
			"epoch", int64(1),
			"cause", errors.New("boom"),
		).Info("started")

		var m map[string]any
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &m))
		assert.Equal(t, "alpha", m["topic"])
		assert.Equal(t, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", m["topicID"])
		assert.EqualValues(t, 1, m["epoch"])
		assert.Equal(t, "boom", m["cause"])
	})
	t.Run("returns same logger when keyValues empty", func(t *testing.T) {
		logger := NewZap(InfoLevel, new(bytes.Buffer))
		assert.Same(t, logger, logger.With())
	})
	t.Run("odd keyValues uses _ for orphan", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With("a", 1, "orphan").Info("msg")

		var m map[string]any
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &m))
		require.Contains(t, m, "a")
		assert.Equal(t, "orphan", m["_"])
	})
	t.Run("skips non-string keys", func(t *testing.T) {
		buffer := new(bytes.Buffer)
		logger := NewZap(InfoLevel, buffer)
		logger.With(42, "ignored", "k", "v").Info("msg")

		var m map[string]any
		require.NoError(t, json.Unmarshal(buffer.Bytes(), &m))
		require.Contains(t, m, "k")
		require.NotContains(t, m, "ignored")
	})
}

func TestZapFlush(t *testing.T) {
	file, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer file.Close()

	logger := NewZap(InfoLevel, file, os.Stdout, new(bytes.Buffer))
	require.Len(t, logger.files, 1)

	logger.With("k", "v").Info("msg")
	require.NoError(t, logger.Flush())

	content, err := os.ReadFile(file.Name())
	require.NoError(t, err)
	assert.Contains(t, string(content), `"msg":"msg"`)
}

func TestDiscardLogger(t *testing.T) {
	logger := DiscardLogger
	logger.Debug("x")
	logger.Debugf("%s", "x")
	logger.Info("x")
	logger.Infof("%s", "x")
	logger.Warn("x")
	logger.Warnf("%s", "x")
	logger.Error("x")
	logger.Errorf("%s", "x")

	for _, level := range []Level{DebugLevel, InfoLevel, WarningLevel, ErrorLevel} {
		assert.False(t, logger.Enabled(level), level.String())
	}
	assert.Equal(t, DiscardLogger, logger.With("k", "v"))
	assert.NoError(t, logger.Flush())
}

func TestLevelString(t *testing.T) {
	testCases := map[Level]string{
		DebugLevel:   "debug",
		InfoLevel:    "info",
		WarningLevel: "warn",
		ErrorLevel:   "error",
		Level(-1):    "invalid",
		Level(42):    "invalid",
	}
	for level, expected := range testCases {
		assert.Equal(t, expected, level.String())
	}
}

func extract(t *testing.T, data []byte) (msg, level string) {
	t.Helper()
	var entry struct {
		Msg   string `json:"msg"`
		Level string `json:"level"`
	}
	require.NoError(t, json.Unmarshal(data, &entry))
	return entry.Msg, entry.Level
}
