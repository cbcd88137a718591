// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()
	for s, exp := range map[string]zapcore.Level{
		"debug": zapcore.DebugLevel, " INFO ": zapcore.InfoLevel,
		"warning": zapcore.WarnLevel, "warn": zapcore.WarnLevel,
		"error": zapcore.ErrorLevel,
	} {
		l, err := ParseLevel(s)
		require.NoError(t, err, s)
		assert.Equal(t, exp, l, s)
	}
	_, err := ParseLevel("loud")
	assert.ErrorContains(t, err, `logging: level "loud"`)
}

func TestNewFiltersByLevel(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	l, err := New(buf, "info")
	require.NoError(t, err)

	l.Debug("hidden")
	l.Info("shown", zap.String("case", "add"))
	require.NoError(t, l.Sync())

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), `"case": "add"`)

	_, err = New(buf, "loud")
	assert.Error(t, err)
}
