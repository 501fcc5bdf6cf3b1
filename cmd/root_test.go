// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/luxfi/curve/pkg/constants"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestDisplayLevel(t *testing.T) {
	tests := []struct {
		args []string
		want zapcore.Level
	}{
		{nil, zapcore.WarnLevel},
		{[]string{"--debug"}, zapcore.DebugLevel},
		{[]string{"--verbose"}, zapcore.InfoLevel},
		{[]string{"--quiet"}, zapcore.ErrorLevel},
		{[]string{"--log-level", "error"}, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		root := NewRootCmd()
		require.NoError(t, root.ParseFlags(tt.args))
		got, err := displayLevel(root)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "%v", tt.args)
	}

	root := NewRootCmd()
	require.NoError(t, root.ParseFlags([]string{"--log-level", "loud"}))
	_, err := displayLevel(root)
	require.Error(t, err)
}

func TestRunWritesConfig(t *testing.T) {
	require := require.New(t)

	home := t.TempDir()
	t.Setenv(constants.EnvHome, home)

	var out bytes.Buffer
	require.NoError(Run([]string{"config", "set", "network", "zoo"}, &out))
	require.Contains(out.String(), "network = zoo")
	_, err := os.Stat(filepath.Join(home, "config.yaml"))
	require.NoError(err)

	out.Reset()
	require.NoError(Run([]string{"config", "get", "network"}, &out))
	require.Equal("network = zoo\n", out.String())

	out.Reset()
	require.Error(Run([]string{"config", "get", "colour"}, &out))
}
