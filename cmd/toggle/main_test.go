// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var b bytes.Buffer
	cmd.SetOut(&b)
	cmd.SetErr(&b)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return b.String(), err
}

func TestPlayFling(t *testing.T) {
	out, err := run(t, "play", "testdata/fling.yaml", "--trace", "-q")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "fling on", lines[0])
	assert.Contains(t, out, " OFF ")
	assert.Contains(t, out, " ON ")
	assert.Contains(t, out, "checked=true")
}

func TestPlayFixed(t *testing.T) {
	out, err := run(t, "play", "testdata/fixed.yaml", "-q", "--config", "testdata/slow.toml", "--width", "10")
	require.NoError(t, err)
	assert.Contains(t, out, " NO ")
	assert.NotContains(t, out, "YES")
}

func TestPlayErrors(t *testing.T) {
	_, err := run(t, "play", "testdata/missing.yaml", "-q")
	assert.Error(t, err)
	_, err = run(t, "play", "-q")
	assert.Error(t, err)
}

func TestConfigCmd(t *testing.T) {
	out, err := run(t, "config", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "fling_threshold = 500")
	assert.Contains(t, out, "250ms")

	out, err = run(t, "config", "testdata/slow.toml", "-q")
	require.NoError(t, err)
	assert.Contains(t, out, "YES")
	assert.Contains(t, out, "1s")
}
