package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_BareColorMeansAlways(t *testing.T) {
	opts, rest, err := parseArgs([]string{"--color"})
	require.NoError(t, err)
	assert.Equal(t, "always", opts.Color)
	assert.Empty(t, rest)
}

func TestParseArgs_ColorModes(t *testing.T) {
	for _, mode := range []string{"always", "never", "auto"} {
		opts, _, err := parseArgs([]string{"--color=" + mode})
		require.NoError(t, err)
		assert.Equal(t, mode, opts.Color)
	}
}

func TestParseArgs_InvalidColorMode(t *testing.T) {
	_, _, err := parseArgs([]string{"--color=sometimes"})
	assert.Error(t, err)
}

func TestParseArgs_WrapperFlags(t *testing.T) {
	opts, rest, err := parseArgs([]string{"--tee=/tmp/out.log", "--nogcc", "--version"})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out.log", opts.Tee)
	assert.True(t, opts.NoGCC)
	assert.True(t, opts.Version)
	assert.Empty(t, rest)
}

func TestParseArgs_Help(t *testing.T) {
	for _, flag := range []string{"--help", "-h"} {
		opts, _, err := parseArgs([]string{flag})
		require.NoError(t, err)
		assert.True(t, opts.Help)
	}
}

func TestParseArgs_PassthroughPreservesOrder(t *testing.T) {
	opts, rest, err := parseArgs([]string{
		"-C", "build", "--color=always", "-j", "8", "--verbose", "install",
	})
	require.NoError(t, err)
	assert.Equal(t, "always", opts.Color)
	assert.Equal(t, []string{"-C", "build", "-j", "8", "--verbose", "install"}, rest)
}

func TestParseArgs_Empty(t *testing.T) {
	opts, rest, err := parseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, "", opts.Color)
	assert.Empty(t, rest)
}
