package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "warn"}, &out)

	Infof("quiet %d", 1)
	Warnf("loud %d", 2)

	assert.NotContains(t, out.String(), "quiet 1")
	assert.Contains(t, out.String(), "loud 2")
}

func TestTagFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &out)

	DebugTagf("noisy", "hidden %d", 1)
	DebugTagf("history", "shown %d", 2)

	assert.NotContains(t, out.String(), "hidden 1")
	assert.Contains(t, out.String(), "shown 2")
	assert.Contains(t, out.String(), "tag=history")
}

func TestEnabledTagsHideUntagged(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"save"}}, &out)

	Debugf("untagged")
	DebugTagf("save", "tagged")

	assert.NotContains(t, out.String(), "untagged")
	assert.Contains(t, out.String(), "tagged")
}

func TestPackageFiltering(t *testing.T) {
	var out bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &out)

	Errorf("from this package")

	assert.NotContains(t, out.String(), "from this package")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("err"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}
