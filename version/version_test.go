package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, CommitHash, info.CommitHash)
	assert.Equal(t, BuildTime, info.BuildTime)
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
	assert.Contains(t, info.Platform, "/")
}

func TestString(t *testing.T) {
	info := Info{CommitHash: "abc1234def", BuildTime: "now", Version: "dev"}
	assert.Equal(t, "rustgen dev (commit abc1234def, built now)", info.String())

	info.Version = "1.2.3"
	assert.Equal(t, "rustgen 1.2.3 (commit abc1234def, built now)", info.String())
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc1234", Info{CommitHash: "abc1234def"}.Short())
	assert.Equal(t, "abc", Info{CommitHash: "abc"}.Short())
}
