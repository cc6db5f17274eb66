package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_Response(t *testing.T) {
	info := NewAppBuildInfo("1.4.0", "2026-10-01", "9f2c1ab")

	assert.Equal(t, VersionResponse{Version: "1.4.0", Date: "2026-10-01", Commit: "9f2c1ab"}, info.Response())
}

func TestAppBuildInfo_String(t *testing.T) {
	assert.Equal(t,
		"Build version: 1.4.0\nBuild date: N/A\nBuild commit: N/A",
		NewAppBuildInfo("1.4.0", "", "").String())
}

func TestAppBuildInfo_WithDefaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-10-01", "").WithDefaults()

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-10-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
