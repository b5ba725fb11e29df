package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo(" v1.4.0 ", "", "abc123")

	assert.Equal(t, "v1.4.0", info.BuildVersion())
	assert.Equal(t, NotAvailable, info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.True(t, info.HasVersion())
}

func TestAppBuildInfo_Unset(t *testing.T) {
	for name, info := range map[string]AppBuildInfo{
		"zero value":   {},
		"linker unset": NewAppBuildInfo("N/A", "N/A", "N/A"),
		"blank":        NewAppBuildInfo("  ", "", ""),
	} {
		t.Run(name, func(t *testing.T) {
			assert.False(t, info.HasVersion())
			assert.Equal(t, NotAvailable, info.BuildVersion())
			assert.Equal(t, NotAvailable, info.BuildCommit())
		})
	}
}
