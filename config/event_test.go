package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeEventFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadEventFile(t *testing.T) {
	path := writeEventFile(t, `{
		"settings": {"refresh_rate_ms": 5000},
		"groups": [
			{"id": "A", "name": "Group A", "slots": 2, "description": "morning"},
			{"id": "B", "name": "Group B", "slots": 5}
		]
	}`)

	f, err := LoadEventFile(path)
	require.NoError(t, err)
	require.Equal(t, 5000, f.Settings.RefreshRateMS)
	require.Equal(t, 5*time.Second, f.PollInterval())

	groups := f.DomainGroups()
	require.Len(t, groups, 2)
	require.Equal(t, "A", groups[0].ID)
	require.Equal(t, "Group A", groups[0].Name)
	require.Equal(t, "morning", groups[0].Description)
	require.Equal(t, 2, groups[0].Available)
	require.Equal(t, 2, groups[0].Total)
	require.Equal(t, "", groups[1].Description)
}

func TestLoadEventFile_DefaultRefreshRate(t *testing.T) {
	path := writeEventFile(t, `{"groups": [{"id": "A", "name": "Group A", "slots": 1}]}`)

	f, err := LoadEventFile(path)
	require.NoError(t, err)
	require.Equal(t, defaultRefreshRateMS, f.Settings.RefreshRateMS)
	require.Equal(t, 2*time.Second, f.PollInterval())
}

func TestLoadEventFile_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			"duplicate group id",
			`{"groups": [{"id": "A", "name": "One", "slots": 1}, {"id": "A", "name": "Two", "slots": 1}]}`,
			`duplicate group id "A"`,
		},
		{
			"zero slots",
			`{"groups": [{"id": "A", "name": "One", "slots": 0}]}`,
			"positive slot count",
		},
		{
			"negative slots",
			`{"groups": [{"id": "A", "name": "One", "slots": -3}]}`,
			"positive slot count",
		},
		{
			"empty group id",
			`{"groups": [{"id": "", "name": "One", "slots": 1}]}`,
			"empty id",
		},
		{
			"negative refresh rate",
			`{"settings": {"refresh_rate_ms": -1}, "groups": []}`,
			"must not be negative",
		},
		{
			"malformed json",
			`{"groups": [`,
			"parse event file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEventFile(writeEventFile(t, tt.content))
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadEventFile_MissingFile(t *testing.T) {
	_, err := LoadEventFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "read event file")
}
