package csvfile

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "temperature_logs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("loads and sorts by timestamp", func(t *testing.T) {
		path := writeCSV(t, `timestamp,location,temperature_c
2024/01/01 02:00,Lobby,22.5
2024/01/01 00:00,Lobby,20.0
2024/01/01 01:00,Server Room,25.1
`)

		ds, err := Load(path, discardLogger())

		require.NoError(t, err)
		require.Len(t, ds, 3)
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ds[0].Timestamp)
		assert.Equal(t, "Server Room", ds[1].Location)
		assert.Equal(t, 22.5, *ds[2].Temperature)
	})

	t.Run("stable on timestamp ties", func(t *testing.T) {
		path := writeCSV(t, `timestamp,location,temperature_c
2024/01/01 00:00,First,20.0
2024/01/01 00:00,Second,21.0
2024/01/01 00:00,Third,22.0
`)

		ds, err := Load(path, discardLogger())

		require.NoError(t, err)
		require.Len(t, ds, 3)
		assert.Equal(t, "First", ds[0].Location)
		assert.Equal(t, "Second", ds[1].Location)
		assert.Equal(t, "Third", ds[2].Location)
	})

	t.Run("bad temperatures become missing, not errors", func(t *testing.T) {
		path := writeCSV(t, `timestamp,location,temperature_c
2024/01/01 00:00,Lobby,20.0
2024/01/01 01:00,Lobby,
2024/01/01 02:00,Lobby,N/A
2024/01/01 03:00,Lobby,sensor fault
`)

		ds, err := Load(path, discardLogger())

		require.NoError(t, err)
		assert.Len(t, ds, 4)
		assert.Equal(t, 3, ds.MissingCount())
	})

	t.Run("extra columns ignored", func(t *testing.T) {
		path := writeCSV(t, `sensor_id,timestamp,location,temperature_c,humidity
s-1,2024/01/01 00:00,Lobby,20.0,40
s-2,2024/01/01 01:00,Lobby,21.0,41
`)

		ds, err := Load(path, discardLogger())

		require.NoError(t, err)
		require.Len(t, ds, 2)
		assert.Equal(t, "Lobby", ds[0].Location)
		assert.Equal(t, 20.0, *ds[0].Temperature)
	})

	t.Run("missing required column fails", func(t *testing.T) {
		path := writeCSV(t, `timestamp,room,temperature_c
2024/01/01 00:00,Lobby,20.0
`)

		_, err := Load(path, discardLogger())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "location")
	})

	t.Run("unparseable timestamp fails whole load", func(t *testing.T) {
		path := writeCSV(t, `timestamp,location,temperature_c
2024/01/01 00:00,Lobby,20.0
not-a-date,Lobby,21.0
`)

		_, err := Load(path, discardLogger())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 3")
	})

	t.Run("empty file fails", func(t *testing.T) {
		path := writeCSV(t, "")

		_, err := Load(path, discardLogger())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "header row required")
	})

	t.Run("header only yields empty dataset", func(t *testing.T) {
		path := writeCSV(t, "timestamp,location,temperature_c\n")

		ds, err := Load(path, discardLogger())

		require.NoError(t, err)
		assert.Empty(t, ds)
	})

	t.Run("nonexistent file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.csv"), discardLogger())

		require.Error(t, err)
	})
}
