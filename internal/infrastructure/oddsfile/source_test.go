package oddsfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frenchfries11234/ff.gg/internal/domain/player"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestDirectorySourceLoad(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "batters", "b-2025_07_04.json"), `{"id":"b"}`)
	writeFile(t, filepath.Join(root, "batters", "a-2025_07_04.JSON"), `{"id":"a"}`)
	writeFile(t, filepath.Join(root, "batters", "notes.txt"), `ignored`)
	require.NoError(t, os.MkdirAll(filepath.Join(root, "batters", "nested.json"), 0o755))

	docs, err := NewDirectorySource(root).Load(context.Background(), "batters")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	require.Equal(t, "a-2025_07_04.JSON", docs[0].Name)
	require.Equal(t, `{"id":"b"}`, string(docs[1].Body))
}

func TestDirectorySourceMissingDir(t *testing.T) {
	_, err := NewDirectorySource(t.TempDir()).Load(context.Background(), "pitchers")
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestDirectorySourceCanceled(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "nfl", "data0.json"), `{}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewDirectorySource(root).Load(ctx, "nfl")
	require.ErrorIs(t, err, context.Canceled)
}

func TestDecodeRoster(t *testing.T) {
	raw := `[
		{"id": 3918298, "fullName": "Josh Allen", "defaultPositionId": 1, "team": "buf"},
		{"espn_id": 3121422, "name": "Terry McLaurin", "position": "wr", "team": "WAS"},
		{"id": 0, "fullName": "No Id", "defaultPositionId": 2, "team": "KC"},
		{"id": 77, "fullName": "No Team", "defaultPositionId": 3}
	]`

	players, skipped, err := DecodeRoster([]byte(raw))
	require.NoError(t, err)
	require.Len(t, skipped, 2)
	require.Equal(t, []player.Player{
		{ESPNID: 3918298, Name: "Josh Allen", Team: "BUF", Position: player.PositionQuarterback},
		{ESPNID: 3121422, Name: "Terry McLaurin", Team: "WSH", Position: player.PositionWideReceiver},
	}, players)

	_, _, err = DecodeRoster([]byte(`{"not": "an array"}`))
	require.Error(t, err)
}
