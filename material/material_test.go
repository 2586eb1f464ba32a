package material_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/material"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

// Scenario: a fixture material present in both game and rtp with
// extensions {.ogg, .mp3} under game and {.wav} under rtp;
// material_best_file picks game/.mp3 (priority dominates; within the
// winning source, lexicographically smallest extension).
func TestBestFilePrefersGamePriorityThenExtension(t *testing.T) {
	gameRoot := t.TempDir()
	rtpRoot := t.TempDir()

	touch(t, filepath.Join(gameRoot, "Audio", "BGM", "Battle1.ogg"))
	touch(t, filepath.Join(gameRoot, "Audio", "BGM", "Battle1.mp3"))
	touch(t, filepath.Join(rtpRoot, "Audio", "BGM", "Battle1.wav"))

	inv := material.NewInventory()
	require.NoError(t, inv.Scan(rtpRoot, "rtp"))
	require.NoError(t, inv.Scan(gameRoot, "game"))

	best := inv.BestFiles()
	require.Len(t, best, 1)
	assert.Equal(t, material.BestFile{
		Type: "Audio", Subtype: "BGM", Name: "Battle1",
		Source: "game", Extension: ".mp3",
	}, best[0])
}

func TestScanRecordsBothSourcesWithoutDuplicatingMaterial(t *testing.T) {
	gameRoot := t.TempDir()
	rtpRoot := t.TempDir()

	touch(t, filepath.Join(gameRoot, "Graphics", "Icons", "001-Weapon01.png"))
	touch(t, filepath.Join(rtpRoot, "Graphics", "Icons", "001-Weapon01.png"))

	inv := material.NewInventory()
	require.NoError(t, inv.Scan(rtpRoot, "rtp"))
	require.NoError(t, inv.Scan(gameRoot, "game"))

	assert.Len(t, inv.Files, 2)

	stmts := inv.String()
	assert.Contains(t, stmts, "DELETE FROM material_file;")
	assert.Contains(t, stmts, "INSERT INTO material (stem, type, subtype) VALUES ('001-Weapon01', 'Graphics', 'Icons');")
}

func TestScanTreatsMissingSubtypeDirAsEmpty(t *testing.T) {
	root := t.TempDir()
	// no Audio/BGM directory at all under root
	inv := material.NewInventory()
	require.NoError(t, inv.Scan(root, "game"))
	assert.Empty(t, inv.Files)
}

func TestCopyBestFilesWritesLowercasedDestination(t *testing.T) {
	gameRoot := t.TempDir()
	rtpRoot := t.TempDir()
	siteRoot := t.TempDir()

	src := filepath.Join(gameRoot, "Graphics", "Icons", "001-Weapon01.png")
	touch(t, src)
	require.NoError(t, os.WriteFile(src, []byte("pixels"), 0o644))

	inv := material.NewInventory()
	require.NoError(t, inv.Scan(gameRoot, "game"))
	require.NoError(t, inv.CopyBestFiles(gameRoot, rtpRoot, siteRoot))

	dst := filepath.Join(siteRoot, "graphics", "icons", "001-Weapon01.png")
	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "pixels", string(data))
}
