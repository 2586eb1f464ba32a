package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrewfoote/rpgxp-go/config"
)

func TestParseRecognizedKeys(t *testing.T) {
	cfg, err := config.Parse("test.conf", `
# comment line
game_name: My Game
game_root: /games/mygame
rtp_root: /rtp/standard
db_root: /out/db
site_root: /out/site
`)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		GameName: "My Game",
		GameRoot: "/games/mygame",
		RTPRoot:  "/rtp/standard",
		DBRoot:   "/out/db",
		SiteRoot: "/out/site",
	}, cfg)
}

func TestParseUnrecognizedKeyIsConfigError(t *testing.T) {
	_, err := config.Parse("test.conf", `
game_name: My Game
bogus_key: whatever
`)
	require.Error(t, err)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "bogus_key", cfgErr.Key)
}

func TestParseMissingRequiredKeyIsConfigError(t *testing.T) {
	_, err := config.Parse("test.conf", `game_name: My Game`)
	require.Error(t, err)
	var cfgErr *config.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "game_root", cfgErr.Key)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load("/nonexistent/path/to.conf")
	require.Error(t, err)
}
