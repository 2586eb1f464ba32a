// Package config parses the project's plain key-value configuration
// file (spec §6.5): one "key: value" entry per line, comments starting
// with '#', recognizing exactly game_name/game_root/rtp_root/db_root/
// site_root and raising ConfigError on anything else.
//
// Grounded on FocuswithJustin-JuniperBible's participle-based
// contrib/tool/juniper/src/pkg/sword/conf_parser.go: same two-phase
// shape (a tiny line-oriented participle grammar captures whole lines,
// then plain Go code splits and dispatches on the key), adapted from
// that package's Section/Property alternation to this format's simpler
// single Entry line kind.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Config holds the five recognized settings, all required.
type Config struct {
	GameName string
	GameRoot string
	RTPRoot  string
	DBRoot   string
	SiteRoot string
}

// ConfigError reports an unrecognized key or a missing required one.
type ConfigError struct {
	Path string
	Key  string
	Msg  string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config: %s: %s: %s", e.Path, e.Key, e.Msg)
}

type configFile struct {
	Lines []configLine `@@*`
}

type configLine struct {
	Comment string `  @Comment`
	Entry   string `| @Entry`
}

// confLexer tokenizes one line at a time; order matters, Comment and
// Entry are tried before Whitespace/Newline are elided.
var confLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\r\n]*`},
	{Name: "Entry", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*[ \t]*:[^\r\n]*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Newline", Pattern: `[\r\n]+`},
})

var confParser = participle.MustBuild[configFile](
	participle.Lexer(confLexer),
	participle.Elide("Whitespace", "Newline"),
)

// Load reads and parses the config file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}
	return Parse(path, string(raw))
}

// Parse parses config file contents already read into memory; path is
// used only for error messages.
func Parse(path, contents string) (*Config, error) {
	cf, err := confParser.ParseString(path, contents)
	if err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	var cfg Config
	seen := map[string]bool{}

	for _, line := range cf.Lines {
		if line.Entry == "" {
			continue
		}
		idx := strings.IndexByte(line.Entry, ':')
		key := strings.TrimSpace(line.Entry[:idx])
		value := strings.TrimSpace(line.Entry[idx+1:])

		switch key {
		case "game_name":
			cfg.GameName = value
		case "game_root":
			cfg.GameRoot = value
		case "rtp_root":
			cfg.RTPRoot = value
		case "db_root":
			cfg.DBRoot = value
		case "site_root":
			cfg.SiteRoot = value
		default:
			return nil, &ConfigError{Path: path, Key: key, Msg: "unrecognized key"}
		}
		seen[key] = true
	}

	for _, key := range []string{"game_name", "game_root", "rtp_root", "db_root", "site_root"} {
		if !seen[key] {
			return nil, &ConfigError{Path: path, Key: key, Msg: "missing required key"}
		}
	}

	return &cfg, nil
}
