package baduk

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// envPrefix namespaces environment overrides, e.g. BADUK_BOARD_SIZE=19.
const envPrefix = "BADUK"

// LoadConfig reads a Config from path, falling back to DefaultConfig for
// anything the file leaves out. Environment variables override both.
// An empty path skips the file.
func LoadConfig(path string) (Config, error) {
	def := DefaultConfig()
	v := viper.New()
	v.SetDefault("name", def.Name)
	v.SetDefault("board_size", def.BoardSize)
	v.SetDefault("komi", def.Komi)
	v.SetDefault("max_moves", def.MaxMoves)
	v.SetDefault("games", def.Games)
	v.SetDefault("seed", def.Seed)
	v.SetDefault("validate", def.Validate)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrapf(err, "reading config %s", path)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	if err := cfg.IsValid(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
