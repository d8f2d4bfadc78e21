package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/gamebox/pkg/errors"
)

// Settings holds the deployment-tunable behaviour of the gamebox model:
// fixed filenames inside a package and the type/exclusion sets used for
// classification. These are data, not code; callers may override any of
// them per instance.
type Settings struct {
	Gamebox    PackageSettings   `koanf:"gamebox"`
	FileTypes  FileTypeSettings  `koanf:"filetypes"`
	Volumes    VolumeSettings    `koanf:"volumes"`
	Exclusions ExclusionSettings `koanf:"exclusions"`
}

// PackageSettings names the well-known files and folders inside a gamebox.
type PackageSettings struct {
	PackageExtension    string `koanf:"package-extension"`
	ManifestName        string `koanf:"manifest-name"`
	LegacyManifestName  string `koanf:"legacy-manifest-name"`
	ConfigFileName      string `koanf:"config-file-name"`
	DocumentationFolder string `koanf:"documentation-folder"`
	CoverArtName        string `koanf:"cover-art-name"`
	TargetSymlinkName   string `koanf:"target-symlink-name"`
}

// FileTypeSettings lists the extensions recognized per file category.
type FileTypeSettings struct {
	Executables   []string `koanf:"executables"`
	Documentation []string `koanf:"documentation"`
}

// VolumeSettings lists the extensions recognized per drive-volume kind.
type VolumeSettings struct {
	Harddisk []string `koanf:"harddisk"`
	CDROM    []string `koanf:"cdrom"`
	Floppy   []string `koanf:"floppy"`
}

// ExclusionSettings lists case-insensitive glob patterns for files to skip.
type ExclusionSettings struct {
	Executables   []string `koanf:"executables"`
	Documentation []string `koanf:"documentation"`
}

// Load builds Settings from the embedded defaults, an optional user config
// file and GAMEBOX_* environment variables, in that override order.
func Load() (*Settings, error) {
	return load(nil)
}

// LoadWithOverrides is Load with a final layer of programmatic overrides,
// keyed with the same dotted paths as the config file ("filetypes.executables").
func LoadWithOverrides(overrides map[string]interface{}) (*Settings, error) {
	return load(overrides)
}

// Default returns the embedded default settings. Only usable as a fallback:
// the embedded defaults are known-good, so parse failure is a programming
// error and panics.
func Default() *Settings {
	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		panic(err)
	}
	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		panic(err)
	}
	return &settings
}

func load(overrides map[string]interface{}) (*Settings, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load embedded defaults")
	}

	// 2. User config file, TOML preferred over YAML
	configDir := filepath.Join(xdg.ConfigHome, "gamebox")
	for _, candidate := range []struct {
		name   string
		parser koanf.Parser
	}{
		{"gamebox.toml", toml.Parser()},
		{"gamebox.yaml", yaml.Parser()},
	} {
		path := filepath.Join(configDir, candidate.name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), candidate.parser); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigLoad,
					"failed to load user config from %s", path)
			}
			break
		}
	}

	// 3. Environment overrides: GAMEBOX_FILETYPES__EXECUTABLES etc.
	// A double underscore separates key segments so single underscores
	// survive inside segment names. List-valued settings arrive as one
	// comma-separated variable and are split here.
	err := k.Load(env.ProviderWithValue("GAMEBOX_", ".", func(s, v string) (string, interface{}) {
		key := strings.TrimPrefix(s, "GAMEBOX_")
		key = strings.ToLower(key)
		key = strings.ReplaceAll(key, "__", ".")
		key = strings.ReplaceAll(key, "_", "-")
		if strings.Contains(v, ",") {
			parts := strings.Split(v, ",")
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}
			return key, parts
		}
		return key, v
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment overrides")
	}

	// 4. Programmatic overrides
	if len(overrides) > 0 {
		if err := k.Load(confmap.Provider(overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load overrides")
		}
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal settings")
	}
	return &settings, nil
}
