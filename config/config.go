package config

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pelletier/go-toml"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/y-yagi/configure"
	"github.com/y-yagi/goext/osext"
	"github.com/y-yagi/hotspots"
)

const (
	App      = "hotspots"
	jsonName = "config.json"
	tomlName = "config.toml"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errNotObject = errors.New("config must be a JSON object or TOML table")

// Loader resolves the run configuration. It never fails: any problem with
// an override file falls back to the injected defaults.
type Loader struct {
	defaults hotspots.Config
	log      logrus.FieldLogger
	exeDir   string
	cfgDir   string
}

func NewLoader(defaults hotspots.Config, log logrus.FieldLogger) *Loader {
	l := &Loader{defaults: defaults, log: log, cfgDir: configure.ConfigDir(App)}
	if exe, err := os.Executable(); err == nil {
		l.exeDir = filepath.Dir(exe)
	}
	return l
}

// WithSearchDirs replaces the executable directory and the user config
// directory consulted by Candidates.
func (l *Loader) WithSearchDirs(exeDir, cfgDir string) *Loader {
	l.exeDir = exeDir
	l.cfgDir = cfgDir
	return l
}

// Candidates lists override files in lookup order.
func (l *Loader) Candidates(explicit string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if l.exeDir != "" {
		paths = append(paths, filepath.Join(l.exeDir, jsonName))
	}
	if l.cfgDir != "" {
		paths = append(paths, filepath.Join(l.cfgDir, tomlName))
	}
	return paths
}

func (l *Loader) Load(explicit string) hotspots.Config {
	for _, path := range l.Candidates(explicit) {
		if !osext.IsExist(path) {
			if path == explicit {
				l.log.WithField("path", path).Warn("config file not found")
			}
			continue
		}

		cfg, err := l.loadFile(path)
		if err != nil {
			l.log.WithField("path", path).Warnf("Error loading config: %v. Using default config.", err)
			return l.fallback()
		}
		l.log.WithField("path", path).Info("config loaded")
		return cfg
	}

	l.log.Debug("no config file found, using default config")
	return l.fallback()
}

func (l *Loader) loadFile(path string) (hotspots.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return hotspots.Config{}, err
	}

	cfg, err := Decode(path, data)
	if err != nil {
		return hotspots.Config{}, err
	}
	if err = Validate(cfg); err != nil {
		return hotspots.Config{}, err
	}
	return withFallbacks(cfg), nil
}

func (l *Loader) fallback() hotspots.Config {
	cfg := l.defaults
	cfg.Feeds = append([]hotspots.FeedSource(nil), l.defaults.Feeds...)
	cfg.SkipPatterns = append([]string(nil), l.defaults.SkipPatterns...)
	return withFallbacks(cfg)
}

// Decode parses data according to the extension of path. Files without a
// known extension are read as JSON. An empty body or a JSON value other
// than an object is rejected.
func Decode(path string, data []byte) (hotspots.Config, error) {
	var cfg hotspots.Config

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return cfg, errNotObject
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("toml decode: %w", err)
		}
	default:
		if trimmed[0] != '{' {
			return cfg, errNotObject
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("json decode: %w", err)
		}
	}
	return cfg, nil
}

func Validate(cfg hotspots.Config) error {
	if cfg.MaxEntriesPerFeed < 0 {
		return fmt.Errorf("max_entries_per_feed must not be negative: %d", cfg.MaxEntriesPerFeed)
	}
	if cfg.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative: %d", cfg.Timeout)
	}

	names := map[string]bool{}
	for i, f := range cfg.Feeds {
		if strings.TrimSpace(f.Name) == "" {
			return fmt.Errorf("feeds[%d]: name is empty", i)
		}
		if names[f.Name] {
			return fmt.Errorf("feeds[%d]: duplicate name %q", i, f.Name)
		}
		names[f.Name] = true

		u, err := url.ParseRequestURI(f.URL)
		if err != nil {
			return fmt.Errorf("feeds[%d]: URI parser error: %w", i, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("feeds[%d]: unsupported scheme %q", i, u.Scheme)
		}
		if u.Host == "" {
			return fmt.Errorf("feeds[%d]: missing host", i)
		}
	}
	return nil
}

func withFallbacks(cfg hotspots.Config) hotspots.Config {
	if cfg.SiteTitle == "" {
		cfg.SiteTitle = hotspots.DefaultSiteTitle
	}
	if cfg.MaxEntriesPerFeed == 0 {
		cfg.MaxEntriesPerFeed = hotspots.DefaultMaxEntries
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = hotspots.DefaultOutputFile
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = hotspots.DefaultPublicDir
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = hotspots.DefaultTimeout
	}
	if cfg.CachePath == "" {
		cfg.CachePath = DefaultCachePath()
	}
	// Placeholder domains stay skipped whatever the override lists.
	cfg.SkipPatterns = lo.Uniq(append(append([]string(nil), hotspots.DefaultSkipPatterns...), cfg.SkipPatterns...))
	return cfg
}

func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, App)
}
