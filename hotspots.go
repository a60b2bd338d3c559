package hotspots

import (
	"path/filepath"
	"strings"
	"time"
)

const (
	DefaultSiteTitle  = "每日热点聚合"
	DefaultMaxEntries = 5
	DefaultPublicDir  = "public"
	DefaultOutputFile = "hotspots.html"
	DefaultTimeout    = 30
)

// DefaultSkipPatterns are URL fragments of placeholder feeds that are never fetched.
var DefaultSkipPatterns = []string{"example.com"}

type FeedSource struct {
	Name string `json:"name" toml:"name"`
	URL  string `json:"url" toml:"url"`
}

type Config struct {
	SiteTitle         string       `json:"site_title" toml:"site_title"`
	Feeds             []FeedSource `json:"feeds" toml:"feeds"`
	MaxEntriesPerFeed int          `json:"max_entries_per_feed" toml:"max_entries_per_feed"`
	OutputFile        string       `json:"output_file" toml:"output_file"`
	PublicDir         string       `json:"public_dir" toml:"public_dir"`
	Timeout           int          `json:"timeout" toml:"timeout"`
	CachePath         string       `json:"cache_path" toml:"cache_path"`
	SkipPatterns      []string     `json:"skip_patterns" toml:"skip_patterns"`
}

// OutputPath returns where the rendered page is written. A relative
// OutputFile is placed under PublicDir.
func (c Config) OutputPath() string {
	if filepath.IsAbs(c.OutputFile) {
		return c.OutputFile
	}
	return filepath.Join(c.PublicDir, c.OutputFile)
}

func (c Config) TimeoutDuration() time.Duration {
	return time.Duration(c.Timeout) * time.Second
}

// MatchesAny reports whether url contains one of the placeholder patterns.
func MatchesAny(url string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(url, p) {
			return true
		}
	}
	return false
}

type Entry struct {
	Title       string
	Link        string
	Summary     string
	PublishedAt *time.Time
	UpdatedAt   *time.Time
}

func (e *Entry) String() string {
	return e.Title + " - " + e.Link
}

// Timestamp returns the publish time if present, else the update time.
func (e *Entry) Timestamp() *time.Time {
	if e.PublishedAt != nil {
		return e.PublishedAt
	}
	return e.UpdatedAt
}

// FetchResult is the outcome of fetching one feed. Err is set on failure
// and Entries is then empty.
type FetchResult struct {
	Entries []Entry
	Err     error
}

func (r FetchResult) OK() bool {
	return r.Err == nil
}

type Group struct {
	Name    string
	Entries []Entry
}

// Digest maps feed names to their entries, keeping insertion order.
// Feeds without entries are never stored.
type Digest struct {
	Groups []Group
}

func (d *Digest) Add(name string, entries []Entry) bool {
	if len(entries) == 0 {
		return false
	}
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			d.Groups[i].Entries = entries
			return true
		}
	}
	d.Groups = append(d.Groups, Group{Name: name, Entries: entries})
	return true
}

func (d *Digest) Entries(name string) ([]Entry, bool) {
	for _, g := range d.Groups {
		if g.Name == name {
			return g.Entries, true
		}
	}
	return nil, false
}

func (d *Digest) Names() []string {
	names := make([]string, 0, len(d.Groups))
	for _, g := range d.Groups {
		names = append(names, g.Name)
	}
	return names
}

func (d *Digest) Len() int {
	return len(d.Groups)
}
