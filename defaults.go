package hotspots

// DefaultConfig returns the built-in configuration used when no override
// file can be loaded.
func DefaultConfig() Config {
	return Config{
		SiteTitle: "2025年精选技术博客热点",
		Feeds: []FeedSource{
			{Name: "simonwillison.net", URL: "https://simonwillison.net/atom/everything/"},
			{Name: "jeffgeerling.com", URL: "https://www.jeffgeerling.com/blog.xml"},
			{Name: "seangoedecke.com", URL: "https://www.seangoedecke.com/rss.xml"},
			{Name: "krebsonsecurity.com", URL: "https://krebsonsecurity.com/feed/"},
			{Name: "daringfireball.net", URL: "https://daringfireball.net/feeds/main"},
			{Name: "ericmigi.com", URL: "https://ericmigi.com/rss.xml"},
			{Name: "antirez.com", URL: "http://antirez.com/rss"},
			{Name: "idiallo.com", URL: "https://idiallo.com/feed.rss"},
			{Name: "maurycyz.com", URL: "https://maurycyz.com/index.xml"},
			{Name: "pluralistic.net", URL: "https://pluralistic.net/feed/"},
			{Name: "shkspr.mobi", URL: "https://shkspr.mobi/blog/feed/"},
			{Name: "mitchellh.com", URL: "https://mitchellh.com/feed.xml"},
			{Name: "dynomight.net", URL: "https://dynomight.net/feed.xml"},
			{Name: "utcc.utoronto.ca/~cks", URL: "https://utcc.utoronto.ca/~cks/space/blog/?atom"},
			{Name: "xeiaso.net", URL: "https://xeiaso.net/blog.rss"},
			{Name: "devblogs.microsoft.com/oldnewthing", URL: "https://devblogs.microsoft.com/oldnewthing/feed"},
			{Name: "righto.com", URL: "https://www.righto.com/feeds/posts/default"},
			{Name: "lucumr.pocoo.org", URL: "https://lucumr.pocoo.org/feed.atom"},
			{Name: "skyfall.dev", URL: "https://skyfall.dev/rss.xml"},
			{Name: "garymarcus.substack.com", URL: "https://garymarcus.substack.com/feed"},
			{Name: "rachelbythebay.com", URL: "https://rachelbythebay.com/w/atom.xml"},
			{Name: "overreacted.io", URL: "https://overreacted.io/rss.xml"},
			{Name: "timsh.org", URL: "https://timsh.org/rss/"},
			{Name: "johndcook.com", URL: "https://www.johndcook.com/blog/feed/"},
			{Name: "gilesthomas.com", URL: "https://gilesthomas.com/feed/rss.xml"},
			{Name: "matklad.github.io", URL: "https://matklad.github.io/feed.xml"},
			{Name: "derekthompson.org", URL: "https://www.theatlantic.com/feed/author/derek-thompson/"},
			{Name: "evanhahn.com", URL: "https://evanhahn.com/feed.xml"},
			{Name: "terriblesoftware.org", URL: "https://terriblesoftware.org/feed/"},
		},
		MaxEntriesPerFeed: 3,
		OutputFile:        DefaultOutputFile,
		PublicDir:         DefaultPublicDir,
		Timeout:           DefaultTimeout,
		SkipPatterns:      append([]string(nil), DefaultSkipPatterns...),
	}
}
