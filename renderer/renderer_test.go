package renderer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/y-yagi/hotspots"
	"github.com/y-yagi/hotspots/renderer"
)

var generatedAt = time.Date(2025, 6, 7, 8, 9, 10, 0, time.UTC)

func render(t *testing.T, d *hotspots.Digest) (string, *goquery.Document) {
	t.Helper()

	r, err := renderer.NewHTML()
	require.NoError(t, err)

	out, err := r.Render(renderer.Page{SiteTitle: "热点", GeneratedAt: generatedAt, Digest: d})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(out))
	require.NoError(t, err)
	return out, doc
}

func TestRender_singleEntry(t *testing.T) {
	d := &hotspots.Digest{}
	d.Add("A", []hotspots.Entry{{Title: "T", Link: "http://x", Summary: "<p>hello</p>"}})

	out, doc := render(t, d)

	assert.Contains(t, out, "T")
	assert.Contains(t, out, `<span></span>`)

	assert.Equal(t, 1, doc.Find(".feed-group").Length())
	assert.Equal(t, "A", doc.Find(".feed-source").Text())

	link := doc.Find(".article-card .article-title a")
	href, ok := link.Attr("href")
	require.True(t, ok)
	assert.Equal(t, "http://x", href)
	assert.Equal(t, "T", link.Text())

	assert.Equal(t, "hello", strings.TrimSpace(doc.Find(".article-summary").Text()))
	assert.Equal(t, "", doc.Find(".article-meta span").Text())
	assert.Equal(t, 0, doc.Find("p.empty").Length())
}

func TestRender_empty(t *testing.T) {
	for name, d := range map[string]*hotspots.Digest{"empty": {}, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			out, doc := render(t, d)

			assert.Contains(t, out, "暂时没有获取到内容，请检查配置或网络连接。")
			assert.Equal(t, renderer.Placeholder, doc.Find("#content p.empty").Text())
			assert.Equal(t, 0, doc.Find(".feed-group").Length())
		})
	}
}

func TestRender_headerAndOrder(t *testing.T) {
	published := time.Date(2024, 12, 31, 23, 5, 0, 0, time.UTC)
	d := &hotspots.Digest{}
	d.Add("second", []hotspots.Entry{{Title: "s1", Link: "http://s/1", PublishedAt: &published}})
	d.Add("first", []hotspots.Entry{{Title: "f1", Link: "http://f/1"}, {Title: "f2", Link: "http://f/2"}})

	_, doc := render(t, d)

	assert.Equal(t, "热点 - 2025年06月07日", doc.Find("title").Text())
	assert.Equal(t, "2025年06月07日", doc.Find("header .date").Text())
	assert.Contains(t, doc.Find(".footer").Text(), "08:09:10")

	var names []string
	doc.Find(".feed-source").Each(func(_ int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	assert.Equal(t, []string{"second", "first"}, names)
	assert.Equal(t, 3, doc.Find(".article-card").Length())
	assert.Equal(t, "2024-12-31 23:05", doc.Find(".article-meta span").First().Text())
}

func TestRender_escapesFeedContent(t *testing.T) {
	d := &hotspots.Digest{}
	d.Add("<b>feed</b>", []hotspots.Entry{{
		Title:   "<script>alert(1)</script>",
		Link:    "javascript:alert(1)",
		Summary: "<script>x</script>safe",
	}})

	out, doc := render(t, d)

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Equal(t, "<b>feed</b>", doc.Find(".feed-source").Text())
	href, _ := doc.Find(".article-title a").Attr("href")
	assert.NotContains(t, href, "javascript:")
}

func TestRender_updatedTimeFallback(t *testing.T) {
	updated := time.Date(2023, 2, 3, 4, 5, 0, 0, time.UTC)
	d := &hotspots.Digest{}
	d.Add("A", []hotspots.Entry{{Title: "T", Link: "http://x", UpdatedAt: &updated}})

	_, doc := render(t, d)

	assert.Equal(t, "2023-02-03 04:05", doc.Find(".article-meta span").Text())
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2024, 5, 6, 7, 8, 9, 0, time.FixedZone("CST", 8*60*60))
	var nilTime *time.Time

	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "nil", in: nil, want: ""},
		{name: "nil pointer", in: nilTime, want: ""},
		{name: "zero", in: time.Time{}, want: ""},
		{name: "pointer", in: &ts, want: "2024-05-05 23:08"},
		{name: "value", in: ts, want: "2024-05-05 23:08"},
		{name: "raw string", in: "Mon, 02 Jan 2006 15:04:05 +0000", want: "2006-01-02 15:04"},
		{name: "garbage string", in: "not a date", want: ""},
		{name: "empty string", in: "", want: ""},
		{name: "unsupported type", in: 42, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderer.FormatDate(tt.in))
		})
	}
}

func TestStripTags(t *testing.T) {
	assert.Equal(t, "hello", renderer.StripTags("<p>hello</p>"))
	assert.Equal(t, "a & b c", renderer.StripTags("<div>a &amp; b\n\n  <br/>c</div>"))
	assert.Equal(t, "", renderer.StripTags(""))
}

func TestTruncate(t *testing.T) {
	short := strings.Repeat("a", 205)
	assert.Equal(t, short, renderer.Truncate(short, 200))

	words := strings.Repeat("word ", 60)
	got := renderer.Truncate(words, 200)
	assert.True(t, strings.HasSuffix(got, "word..."), got)
	assert.LessOrEqual(t, len([]rune(got)), 200)

	long := strings.Repeat("字", 300)
	got = renderer.Truncate(long, 200)
	assert.Equal(t, strings.Repeat("字", 197)+"...", got)
}

func TestSummary(t *testing.T) {
	in := "<p>" + strings.Repeat("lorem ", 100) + "</p>"

	got := renderer.Summary(in)

	assert.NotContains(t, got, "<p>")
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), renderer.SummaryLength)
}
