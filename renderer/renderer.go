package renderer

import (
	"bytes"
	"embed"
	"fmt"
	"html"
	"html/template"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	strip "github.com/grokify/html-strip-tags-go"
	"github.com/y-yagi/hotspots"
)

const (
	DateLayout       = "2006-01-02 15:04"
	HeaderDateLayout = "2006年01月02日"
	UpdateTimeLayout = "15:04:05"
	SummaryLength    = 200
	Placeholder      = "暂时没有获取到内容，请检查配置或网络连接。"

	truncateEnd     = "..."
	truncateLeeway  = 5
	pageTemplateKey = "hotspots.html.tmpl"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Renderer turns a page into a complete document.
type Renderer interface {
	Render(p Page) (string, error)
}

type Page struct {
	SiteTitle   string
	GeneratedAt time.Time
	Digest      *hotspots.Digest
}

type pageData struct {
	SiteTitle   string
	Date        string
	UpdateTime  string
	Groups      []hotspots.Group
	Placeholder string
}

type HTML struct {
	tmpl *template.Template
}

func NewHTML() (*HTML, error) {
	tmpl, err := template.New(pageTemplateKey).Funcs(template.FuncMap{
		"entryTime": entryTime,
		"summary":   Summary,
	}).ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &HTML{tmpl: tmpl}, nil
}

func (h *HTML) Render(p Page) (string, error) {
	data := pageData{
		SiteTitle:   p.SiteTitle,
		Date:        p.GeneratedAt.Format(HeaderDateLayout),
		UpdateTime:  p.GeneratedAt.Format(UpdateTimeLayout),
		Placeholder: Placeholder,
	}
	if p.Digest != nil {
		data.Groups = p.Digest.Groups
	}

	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, pageTemplateKey, data); err != nil {
		return "", fmt.Errorf("render page: %w", err)
	}
	return buf.String(), nil
}

// FormatDate renders a feed timestamp as "YYYY-MM-DD HH:MM" in UTC. Raw
// strings are parsed leniently. Anything missing or unparseable yields "".
func FormatDate(v any) string {
	var t time.Time

	switch d := v.(type) {
	case *time.Time:
		if d == nil {
			return ""
		}
		t = *d
	case time.Time:
		t = d
	case string:
		parsed, err := dateparse.ParseAny(strings.TrimSpace(d))
		if err != nil {
			return ""
		}
		t = parsed
	default:
		return ""
	}

	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(DateLayout)
}

func entryTime(e hotspots.Entry) string {
	return FormatDate(e.Timestamp())
}

// StripTags removes markup, decodes entities and collapses whitespace.
func StripTags(s string) string {
	return strings.Join(strings.Fields(html.UnescapeString(strip.StripTags(s))), " ")
}

// Truncate shortens s to at most length runes plus a small leeway. When
// cutting, the trailing partial word is dropped and "..." appended.
func Truncate(s string, length int) string {
	r := []rune(s)
	if len(r) <= length+truncateLeeway {
		return s
	}

	n := length - len(truncateEnd)
	if n < 0 {
		n = 0
	}
	cut := string(r[:n])
	if i := strings.LastIndex(cut, " "); i >= 0 {
		cut = cut[:i]
	}
	return cut + truncateEnd
}

func Summary(s string) string {
	return Truncate(StripTags(s), SummaryLength)
}
