package feed

import (
	"bytes"
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/mmcdole/gofeed"

	"github.com/feedvault/feedvault/pkg/domain"
)

// maxEntries caps how many entries of a single payload are merged per refresh
const maxEntries = 200

// Parser turns a raw RSS/Atom payload into normalized article records
type Parser struct {
	sanitizer *bluemonday.Policy
}

// NewParser creates a new feed payload parser
func NewParser() *Parser {
	return &Parser{sanitizer: bluemonday.StrictPolicy()}
}

// Parse decodes the payload and normalizes its entries: HTML stripped from
// titles and summaries, natural key derived from the GUID, link or a content
// hash, published time falling back to the updated time.
func (p *Parser) Parse(feedID string, payload []byte) ([]domain.Article, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(payload))
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	items := parsed.Items
	if len(items) > maxEntries {
		items = items[:maxEntries]
	}

	articles := make([]domain.Article, 0, len(items))
	for _, item := range items {
		title := p.cleanText(item.Title)
		if title == "" {
			title = "(no title)"
		}

		article := domain.Article{
			FeedID:  feedID,
			Key:     domain.ArticleKey(item.GUID, item.Link, title),
			Title:   title,
			Link:    item.Link,
			Summary: p.cleanText(item.Description),
		}

		if item.PublishedParsed != nil {
			article.Published = item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			article.Published = item.UpdatedParsed
		}

		articles = append(articles, article)
	}

	return articles, nil
}

// cleanText strips markup and collapses whitespace
func (p *Parser) cleanText(s string) string {
	s = p.sanitizer.Sanitize(s)
	s = html.UnescapeString(s)
	return strings.Join(strings.Fields(s), " ")
}
