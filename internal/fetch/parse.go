package fetch

import (
	"bytes"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/leadscout/enrich/internal/enrich"
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// BuildPage parses raw markup into an enrich.Page: title, visible text with
// collapsed whitespace, and absolutized link targets. Unparseable markup
// still yields a page carrying the raw HTML.
func BuildPage(rawURL string, statusCode int, body []byte, method enrich.FetchMethod, at time.Time) enrich.Page {
	page := enrich.Page{
		URL:        rawURL,
		HTML:       string(body),
		StatusCode: statusCode,
		Method:     method,
		ScrapedAt:  at,
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return page
	}

	page.Title = strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("script, style, noscript").Remove()
	page.TextContent = whitespaceRE.ReplaceAllString(strings.TrimSpace(doc.Find("body").Text()), " ")
	page.Links = extractLinks(doc, rawURL)
	return page
}

func extractLinks(doc *goquery.Document, rawURL string) []string {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	seen := make(map[string]struct{})
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" || strings.HasPrefix(href, "#") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		abs := base.ResolveReference(ref).String()
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		links = append(links, abs)
	})
	return links
}
