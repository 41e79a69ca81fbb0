package fetch

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/leadscout/enrich/internal/enrich"
)

// minUsableText is the body-text length below which markup is assumed to be
// client-rendered.
const minUsableText = 500

// spaRootSelectors are mount points that single-page apps leave empty until
// JavaScript runs.
var spaRootSelectors = []string{"#root", "#app", "#__next", "[ng-app]", "#___gatsby"}

// renderKeywords flag markup that admits it needs JavaScript, is still
// loading, or is an anti-bot interstitial.
var renderKeywords = []string{
	"requires javascript",
	"enable javascript",
	"please enable javascript",
	"javascript is disabled",
	"loading...",
	"please wait",
	"checking your browser",
	"just a moment",
}

// NeedsRender inspects a fetched page for signals that only a browser will
// produce the real content.
func NeedsRender(page enrich.Page) bool {
	if len(page.TextContent) < minUsableText {
		return true
	}
	lower := strings.ToLower(page.HTML)
	for _, kw := range renderKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return hasEmptySPARoot(page.HTML)
}

func hasEmptySPARoot(html string) bool {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(html)))
	if err != nil {
		return false
	}
	for _, sel := range spaRootSelectors {
		node := doc.Find(sel).First()
		if node.Length() == 0 {
			continue
		}
		if strings.TrimSpace(node.Text()) == "" {
			return true
		}
	}
	return false
}
