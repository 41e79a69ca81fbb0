package extract

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leadscout/enrich/internal/enrich"
)

type fixedClock struct {
	t time.Time
}

func (c fixedClock) Now() time.Time { return c.t }

var clock2026 = fixedClock{t: time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)}

func textPage(url, text string) enrich.Page {
	return enrich.Page{
		URL:         url,
		HTML:        "<html><body>" + text + "</body></html>",
		TextContent: text,
		StatusCode:  200,
		Method:      enrich.MethodHTTP,
	}
}

func TestExtractContacts(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	business := enrich.Business{
		PlaceID:     "p1",
		WebsiteURI:  "http://acme.com",
		PhoneNumber: "(212) 867-5309",
	}
	pages := []enrich.Page{
		textPage("http://acme.com/", "Email info@acme.com or call (212) 867-5309 or (646) 234-8800."),
		textPage("http://acme.com/contact", "Email sales@acme.com. Office: 646-234-8800."),
	}

	bundle := engine.Extract(business, pages)

	// The business's own number from the external source is excluded.
	require.Equal(t, []string{"6462348800"}, bundle.Contacts.Phones)
	require.ElementsMatch(t, []string{"info@acme.com", "sales@acme.com"}, bundle.Contacts.Emails)
	require.Equal(t, "http://acme.com/contact", bundle.Contacts.ContactPageURL)
}

func TestExtractPriorityOrdering(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	// The root page was fetched first but the about page must win the
	// founded-year race because priority paths are processed first.
	pages := []enrich.Page{
		textPage("http://acme.com/", "Serving you since 2010."),
		textPage("http://acme.com/about", "Founded in 1998 by the Doe family."),
	}

	bundle := engine.Extract(enrich.Business{PlaceID: "p1"}, pages)
	require.Equal(t, 1998, bundle.History.FoundedYear)
	require.Equal(t, 2026-1998, bundle.History.YearsInBusiness)
	require.Contains(t, bundle.History.FoundedSource, "1998")
}

func TestExtractTeamDedupe(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	pages := []enrich.Page{
		textPage("http://acme.com/team", "Jane Doe, Owner. Tom Baker - Manager."),
		textPage("http://acme.com/about", "Meet JANE DOE again: Jane Doe, Owner."),
	}

	bundle := engine.Extract(enrich.Business{PlaceID: "p1"}, pages)
	require.Len(t, bundle.Team.Members, 2)
	require.Equal(t, "Jane Doe", bundle.Team.Members[0].Name)
	require.Equal(t, "http://acme.com/team", bundle.Team.Members[0].SourceURL)
}

func TestExtractHeadcountAcrossPages(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	pages := []enrich.Page{
		textPage("http://acme.com/", "We have 50 employees. A team of 50 strong. Also 40 employees once."),
		textPage("http://acme.com/about", "Over 50 employees serve you. Our rivals have 60 employees."),
	}

	bundle := engine.Extract(enrich.Business{PlaceID: "p1"}, pages)
	require.Equal(t, 50, bundle.Team.HeadcountEstimate)
	require.NotEmpty(t, bundle.Team.HeadcountSource)
}

func TestExtractAcquisitionSummary(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	pages := []enrich.Page{
		textPage("http://acme.com/news", "In 2021 we were acquired by Apex Holdings, expanding our reach."),
	}

	bundle := engine.Extract(enrich.Business{PlaceID: "p1"}, pages)
	require.True(t, bundle.Acquisition.HasSignal)
	require.Len(t, bundle.Acquisition.Signals, 1)
	require.Equal(t, "2021", bundle.Acquisition.Signals[0].DateMentioned)
	require.Contains(t, bundle.Acquisition.Summary, "acquired_by")
	require.Contains(t, bundle.Acquisition.Summary, "(2021)")
}

func TestExtractEmptyPages(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	bundle := engine.Extract(enrich.Business{PlaceID: "p1"}, nil)

	require.Empty(t, bundle.Contacts.Emails)
	require.Empty(t, bundle.Team.Members)
	require.False(t, bundle.Acquisition.HasSignal)
	require.Zero(t, bundle.History.FoundedYear)
	require.Zero(t, bundle.History.YearsInBusiness)
}

// The bundle caps must hold even when the page set over-produces in every
// category, including when matches for one field span several pages.
func TestExtractBundleCaps(t *testing.T) {
	t.Parallel()

	firstNames := []string{
		"Aaron", "Adam", "Alan", "Albert", "Alex", "Alice", "Amanda", "Amber",
		"Amy", "Andrea", "Andrew", "Angela", "Anita", "Ann", "Anna", "Anne",
		"Annie", "Anthony", "April", "Arthur", "Ashley", "Barbara", "Barry",
		"Becky",
	}

	var contactText, aboutEmailText strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&contactText, "Write dept%d@acme.com. ", i)
	}
	for i := 8; i < 15; i++ {
		fmt.Fprintf(&aboutEmailText, "Write dept%d@acme.com. ", i)
	}
	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&contactText, "Call (212) 867-530%d. ", i)
	}

	var teamText, aboutTeamText strings.Builder
	for _, name := range firstNames[:14] {
		fmt.Fprintf(&teamText, "%s Vance, Owner. ", name)
	}
	for _, name := range firstNames[14:] {
		fmt.Fprintf(&aboutTeamText, "%s Vance, Owner. ", name)
	}
	for _, name := range firstNames[:12] {
		fmt.Fprintf(&teamText, "%s joined our team this year. ", name)
	}

	var newsText strings.Builder
	for i := 1; i <= 12; i++ {
		fmt.Fprintf(&newsText, "In 2021 we were acquired by Apex Group%d. ", i)
	}

	var historyText strings.Builder
	for i := 1; i <= 9; i++ {
		fmt.Fprintf(&historyText, "Our story chapter %d began in a garage. ", i)
	}

	engine := NewEngine(clock2026)
	bundle := engine.Extract(enrich.Business{PlaceID: "p1"}, []enrich.Page{
		textPage("http://acme.com/contact", contactText.String()),
		textPage("http://acme.com/about", aboutEmailText.String()+aboutTeamText.String()),
		textPage("http://acme.com/team", teamText.String()),
		textPage("http://acme.com/news", newsText.String()),
		textPage("http://acme.com/history", historyText.String()),
	})

	require.Len(t, bundle.Contacts.Emails, maxEmails)
	require.Len(t, bundle.Contacts.Phones, maxPhones)
	require.Len(t, bundle.Team.Members, maxTeamMembers)
	require.Len(t, bundle.Team.NewHireMentions, maxNewHireMentions)
	require.Len(t, bundle.Acquisition.Signals, maxAcquisitions)
	require.Len(t, bundle.History.Snippets, maxHistorySnippets)
}

// Extraction must be byte-for-byte deterministic for a fixed page set.
func TestExtractIdempotent(t *testing.T) {
	t.Parallel()

	engine := NewEngine(clock2026)
	business := enrich.Business{PlaceID: "p1", WebsiteURI: "http://acme.com"}
	pages := []enrich.Page{
		textPage("http://acme.com/", "Founded in 1998. Email info@acme.com. Call (646) 234-8800."),
		textPage("http://acme.com/about", "Jane Doe, Owner. We have 12 employees. Our story began in a garage."),
	}

	first := engine.Extract(business, pages)
	second := engine.Extract(business, pages)
	require.Equal(t, first, second)
}
