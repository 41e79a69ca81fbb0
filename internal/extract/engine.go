// Package extract turns a business's fetched page set into a structured fact
// bundle. Every sub-extraction is independent and best-effort: absence is an
// empty field, never an error, and the engine never fails a scrape.
package extract

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/leadscout/enrich/internal/enrich"
	"github.com/leadscout/enrich/internal/patterns"
)

// Result caps from the bundle invariants.
const (
	maxEmails          = 10
	maxPhones          = 5
	maxTeamMembers     = 20
	maxAcquisitions    = 10
	maxHistorySnippets = 5
	maxNewHireMentions = 10
)

// Engine extracts facts from page sets. The injected clock keeps
// founded-year math deterministic under test.
type Engine struct {
	clock enrich.Clock
}

// NewEngine returns an extraction engine.
func NewEngine(clock enrich.Clock) *Engine {
	return &Engine{clock: clock}
}

// Extract produces the fact bundle for one business. Pages are processed in
// frontier priority order (about/contact/team-labeled URLs first) so that
// first-match-wins heuristics favor higher-quality sources; for a fixed page
// set the output is deterministic.
func (e *Engine) Extract(business enrich.Business, pages []enrich.Page) enrich.ExtractedFactBundle {
	ordered := orderByPriority(pages)
	now := e.clock.Now()

	bundle := enrich.ExtractedFactBundle{
		PlaceID:     business.PlaceID,
		WebsiteURI:  business.WebsiteURI,
		ExtractedAt: now,
	}
	bundle.Contacts = e.extractContacts(business, ordered)
	bundle.Team = e.extractTeam(ordered)
	bundle.Acquisition = e.extractAcquisition(ordered)
	bundle.History = e.extractHistory(ordered, now.Year())
	return bundle
}

// orderByPriority stably sorts pages so priority paths come first while
// preserving fetch order within each class.
func orderByPriority(pages []enrich.Page) []enrich.Page {
	ordered := make([]enrich.Page, len(pages))
	copy(ordered, pages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return pagePriority(ordered[i]) < pagePriority(ordered[j])
	})
	return ordered
}

func pagePriority(p enrich.Page) int {
	return patterns.PathPriority(pagePath(p))
}

func pagePath(p enrich.Page) string {
	u, err := url.Parse(p.URL)
	if err != nil {
		return ""
	}
	return u.Path
}

func (e *Engine) extractContacts(business enrich.Business, pages []enrich.Page) enrich.Contacts {
	contacts := enrich.Contacts{
		Emails: []string{},
		Phones: []string{},
	}
	knownPhone := patterns.NormalizePhone(business.PhoneNumber)
	seenEmail := map[string]struct{}{}
	seenPhone := map[string]struct{}{}

	for _, page := range pages {
		for _, email := range patterns.ExtractEmails(page.TextContent + " " + page.HTML) {
			if len(contacts.Emails) >= maxEmails {
				break
			}
			if _, dup := seenEmail[email]; dup {
				continue
			}
			seenEmail[email] = struct{}{}
			contacts.Emails = append(contacts.Emails, email)
		}

		for _, phone := range patterns.ExtractPhones(page.TextContent) {
			if len(contacts.Phones) >= maxPhones {
				break
			}
			if phone == knownPhone {
				continue
			}
			if _, dup := seenPhone[phone]; dup {
				continue
			}
			seenPhone[phone] = struct{}{}
			contacts.Phones = append(contacts.Phones, phone)
		}

		for platform, link := range patterns.FindSocialLinks(page.HTML) {
			setSocialIfEmpty(&contacts.Social, platform, link)
		}

		if contacts.ContactPageURL == "" && patterns.IsContactPath(pagePath(page)) {
			contacts.ContactPageURL = page.URL
		}
	}
	return contacts
}

func setSocialIfEmpty(s *enrich.SocialLinks, platform, link string) {
	switch platform {
	case patterns.PlatformLinkedIn:
		if s.LinkedIn == "" {
			s.LinkedIn = link
		}
	case patterns.PlatformFacebook:
		if s.Facebook == "" {
			s.Facebook = link
		}
	case patterns.PlatformInstagram:
		if s.Instagram == "" {
			s.Instagram = link
		}
	case patterns.PlatformTwitter:
		if s.Twitter == "" {
			s.Twitter = link
		}
	}
}

func (e *Engine) extractTeam(pages []enrich.Page) enrich.Team {
	team := enrich.Team{
		Members:         []enrich.TeamMember{},
		NewHireMentions: []string{},
	}
	seenName := map[string]struct{}{}
	var candidates []patterns.HeadcountCandidate

	for _, page := range pages {
		for _, m := range patterns.FindTeamMembers(page.TextContent) {
			if len(team.Members) >= maxTeamMembers {
				break
			}
			key := strings.ToLower(m.Name)
			if _, dup := seenName[key]; dup {
				continue
			}
			seenName[key] = struct{}{}
			team.Members = append(team.Members, enrich.TeamMember{
				Name:      m.Name,
				Title:     m.Title,
				SourceURL: page.URL,
			})
		}

		candidates = append(candidates, patterns.FindHeadcounts(page.TextContent)...)

		for _, mention := range patterns.FindNewHireMentions(page.TextContent) {
			if len(team.NewHireMentions) >= maxNewHireMentions {
				break
			}
			team.NewHireMentions = append(team.NewHireMentions, mention)
		}
	}

	if count, source, ok := patterns.SelectHeadcount(candidates); ok {
		team.HeadcountEstimate = count
		team.HeadcountSource = source
	}
	return team
}

func (e *Engine) extractAcquisition(pages []enrich.Page) enrich.Acquisition {
	acq := enrich.Acquisition{
		Signals: []enrich.AcquisitionSignal{},
	}
	for _, page := range pages {
		if len(acq.Signals) >= maxAcquisitions {
			break
		}
		for _, m := range patterns.FindAcquisitionSignals(page.TextContent) {
			if len(acq.Signals) >= maxAcquisitions {
				break
			}
			acq.Signals = append(acq.Signals, enrich.AcquisitionSignal{
				Text:          m.Text,
				SignalType:    m.SignalType,
				DateMentioned: m.Year,
				SourceURL:     page.URL,
			})
		}
	}
	acq.HasSignal = len(acq.Signals) > 0
	if acq.HasSignal {
		first := acq.Signals[0]
		acq.Summary = fmt.Sprintf("%s: %s", first.SignalType, first.Text)
		if first.DateMentioned != "" {
			acq.Summary = fmt.Sprintf("%s (%s)", acq.Summary, first.DateMentioned)
		}
	}
	return acq
}

func (e *Engine) extractHistory(pages []enrich.Page, currentYear int) enrich.History {
	history := enrich.History{
		Snippets: []enrich.HistorySnippet{},
	}
	for _, page := range pages {
		if history.FoundedYear == 0 {
			if year, source, ok := patterns.FindFoundedYear(page.TextContent, currentYear); ok {
				history.FoundedYear = year
				history.FoundedSource = source
				// Derived, never asserted independently.
				history.YearsInBusiness = currentYear - year
			}
		}
		for _, sentence := range patterns.FindHistorySentences(page.TextContent) {
			if len(history.Snippets) >= maxHistorySnippets {
				break
			}
			history.Snippets = append(history.Snippets, enrich.HistorySnippet{
				Text:      sentence,
				SourceURL: page.URL,
			})
		}
	}
	return history
}
