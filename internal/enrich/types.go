package enrich

import "time"

// ScrapeStatus represents the terminal outcome recorded for one business.
type ScrapeStatus string

// Scrape status values written to the business record.
const (
	StatusComplete ScrapeStatus = "complete"
	StatusPartial  ScrapeStatus = "partial"
	StatusFailed   ScrapeStatus = "failed"
)

// FetchMethod identifies which retrieval tier ultimately supplied a page.
type FetchMethod string

// Fetch tiers, in escalation order.
const (
	MethodHTTP     FetchMethod = "http"
	MethodAntiBot  FetchMethod = "antibot"
	MethodRendered FetchMethod = "rendered"
)

// Business is the external record this system enriches. It is created and
// owned by an upstream CRUD collaborator; the scraper only ever updates the
// scrape-related and extracted fields.
type Business struct {
	PlaceID     string `json:"place_id"`
	Name        string `json:"name,omitempty"`
	WebsiteURI  string `json:"website_uri,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Scraped     bool   `json:"scraped"`
}

// Page is one fetched page. Immutable once captured and owned exclusively by
// the crawl run that produced it.
type Page struct {
	URL         string      `json:"url"`
	Title       string      `json:"title,omitempty"`
	HTML        string      `json:"html"`
	TextContent string      `json:"text_content"`
	Links       []string    `json:"links,omitempty"`
	StatusCode  int         `json:"status_code"`
	Method      FetchMethod `json:"method"`
	ScrapedAt   time.Time   `json:"scraped_at"`
}

// RawCaptureBundle is the full, lossless capture for one business in one job
// run. Write-once; persisted as a gzip JSON object.
type RawCaptureBundle struct {
	PlaceID    string    `json:"place_id"`
	WebsiteURI string    `json:"website_uri"`
	ScrapedAt  time.Time `json:"scraped_at"`
	Method     string    `json:"method"`
	DurationMs int64     `json:"duration_ms"`
	Pages      []Page    `json:"pages"`
}

// SocialLinks holds the first profile URL found per platform.
type SocialLinks struct {
	LinkedIn  string `json:"linkedin,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
}

// Contacts aggregates address-book style facts for a business.
type Contacts struct {
	Emails         []string    `json:"emails"`
	Phones         []string    `json:"phones"`
	ContactPageURL string      `json:"contact_page_url,omitempty"`
	Social         SocialLinks `json:"social"`
}

// TeamMember is one name/title pair found on a page.
type TeamMember struct {
	Name      string `json:"name"`
	Title     string `json:"title"`
	SourceURL string `json:"source_url"`
}

// Team holds staffing-related facts.
type Team struct {
	Members           []TeamMember `json:"members"`
	HeadcountEstimate int          `json:"headcount_estimate,omitempty"`
	HeadcountSource   string       `json:"headcount_source,omitempty"`
	NewHireMentions   []string     `json:"new_hire_mentions"`
}

// AcquisitionSignal is one ownership-change mention with optional year.
type AcquisitionSignal struct {
	Text          string `json:"text"`
	SignalType    string `json:"signal_type"`
	DateMentioned string `json:"date_mentioned,omitempty"`
	SourceURL     string `json:"source_url"`
}

// Acquisition groups provenance/ownership facts.
type Acquisition struct {
	Signals   []AcquisitionSignal `json:"signals"`
	HasSignal bool                `json:"has_signal"`
	Summary   string              `json:"summary,omitempty"`
}

// HistorySnippet is one sentence of company-history prose.
type HistorySnippet struct {
	Text      string `json:"text"`
	SourceURL string `json:"source_url"`
}

// History holds founding-date and narrative facts.
type History struct {
	FoundedYear     int              `json:"founded_year,omitempty"`
	FoundedSource   string           `json:"founded_source,omitempty"`
	YearsInBusiness int              `json:"years_in_business,omitempty"`
	Snippets        []HistorySnippet `json:"snippets"`
}

// ExtractedFactBundle is the structured output of the extraction engine for
// one business. All fields are best-effort; absence is an empty value, never
// an error.
type ExtractedFactBundle struct {
	PlaceID     string      `json:"place_id"`
	WebsiteURI  string      `json:"website_uri"`
	ExtractedAt time.Time   `json:"extracted_at"`
	Contacts    Contacts    `json:"contacts"`
	Team        Team        `json:"team"`
	Acquisition Acquisition `json:"acquisition"`
	History     History     `json:"history"`
}

// ScrapeResult is the per-business summary applied to the business record.
type ScrapeResult struct {
	PlaceID    string               `json:"place_id"`
	Status     ScrapeStatus         `json:"status"`
	Method     string               `json:"method"`
	Pages      int                  `json:"pages"`
	Bytes      int64                `json:"bytes"`
	Errors     int                  `json:"errors"`
	DurationMs int64                `json:"duration_ms"`
	Facts      *ExtractedFactBundle `json:"facts,omitempty"`
}

// FilterOperator narrows the eligible-business query.
type FilterOperator string

// Supported filter operators.
const (
	OpExists    FilterOperator = "EXISTS"
	OpNotExists FilterOperator = "NOT_EXISTS"
	OpEquals    FilterOperator = "EQUALS"
	OpNotEquals FilterOperator = "NOT_EQUALS"
)

// FilterRule is one AND-combined predicate over business record fields.
type FilterRule struct {
	Field    string         `json:"field"`
	Operator FilterOperator `json:"operator"`
	Value    string         `json:"value,omitempty"`
}

// JobRequest is the work order consumed from the external scheduler.
type JobRequest struct {
	JobID           string       `json:"jobId,omitempty"`
	MaxPagesPerSite int          `json:"maxPagesPerSite,omitempty"`
	Concurrency     int          `json:"concurrency,omitempty"`
	FilterRules     []FilterRule `json:"filterRules,omitempty"`
	SkipIfDone      bool         `json:"skipIfDone,omitempty"`
	ForceRescrape   bool         `json:"forceRescrape,omitempty"`
	PlaceIDs        []string     `json:"placeIds,omitempty"`
	FastMode        bool         `json:"fastMode,omitempty"`
}

// JobMetrics aggregates run-level counters across all businesses.
type JobMetrics struct {
	Processed     int   `json:"processed"`
	Failed        int   `json:"failed"`
	TotalPages    int   `json:"total_pages"`
	TotalBytes    int64 `json:"total_bytes"`
	HTTPPages     int   `json:"http_pages"`
	AntiBotPages  int   `json:"antibot_pages"`
	RenderedPages int   `json:"rendered_pages"`
}

// CountPage adds one page to the per-tier and total counters.
func (m *JobMetrics) CountPage(p Page) {
	m.TotalPages++
	m.TotalBytes += int64(len(p.HTML))
	switch p.Method {
	case MethodRendered:
		m.RenderedPages++
	case MethodAntiBot:
		m.AntiBotPages++
	default:
		m.HTTPPages++
	}
}
