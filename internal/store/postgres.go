package store

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

// PostgresConfig controls the connection pool for the business store.
type PostgresConfig struct {
	DSN             string
	MaxConns        int32
	MinConns        int32
	MaxConnLifetime time.Duration
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Close()
}

// PostgresStore implements enrich.BusinessStore on top of a businesses table
// and a jobs table.
type PostgresStore struct {
	pool   querier
	logger *zap.Logger
}

// NewPostgresStore connects a pool using the provided config.
func NewPostgresStore(ctx context.Context, cfg PostgresConfig, logger *zap.Logger) (*PostgresStore, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database.dsn is required")
	}
	poolCfg, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("parse postgres dsn: %w", err)
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	if cfg.MinConns > 0 {
		poolCfg.MinConns = cfg.MinConns
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

// NewPostgresStoreWithPool constructs a store from an existing pool
// (primarily for testing).
func NewPostgresStoreWithPool(pool querier, logger *zap.Logger) (*PostgresStore, error) {
	if pool == nil {
		return nil, fmt.Errorf("pool is required")
	}
	return &PostgresStore{pool: pool, logger: logger}, nil
}

// Close releases the underlying pool resources.
func (s *PostgresStore) Close() {
	if s == nil || s.pool == nil {
		return
	}
	s.pool.Close()
}

// ListEligible returns businesses matching the default eligibility rule
// ("has a website URI and not yet scraped, unless forceRescrape"), narrowed
// by filter rules and an optional explicit id list.
func (s *PostgresStore) ListEligible(ctx context.Context, req enrich.JobRequest) ([]enrich.Business, error) {
	query, args := buildEligibleQuery(req)
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list eligible businesses: %w", err)
	}
	defer rows.Close()

	var out []enrich.Business
	for rows.Next() {
		var b enrich.Business
		if err := rows.Scan(&b.PlaceID, &b.Name, &b.WebsiteURI, &b.PhoneNumber, &b.Scraped); err != nil {
			return nil, fmt.Errorf("scan business row: %w", err)
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate business rows: %w", err)
	}
	return out, nil
}

func buildEligibleQuery(req enrich.JobRequest) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT place_id, COALESCE(name, ''), COALESCE(website_uri, ''), COALESCE(phone_number, ''), scraped
FROM businesses
WHERE website_uri IS NOT NULL AND website_uri <> ''`)

	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if !req.ForceRescrape {
		sb.WriteString(" AND NOT scraped")
	}
	if len(req.PlaceIDs) > 0 {
		sb.WriteString(" AND place_id = ANY(" + arg(req.PlaceIDs) + ")")
	}
	for _, rule := range req.FilterRules {
		switch rule.Operator {
		case enrich.OpExists:
			sb.WriteString(" AND attrs ? " + arg(rule.Field))
		case enrich.OpNotExists:
			sb.WriteString(" AND NOT (attrs ? " + arg(rule.Field) + ")")
		case enrich.OpEquals:
			sb.WriteString(" AND attrs->>" + arg(rule.Field) + " = " + arg(rule.Value))
		case enrich.OpNotEquals:
			sb.WriteString(" AND attrs->>" + arg(rule.Field) + " IS DISTINCT FROM " + arg(rule.Value))
		}
	}
	sb.WriteString(" ORDER BY place_id")
	return sb.String(), args
}

// ApplyScrapeResult writes the scrape outcome onto the business row. When a
// fact bundle is present, every extracted field is merged into attrs with
// explicit nulls so values absent from this capture are cleared.
func (s *PostgresStore) ApplyScrapeResult(ctx context.Context, result enrich.ScrapeResult) error {
	if result.PlaceID == "" {
		return fmt.Errorf("place id is required")
	}

	if result.Facts == nil {
		query := `
UPDATE businesses SET
	scraped = TRUE,
	scrape_status = $2,
	scrape_method = $3,
	pages_scraped = $4,
	bytes_scraped = $5,
	scrape_errors = $6,
	scrape_duration_ms = $7,
	scraped_at = now()
WHERE place_id = $1`
		if _, err := s.pool.Exec(ctx, query,
			result.PlaceID, string(result.Status), result.Method,
			result.Pages, result.Bytes, result.Errors, result.DurationMs); err != nil {
			return fmt.Errorf("update business %s: %w", result.PlaceID, err)
		}
		return nil
	}

	attrs, err := json.Marshal(FlattenFacts(result.Facts))
	if err != nil {
		return fmt.Errorf("marshal attrs for %s: %w", result.PlaceID, err)
	}
	query := `
UPDATE businesses SET
	scraped = TRUE,
	scrape_status = $2,
	scrape_method = $3,
	pages_scraped = $4,
	bytes_scraped = $5,
	scrape_errors = $6,
	scrape_duration_ms = $7,
	scraped_at = now(),
	attrs = COALESCE(attrs, '{}'::jsonb) || $8::jsonb
WHERE place_id = $1`
	if _, err := s.pool.Exec(ctx, query,
		result.PlaceID, string(result.Status), result.Method,
		result.Pages, result.Bytes, result.Errors, result.DurationMs, attrs); err != nil {
		return fmt.Errorf("update business %s: %w", result.PlaceID, err)
	}
	return nil
}

// UpdateJobMetrics writes the aggregate counters to the owning job row. An
// unknown job id is logged and tolerated.
func (s *PostgresStore) UpdateJobMetrics(ctx context.Context, jobID string, metrics enrich.JobMetrics) error {
	payload, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("marshal job metrics: %w", err)
	}
	tag, err := s.pool.Exec(ctx,
		`UPDATE jobs SET metrics = $2::jsonb, updated_at = now() WHERE job_id = $1`,
		jobID, payload)
	if err != nil {
		return fmt.Errorf("update job %s: %w", jobID, err)
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn("job record not found for metrics update", zap.String("job_id", jobID))
	}
	return nil
}

// FlattenFacts maps an extracted fact bundle onto flat attribute keys. Every
// key is always present; absent values are nil so the JSONB merge overwrites
// stale values from earlier runs.
func FlattenFacts(f *enrich.ExtractedFactBundle) map[string]any {
	attrs := map[string]any{
		"emails":                 nullableStrings(f.Contacts.Emails),
		"phones":                 nullableStrings(f.Contacts.Phones),
		"contact_page_url":       nullableString(f.Contacts.ContactPageURL),
		"social_linkedin":        nullableString(f.Contacts.Social.LinkedIn),
		"social_facebook":        nullableString(f.Contacts.Social.Facebook),
		"social_instagram":       nullableString(f.Contacts.Social.Instagram),
		"social_twitter":         nullableString(f.Contacts.Social.Twitter),
		"team_members":           nullableAny(len(f.Team.Members) > 0, f.Team.Members),
		"headcount_estimate":     nullableInt(f.Team.HeadcountEstimate),
		"headcount_source":       nullableString(f.Team.HeadcountSource),
		"new_hire_mentions":      nullableStrings(f.Team.NewHireMentions),
		"acquisition_signals":    nullableAny(len(f.Acquisition.Signals) > 0, f.Acquisition.Signals),
		"has_acquisition_signal": f.Acquisition.HasSignal,
		"acquisition_summary":    nullableString(f.Acquisition.Summary),
		"founded_year":           nullableInt(f.History.FoundedYear),
		"founded_source":         nullableString(f.History.FoundedSource),
		"years_in_business":      nullableInt(f.History.YearsInBusiness),
		"history_snippets":       nullableAny(len(f.History.Snippets) > 0, f.History.Snippets),
	}
	return attrs
}

func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func nullableInt(n int) any {
	if n == 0 {
		return nil
	}
	return n
}

func nullableStrings(vals []string) any {
	if len(vals) == 0 {
		return nil
	}
	return vals
}

func nullableAny(present bool, v any) any {
	if !present {
		return nil
	}
	return v
}
