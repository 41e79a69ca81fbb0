// Package enrich defines the core types and interfaces shared across the
// scrape pipeline: business records, fetched pages, capture and fact bundles,
// and the storage/fetch contracts the driver is wired against.
package enrich
