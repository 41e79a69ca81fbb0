// Package store persists business and job records. The production
// implementation is Postgres-backed, with extracted facts held in a JSONB
// attrs column on the business row; a memory implementation backs tests
// and batch-list runs.
package store
