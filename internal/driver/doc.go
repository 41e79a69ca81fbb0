// Package driver orchestrates one enrichment job: it pulls the eligible
// business list once, processes it in sequential waves sized by the resource
// budget, and persists captures, extracted facts, and run metrics. A business
// failure never aborts the run; only a top-level setup failure does.
package driver
