// Package blob persists capture objects to durable object storage. The
// production implementation targets Google Cloud Storage; an in-memory
// implementation backs tests and dry runs.
package blob
