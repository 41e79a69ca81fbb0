package blob

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/leadscout/enrich/internal/enrich"
)

// CaptureKeys returns the object keys for one capture of a business:
// the raw page bundle and the extracted fact bundle. Both share a
// millisecond timestamp so they can be correlated later.
func CaptureKeys(placeID string, at time.Time) (raw, facts string) {
	ms := at.UnixMilli()
	raw = fmt.Sprintf("captures/%s/%d/raw.json.gz", placeID, ms)
	facts = fmt.Sprintf("captures/%s/%d/facts.json.gz", placeID, ms)
	return raw, facts
}

// PutGzipJSON marshals v, gzips it, and stores it under key with the
// metadata readers need to decode it.
func PutGzipJSON(ctx context.Context, store enrich.BlobStore, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", key, err)
	}
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return fmt.Errorf("compressing %s: %w", key, err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressing %s: %w", key, err)
	}
	return store.Put(ctx, key, "application/json", "gzip", buf.Bytes())
}
