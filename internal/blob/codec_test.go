package blob

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCaptureKeys(t *testing.T) {
	at := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	raw, facts := CaptureKeys("place-123", at)
	require.Equal(t, "captures/place-123/1780315200000/raw.json.gz", raw)
	require.Equal(t, "captures/place-123/1780315200000/facts.json.gz", facts)
}

func TestPutGzipJSONRoundTrip(t *testing.T) {
	store := NewMemoryStore()
	payload := map[string]any{"place_id": "p1", "pages": 3}

	err := PutGzipJSON(context.Background(), store, "captures/p1/1/raw.json.gz", payload)
	require.NoError(t, err)

	obj, ok := store.Get("captures/p1/1/raw.json.gz")
	require.True(t, ok)
	require.Equal(t, "application/json", obj.ContentType)
	require.Equal(t, "gzip", obj.ContentEncoding)

	zr, err := gzip.NewReader(bytes.NewReader(obj.Data))
	require.NoError(t, err)
	decoded, err := io.ReadAll(zr)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(decoded, &got))
	require.Equal(t, "p1", got["place_id"])
	require.EqualValues(t, 3, got["pages"])
}
