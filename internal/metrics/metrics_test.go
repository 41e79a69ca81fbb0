package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSanitizeSite(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want string
	}{
		{"https://Example.com/about", "example.com"},
		{"acme-plumbing.com", "acme-plumbing.com"},
		{"http://www.acme.com:8080/", "www.acme.com"},
		{"://bad", "unknown"},
		{"", "unknown"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, SanitizeSite(tc.in), tc.in)
	}
}

func TestObserversDoNotPanic(t *testing.T) {
	Init()
	Init() // idempotent

	ObservePage("https://example.com", "http", 2048)
	ObservePage("https://example.com", "rendered", 0)
	ObserveBusiness("complete", 3*time.Second)
	ObserveJob("success")
	IncActiveBusinesses()
	DecActiveBusinesses()
}
