// Package fetch implements per-URL retrieval with three escalating tiers:
// a plain HTTP fetch, an anti-bot-tolerant HTTP fetch with a browser-like
// header profile, and full rendering through a shared headless Chrome
// instance. The Resolver drives the escalation as a small explicit state
// machine per URL.
package fetch
