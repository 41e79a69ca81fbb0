// Package patterns is the static matcher library used by the extraction
// engine: emails, phones, social profiles, team members, headcount, founding
// dates, acquisition signals, history prose, and contact-page URL shapes.
// Everything here is a pure function over text; no state, no I/O.
package patterns
