// Package extractors turns fetched payloads into document summaries.
//
// REST items are read from their rendered title, excerpt and content fields.
// HTML pages are read with selector profiles: each profile is an ordered list
// of candidate selectors tried in priority order, so a partial site redesign
// yields fewer summaries instead of an error.
package extractors
