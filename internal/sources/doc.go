// Package sources provides the SourceAdapter implementations for wpdocs.
//
// Two adapters are available:
//   - JSONAdapter queries a WordPress REST search endpoint
//   - HTMLAdapter fetches a search or code reference page
//
// Every adapter call is a single attempt with its own timeout. Failures are
// classified into domain.ErrorReport kinds: a 404 is NotFound, an exceeded
// deadline is Timeout, anything else is Network.
package sources
