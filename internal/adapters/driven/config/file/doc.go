// Package file provides the TOML-backed configuration store.
//
// The file lives at ~/.wpdocs/config.toml unless another directory is
// given. Sections are flattened to dot-notation keys on load and nested
// again on save, so "vip.search_url" is written as search_url under [vip].
package file
