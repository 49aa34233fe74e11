// Package store caches extraction results in a local SQLite database,
// keyed by document hash, so a re-run of the same pair of PDFs costs
// nothing.
package store
