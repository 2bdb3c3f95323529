// Package history keeps the per-field list of previously entered lines.
//
// A Controller owns one named list ordered oldest to newest, a browsing
// cursor into it, and the flags that decide when the live line is pushed
// and when the list must be persisted. Stores load and save lists by name.
package history
