// Package history persists completed split runs in SQLite so already
// processed sheets can be skipped on later invocations.
package history
