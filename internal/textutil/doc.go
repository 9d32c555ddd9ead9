// Package textutil provides text sanitation helpers for building filesystem
// paths from human-supplied track and disc titles.
package textutil
