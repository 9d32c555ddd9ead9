// Package textio reads Cue Sheet text files and decodes them to UTF-8.
//
// Sheets in the wild are frequently saved in legacy single-byte or CJK
// encodings. Decoding checks for Unicode byte-order marks first, passes
// through valid UTF-8, and otherwise falls back to a caller-selected
// encoding resolved by its IANA name.
package textio
