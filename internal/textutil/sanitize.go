package textutil

import "strings"

// titleReplacer maps characters that are illegal or problematic in filesystem
// paths to visually similar fullwidth substitutes.
var titleReplacer = strings.NewReplacer(
	"<", "＜",
	">", "＞",
	":", "：",
	"\"", "＂",
	"/", "／",
	"\\", "＼",
	"|", "｜",
	"?", "？",
	"*", "＊",
)

// SanitizeTitle replaces reserved filesystem characters in a title with
// visually similar substitutes and trims surrounding whitespace. It is the
// only form of a title that should be used as a path component.
func SanitizeTitle(title string) string {
	return strings.TrimSpace(titleReplacer.Replace(title))
}
