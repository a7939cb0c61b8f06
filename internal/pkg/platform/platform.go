// Package platform buckets visitors by coarse substring matching against
// request header text. It is deliberately not a real user-agent parser.
package platform

import (
	"net/http"
	"strings"
)

// Unknown is recorded when no keyword matches.
const Unknown = "NA"

// Keywords is the ordered match list; the first substring hit wins.
var Keywords = []string{"android", "ios", "iphone", "windows", "macintosh", "macos"}

// Classify scans the concatenation of all header values, case-insensitively,
// for the first keyword match.
func Classify(header http.Header) string {
	var sb strings.Builder
	for _, values := range header {
		for _, v := range values {
			sb.WriteString(v)
		}
	}
	haystack := strings.ToLower(sb.String())
	for _, kw := range Keywords {
		if strings.Contains(haystack, kw) {
			return kw
		}
	}
	return Unknown
}
