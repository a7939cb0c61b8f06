package shorten

import "strings"

// waHost is the messaging-link domain whose path carries a phone number.
const waHost = "wa.me"

// maxInferredName bounds the name picked out of the query string.
const maxInferredName = 25

// Describe derives a phone tag and a human-readable description from a long
// URL. The host (third segment when split on "/") is the base description; a
// wa.me link additionally yields the next segment as the phone tag. When the
// query string follows the one-comma convention "...?<text>,<name>", the
// description becomes "<host> para <name>". This is a heuristic for one
// specific encoding, not a general URL parser.
func Describe(longURL string) (nmbr, descr string) {
	base, query, hasQuery := strings.Cut(longURL, "?")

	segs := strings.Split(base, "/")
	if len(segs) < 3 {
		return "", ""
	}
	host := segs[2]

	if host == waHost && len(segs) > 3 {
		nmbr = segs[3]
	}

	if !hasQuery {
		return nmbr, host
	}
	fields := strings.Split(query, ",")
	if len(fields) < 2 || len(fields[1]) > maxInferredName {
		return nmbr, host
	}
	name := strings.TrimSpace(strings.ReplaceAll(fields[1], "%20", " "))
	if name == "" {
		return nmbr, host
	}
	return nmbr, host + " para " + name
}
