package codec

import "regexp"

// Exported exchange strings start with "0eN": the version byte followed by
// the base64 encoding of the zlib header 0x78 0xDA.
var exchangePattern = regexp.MustCompile(`0eN[A-Za-z0-9+/]+={0,2}`)

// Extract returns every candidate exchange string found in free-form text,
// in order of appearance. Candidates are matched syntactically; callers
// decide whether each one actually decodes.
func Extract(text string) []string {
	return exchangePattern.FindAllString(text, -1)
}
