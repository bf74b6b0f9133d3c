// Package naming derives directory lookup keys from show titles.
//
// Keys are what the voice platform hands us back, so they must be stable
// under the platform's casing and punctuation mangling: everything is
// lowercased and the characters that speech transcription never produces
// (double quote, colon, exclamation mark) are stripped.
package naming

import (
	"regexp"
	"strings"
)

var keyStripper = strings.NewReplacer(`"`, "", ":", "", "!", "")

var (
	possessiveShowRE = regexp.MustCompile(`^(.+)'s show$`)
	radioProgramRE   = regexp.MustCompile(`^the (.+) radio programme$`)
)

// NormalizeKey turns a raw title or query into the canonical lookup form:
// lowercase with `"`, `:` and `!` removed.
func NormalizeKey(s string) string {
	return keyStripper.Replace(strings.ToLower(s))
}

// TitleSynonyms returns every key a show title should be reachable under:
// the normalized full title first, then any shorter synonym derived from
// common title shapes ("<name>'s show", "the <name> radio programme").
func TitleSynonyms(title string) []string {
	canonical := NormalizeKey(title)
	keys := []string{canonical}

	if m := possessiveShowRE.FindStringSubmatch(canonical); m != nil {
		keys = append(keys, m[1])
	}
	if m := radioProgramRE.FindStringSubmatch(canonical); m != nil {
		keys = append(keys, m[1])
	}
	return keys
}
