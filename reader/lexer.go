package reader

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2023 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"regexp"
	"strings"
)

// tokenPattern is the classic MAL tokenizer: leading whitespace (commas are
// whitespace), then one token, which is either the splice marker, a single
// special character, a string literal — possibly with the closing quote still
// missing —, a comment, or a run of plain atom characters.
var tokenPattern = regexp.MustCompile(
	`[\s,]*(~@|[\[\]{}()'` + "`" + `~^@]|"(?:\\.|[^\\"])*"?|;.*|[^\s\[\]{}('"` + "`" + `,;)]*)`)

// tokenize splits a buffer into tokens. Empty matches and comment tokens are
// dropped.
func tokenize(input string) []string {
	var tokens []string
	for _, m := range tokenPattern.FindAllStringSubmatch(input, -1) {
		tok := m[1]
		if tok == "" || strings.HasPrefix(tok, ";") {
			continue
		}
		tokens = append(tokens, tok)
	}
	tracer().Debugf("tokenized %d tokens", len(tokens))
	return tokens
}
