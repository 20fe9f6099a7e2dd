package console

import "strings"

// splitArgs splits a command line into shell style words. Single quotes,
// double quotes and backslash escapes are honored, and quoted empty
// strings survive as empty words so that `Help "" 1` keeps its position.
func splitArgs(line string) []string {
	var (
		words   []string
		word    strings.Builder
		inWord  bool
		quote   byte
		escaped bool
	)
	flush := func() {
		if inWord {
			words = append(words, word.String())
		}
		word.Reset()
		inWord = false
	}
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case escaped:
			word.WriteByte(ch)
			escaped = false
		case ch == '\\' && quote != '\'':
			inWord = true
			escaped = true
		case quote != 0:
			if ch == quote {
				quote = 0
			} else {
				word.WriteByte(ch)
			}
		case ch == '\'' || ch == '"':
			inWord = true
			quote = ch
		case ch == ' ' || ch == '\t':
			flush()
		default:
			inWord = true
			word.WriteByte(ch)
		}
	}
	flush()
	return words
}
