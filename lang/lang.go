// Package lang formats lists and counts for console output.
package lang

import (
	"bytes"
	"fmt"

	"github.com/gertd/go-pluralize"
)

const (
	DefaultPattern   = "%s"
	DefaultSeparator = ","
	DefaultOperator  = "and"
)

var (
	pluralizer = pluralize.NewClient()
)

// Enumerator joins elements into a sentence fragment, e.g. "0, 1, or 2".
type Enumerator struct {
	Pattern   string
	Separator string
	Operator  string
}

func (e Enumerator) Do(elements ...string) string {
	pattern, separator, operator := DefaultPattern, DefaultSeparator, DefaultOperator
	if e.Pattern != "" {
		pattern = e.Pattern
	}
	if e.Separator != "" {
		separator = e.Separator
	}
	if e.Operator != "" {
		operator = e.Operator
	}
	res := &bytes.Buffer{}
	for idx, element := range elements {
		fmt.Fprintf(res, pattern, element)
		switch {
		case idx+2 < len(elements):
			fmt.Fprintf(res, "%s ", separator)
		case idx+2 == len(elements) && len(elements) > 2:
			fmt.Fprintf(res, "%s %s ", separator, operator)
		case idx+2 == len(elements):
			fmt.Fprintf(res, " %s ", operator)
		}
	}
	return res.String()
}

func Plural(word string) string {
	return pluralizer.Plural(word)
}

// Card returns count followed by word, pluralized unless count is 1.
// word is given in singular.
func Card(count int, word string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, word)
	}
	return fmt.Sprintf("%d %s", count, Plural(word))
}
