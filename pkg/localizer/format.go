package localizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// placeholder matches escaped braces and positional items such as {0}, {1,-8} or {2:N2}.
// Alignment and format components are accepted and ignored.
var placeholder = regexp.MustCompile(`\{\{|\}\}|\{(\d+)(?:,\s*-?\d+)?(?::[^{}]*)?\}`)

// format substitutes positional arguments into template.
// Out of range items are left untouched.
func format(template string, args []any) string {
	if !strings.ContainsAny(template, "{}") {
		return template
	}

	matches := placeholder.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return template
	}

	var b strings.Builder
	b.Grow(len(template))
	last := 0
	for _, m := range matches {
		b.WriteString(template[last:m[0]])
		last = m[1]

		switch match := template[m[0]:m[1]]; match {
		case "{{":
			b.WriteByte('{')
		case "}}":
			b.WriteByte('}')
		default:
			idx, err := strconv.Atoi(template[m[2]:m[3]])
			if err != nil || idx >= len(args) {
				b.WriteString(match)
				continue
			}
			b.WriteString(fmt.Sprint(args[idx]))
		}
	}
	b.WriteString(template[last:])
	return b.String()
}
