package i18n

import (
	"errors"
	"strings"

	"golang.org/x/text/language"
)

// maxCultureNameLength mirrors RFC 5646's recommended upper bound for tags.
const maxCultureNameLength = 35

// Culture identifies a language/region pair such as "zh-CN".
// The zero value is the invariant culture.
type Culture struct {
	name string
}

// Invariant is the culture-neutral root of every culture chain.
var Invariant = Culture{}

// Parse canonicalises the casing of a culture name ("zh-cn" -> "zh-CN").
// Deprecated codes are kept as written ("iw-IL" stays "iw-IL") so names match
// the URL segments and file names they were configured for.
// Empty input yields Invariant.
func Parse(name string) (Culture, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Invariant, nil
	}
	if len(name) > maxCultureNameLength {
		return Invariant, ErrInvalidCulture
	}

	tag, err := language.Raw.Parse(strings.ReplaceAll(name, "_", "-"))
	if err != nil {
		return Invariant, errors.Join(ErrInvalidCulture, err)
	}
	if tag == language.Und {
		return Invariant, nil
	}
	return Culture{name: tag.String()}, nil
}

// MustParse is like Parse but panics on malformed names.
// Intended for package-level variables and tests.
func MustParse(name string) Culture {
	c, err := Parse(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseList parses every name, failing on the first malformed one.
func ParseList(names ...string) ([]Culture, error) {
	cultures := make([]Culture, 0, len(names))
	for _, n := range names {
		c, err := Parse(n)
		if err != nil {
			return nil, err
		}
		cultures = append(cultures, c)
	}
	return cultures, nil
}

// Name returns the canonical culture name, empty for Invariant.
func (c Culture) Name() string { return c.name }

func (c Culture) String() string {
	if c.name == "" {
		return "invariant"
	}
	return c.name
}

// IsInvariant reports whether c is the invariant culture.
func (c Culture) IsInvariant() bool { return c.name == "" }

// Equal compares culture names case-insensitively.
func (c Culture) Equal(other Culture) bool {
	return strings.EqualFold(c.name, other.name)
}

// Parent drops the last subtag: "zh-Hans-CN" -> "zh-Hans" -> "zh" -> Invariant.
// Invariant is its own parent.
func (c Culture) Parent() Culture {
	idx := strings.LastIndex(c.name, "-")
	if idx <= 0 {
		return Invariant
	}
	return Culture{name: c.name[:idx]}
}

// Chain returns c followed by all of its ancestors, ending with Invariant.
func (c Culture) Chain() []Culture {
	chain := []Culture{c}
	for current := c; !current.IsInvariant(); {
		current = current.Parent()
		chain = append(chain, current)
	}
	return chain
}

// Find returns the culture in supported whose name matches name case-insensitively.
func Find(supported []Culture, name string) (Culture, bool) {
	if name == "" {
		return Invariant, false
	}
	for _, c := range supported {
		if strings.EqualFold(c.name, name) {
			return c, true
		}
	}
	return Invariant, false
}

// SplitCultureSuffix splits a dotted resource name into its base and trailing
// culture: "Views.Home.fr-FR" gives ("Views.Home", fr-FR, true). The trailing
// segment only counts as a culture when it starts with a lower-case letter and
// parses back to the same spelling, so "Views.Nav" and "Views.Shared.nav" stay
// plain names.
func SplitCultureSuffix(name string) (string, Culture, bool) {
	idx := strings.LastIndex(name, ".")
	if idx <= 0 || idx == len(name)-1 {
		return name, Invariant, false
	}
	last := name[idx+1:]
	if last[0] < 'a' || last[0] > 'z' {
		return name, Invariant, false
	}
	c, err := Parse(last)
	if err != nil || c.IsInvariant() || !strings.EqualFold(c.Name(), strings.ReplaceAll(last, "_", "-")) {
		return name, Invariant, false
	}
	return name[:idx], c, true
}
