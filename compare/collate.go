package compare

import (
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator returns a locale-aware string ordering for tag.
//
// The returned Less holds a single collate.Collator and inherits its
// restriction: it must not be called from multiple goroutines at once.
//
//	l := list.New(list.WithLess(compare.Collator(language.German)))
//	l.Sort()
func Collator(tag language.Tag, opts ...collate.Option) Less[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) < 0
	}
}

// CollatorEqual is the equivalence induced by Collator. With collate.IgnoreCase
// or collate.IgnoreDiacritics it treats case or accent variants as duplicates,
// which is what list.UniqueFunc wants for natural-language data.
func CollatorEqual(tag language.Tag, opts ...collate.Option) Equal[string] {
	c := collate.New(tag, opts...)
	return func(a, b string) bool {
		return c.CompareString(a, b) == 0
	}
}
