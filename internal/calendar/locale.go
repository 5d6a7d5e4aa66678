package calendar

import (
	"os"
	"strings"
	"time"

	"github.com/goodsign/monday"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Names holds the display names for one locale. They are resolved once and
// never refreshed.
type Names struct {
	Tag      language.Tag
	Locale   monday.Locale
	Months   [12]string
	Weekdays [7]string
}

var (
	locales []monday.Locale
	matcher language.Matcher
)

func init() {
	// en_US comes first so the matcher falls back to it.
	locales = []monday.Locale{monday.LocaleEnUS}
	tags := []language.Tag{language.MustParse("en-US")}
	for _, l := range monday.ListLocales() {
		if l == monday.LocaleEnUS {
			continue
		}
		tag, err := language.Parse(strings.ReplaceAll(string(l), "_", "-"))
		if err != nil {
			continue
		}
		locales = append(locales, l)
		tags = append(tags, tag)
	}
	matcher = language.NewMatcher(tags)
}

// ResolveNames picks names for locale, or for the process environment when
// locale is empty.
func ResolveNames(locale string) Names {
	if strings.TrimSpace(locale) == "" {
		locale = EnvLocale()
	}
	tag, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		tag = language.English
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		idx = 0
	}

	loc := locales[idx]
	base, _ := language.Parse(strings.ReplaceAll(string(loc), "_", "-"))
	caser := cases.Title(base)
	n := Names{Tag: base, Locale: loc}
	for i := range n.Months {
		// A bare month layout yields the standalone (nominative) form.
		first := time.Date(2000, time.Month(i+1), 1, 0, 0, 0, 0, time.UTC)
		n.Months[i] = caser.String(monday.Format(first, "January", loc))
	}
	for i := range n.Weekdays {
		// 2000-01-02 was a Sunday.
		day := time.Date(2000, time.January, 2+i, 0, 0, 0, 0, time.UTC)
		n.Weekdays[i] = caser.String(monday.Format(day, "Monday", loc))
	}
	return n
}

// EnvLocale reads the POSIX locale variables in precedence order.
func EnvLocale() string {
	for _, k := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// normalizeLocale turns "de_DE.UTF-8@euro" into "de-DE".
func normalizeLocale(v string) string {
	v = strings.TrimSpace(v)
	if i := strings.IndexAny(v, ".@"); i >= 0 {
		v = v[:i]
	}
	if v == "C" || v == "POSIX" {
		return "en"
	}
	return strings.ReplaceAll(v, "_", "-")
}

func (n Names) Month(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return n.Months[m-1]
}

// ShortWeekday returns the first three runes of the weekday name.
func (n Names) ShortWeekday(wd int) string {
	if wd < 0 || wd > 6 {
		return ""
	}
	r := []rune(n.Weekdays[wd])
	if len(r) > 3 {
		r = r[:3]
	}
	return string(r)
}
