package calendar

import (
	"testing"
	"time"

	"github.com/goodsign/monday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var fixedToday = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

func TestNavigatorYearWindow(t *testing.T) {
	n := NewNavigator(fixedToday, false)

	years := n.Years()
	require.Len(t, years, 200)
	assert.Equal(t, 1926, years[0])
	assert.Equal(t, 2125, years[len(years)-1])

	assert.True(t, n.SetYear(1926))
	assert.False(t, n.SetYear(1925))
	assert.False(t, n.SetYear(2126))
	assert.Equal(t, 1926, n.Year())
}

func TestNavigatorMonthCarry(t *testing.T) {
	n := NewNavigator(fixedToday, false)
	require.True(t, n.SetMonth(time.December))

	assert.True(t, n.NextMonth())
	assert.Equal(t, time.January, n.Month())
	assert.Equal(t, 2027, n.Year())

	assert.True(t, n.PrevMonth())
	assert.Equal(t, time.December, n.Month())
	assert.Equal(t, 2026, n.Year())

	assert.False(t, n.SetMonth(0))
	assert.False(t, n.SetMonth(13))
}

func TestNavigatorStopsAtWindowEdges(t *testing.T) {
	n := NewNavigator(fixedToday, false)

	require.True(t, n.SetYear(2125))
	require.True(t, n.SetMonth(time.December))
	assert.False(t, n.NextMonth())
	assert.False(t, n.NextYear())
	assert.Equal(t, time.December, n.Month())
	assert.Equal(t, 2125, n.Year())

	require.True(t, n.SetYear(1926))
	require.True(t, n.SetMonth(time.January))
	assert.False(t, n.PrevMonth())
	assert.False(t, n.PrevYear())
	assert.Equal(t, time.January, n.Month())
	assert.Equal(t, 1926, n.Year())
}

func TestNavigatorTodayAndLayout(t *testing.T) {
	n := NewNavigator(fixedToday, false)
	n.NextYear()
	n.NextMonth()
	n.Today()

	assert.Equal(t, time.October, n.Month())
	assert.Equal(t, 2026, n.Year())
	assert.True(t, n.IsToday(17))
	assert.False(t, n.IsToday(18))

	require.True(t, n.SetMonth(time.February))
	assert.Len(t, n.Layout().Cells, 28)

	legacy := NewNavigator(fixedToday, true)
	require.True(t, legacy.SetMonth(time.February))
	assert.Len(t, legacy.Layout().Cells, LegacyDays)
}

func TestResolveNames(t *testing.T) {
	tests := []struct {
		locale  string
		want    monday.Locale
		january string
		sunday  string
	}{
		{"en_US.UTF-8", monday.LocaleEnUS, "January", "Sunday"},
		{"de_DE.UTF-8", monday.LocaleDeDE, "Januar", "Sonntag"},
		{"fr_FR", monday.LocaleFrFR, "Janvier", "Dimanche"},
		{"es_ES", monday.LocaleEsES, "Enero", "Domingo"},
		{"sv_SE.UTF-8", monday.LocaleSvSE, "Januari", "Söndag"},
		{"C", monday.LocaleEnUS, "January", "Sunday"},
		{"not a locale", monday.LocaleEnUS, "January", "Sunday"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			n := ResolveNames(tt.locale)
			assert.Equal(t, tt.want, n.Locale)
			assert.Equal(t, tt.january, n.Month(time.January))
			assert.Equal(t, tt.sunday, n.Weekdays[0])
		})
	}
}

func TestResolveNamesBeyondEuropeanLocales(t *testing.T) {
	for _, locale := range []string{"ja_JP.UTF-8", "pl_PL.UTF-8", "ru_RU.UTF-8"} {
		t.Run(locale, func(t *testing.T) {
			n := ResolveNames(locale)
			assert.NotEqual(t, monday.LocaleEnUS, n.Locale)
			assert.NotEqual(t, "January", n.Month(time.January))
			assert.NotEqual(t, "Sunday", n.Weekdays[0])
			for _, m := range n.Months {
				assert.NotEmpty(t, m)
			}
		})
	}
}

func TestResolveNamesUnknownFallsBackToEnglish(t *testing.T) {
	n := ResolveNames("tlh")
	assert.Equal(t, monday.LocaleEnUS, n.Locale)
	assert.Equal(t, language.MustParse("en-US"), n.Tag)
	assert.Equal(t, "December", n.Month(time.December))
}

func TestResolveNamesFromEnvironment(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_TIME", "de_DE.UTF-8")
	t.Setenv("LANG", "fr_FR.UTF-8")

	n := ResolveNames("")
	assert.Equal(t, "März", n.Month(time.March))
	assert.Equal(t, "Son", n.ShortWeekday(0))
	assert.Equal(t, "", n.ShortWeekday(7))
	assert.Equal(t, "", n.Month(0))
}
