package domain

import (
	"strings"
	"time"
)

type Locale string

const (
	LocaleZH Locale = "zh"
	LocaleEN Locale = "en"
)

var weekdayNames = map[Locale][7]string{
	LocaleZH: {"周日", "周一", "周二", "周三", "周四", "周五", "周六"},
	LocaleEN: {"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"},
}

var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15:04:05",
	time.RFC3339,
}

func ParseLocale(s string) (Locale, bool) {
	l := Locale(strings.ToLower(strings.TrimSpace(s)))
	_, ok := weekdayNames[l]
	return l, ok
}

// WeekdayLabel names the weekday of a calendar date. Empty or unparseable input
// yields "".
func WeekdayLabel(date string, locale Locale) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return ""
	}

	names, ok := weekdayNames[locale]
	if !ok {
		names = weekdayNames[LocaleZH]
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, date); err == nil {
			return names[t.Weekday()]
		}
	}

	return ""
}
