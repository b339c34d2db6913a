package timemath

import (
	"fmt"
	"strings"
	"time"
)

var banglaDigits = []string{"০", "১", "২", "৩", "৪", "৫", "৬", "৭", "৮", "৯"}

var banglaMonths = []string{
	"জানুয়ারি", "ফেব্রুয়ারি", "মার্চ", "এপ্রিল", "মে", "জুন",
	"জুলাই", "আগস্ট", "সেপ্টেম্বর", "অক্টোবর", "নভেম্বর", "ডিসেম্বর",
}

var banglaDays = []string{
	"রবিবার", "সোমবার", "মঙ্গলবার", "বুধবার", "বৃহস্পতিবার", "শুক্রবার", "শনিবার",
}

// LocalizeDigits replaces ASCII digits with their Bangla counterparts
// when locale is "bn". Other locales pass through unchanged.
func LocalizeDigits(s, locale string) string {
	if locale != "bn" {
		return s
	}
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteString(banglaDigits[r-'0'])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// LocalizedDate renders t's date in the display style of the app:
// "Monday, 2 January 2006" for English, "সোমবার, ২ জানুয়ারি ২০০৬" for
// Bangla.
func LocalizedDate(t time.Time, locale string) string {
	if locale != "bn" {
		return t.Format("Monday, 2 January 2006")
	}
	day := LocalizeDigits(fmt.Sprintf("%d", t.Day()), "bn")
	year := LocalizeDigits(fmt.Sprintf("%d", t.Year()), "bn")
	return fmt.Sprintf("%s, %s %s %s", banglaDays[int(t.Weekday())], day, banglaMonths[int(t.Month())-1], year)
}
