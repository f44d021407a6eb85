// Package format holds the display helpers used by the dashboard views.
package format

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

const (
	appName = "Commuter Security App"

	dateLayout     = "Jan 2, 2006"
	dateTimeLayout = "Jan 2, 2006, 03:04 PM"

	// DefaultStatusColor is returned by StatusColor for unmapped values.
	DefaultStatusColor = "text-white"
)

// Capitalize trims s and upper-cases its first rune. The rest is unchanged.
func Capitalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// CapitalizeWords capitalizes every whitespace-separated word and joins them
// with single spaces.
func CapitalizeWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

// FormatDate renders t in its own location as "Jan 2, 2006", or
// "Jan 2, 2006, 03:04 PM" when includeTime is set. The zero time renders as "".
func FormatDate(t time.Time, includeTime bool) string {
	if t.IsZero() {
		return ""
	}
	if includeTime {
		return t.Format(dateTimeLayout)
	}
	return t.Format(dateLayout)
}

// FormatLastLogin is FormatLastLoginAt relative to the current time.
func FormatLastLogin(t time.Time) string {
	return FormatLastLoginAt(t, time.Now())
}

// FormatLastLoginAt renders how long ago t was, relative to now:
//
//	zero        → "Never"
//	< 1 minute  → "Just now"
//	< 1 hour    → "Nm ago"
//	< 1 day     → "Nh ago"
//	≤ 7 days    → "Nd ago"
//	older       → FormatDate(t, false)
//
// Every bucket floors.
func FormatLastLoginAt(t, now time.Time) string {
	if t.IsZero() {
		return "Never"
	}

	diff := now.Sub(t)
	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days <= 7:
		return fmt.Sprintf("%dd ago", days)
	default:
		return FormatDate(t, false)
	}
}

// StatusColor looks value up in colors, falling back to fallback or, when that
// is empty, DefaultStatusColor.
func StatusColor(value string, colors map[string]string, fallback string) string {
	if c, ok := colors[value]; ok {
		return c
	}
	if fallback == "" {
		return DefaultStatusColor
	}
	return fallback
}

// PageTitle builds the document title for a dashboard page.
func PageTitle(page string) string {
	page = strings.TrimSpace(page)
	if page == "" {
		return appName
	}
	return page + " - " + appName
}

// Colour classes used by the table views.
var (
	LicenseStatusColors = map[string]string{
		"active":    "text-green-400",
		"expired":   "text-yellow-400",
		"suspended": "text-orange-400",
		"revoked":   "text-red-400",
	}

	RoleColors = map[string]string{
		"super_admin": "text-purple-400",
		"admin":       "text-blue-400",
		"moderator":   "text-teal-400",
	}
)
