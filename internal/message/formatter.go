// Package message renders the announcement text for a round.
//
// Formatting is pure: the same Detail always produces the same message,
// so the package is testable by plain input/output comparison.
package message

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/tfkdiscgolf/metrix-announcer/internal/event"
)

// descriptionLimit caps how much of the round description makes it into
// the post.
const descriptionLimit = 200

// FormatAnnouncement renders the Facebook post for a round.
func FormatAnnouncement(d *event.Detail) string {
	var msg strings.Builder

	msg.WriteString("📣 Neste runde i TFK Seriespill nærmer seg!\n\n")
	msg.WriteString(fmt.Sprintf("🏆 %s\n", d.Title))
	msg.WriteString(fmt.Sprintf("📅 %s\n", FormatDateTime(d.StartTime)))
	msg.WriteString(fmt.Sprintf("⛳ %s\n", d.CourseName))
	msg.WriteString(fmt.Sprintf("🗺️ Layout: %s\n\n", d.LayoutName))
	msg.WriteString(fmt.Sprintf("ℹ️ %s\n\n", truncate(d.Description, descriptionLimit)))
	msg.WriteString(fmt.Sprintf("🔗 Mer info og påmelding: %s", d.URL))

	return msg.String()
}

// FormatDateTime renders t as a long-form Norwegian date,
// e.g. "Lørdag 15. mars 2025 kl. 10:00".
func FormatDateTime(t time.Time) string {
	weekday := capitalize(norwegianWeekdays[t.Weekday()])
	month := norwegianMonths[t.Month()]
	return fmt.Sprintf("%s %02d. %s %d kl. %s", weekday, t.Day(), month, t.Year(), t.Format("15:04"))
}

// truncate cuts s to limit runes, appending an ellipsis when shortened.
// The descriptions are Norwegian UTF-8 text, so this counts runes, not
// bytes.
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func capitalize(s string) string {
	r := []rune(s)
	if len(r) == 0 {
		return s
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
