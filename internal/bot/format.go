package bot

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/accountlens/accountlens/internal/models"
	"github.com/accountlens/accountlens/internal/storage"
)

// formatReport renders an analysis report as a MarkdownV2 message.
func formatReport(r models.Report) string {
	a := r.Account

	var b strings.Builder
	b.WriteString("🔍 *User Analysis Report*\n\n")

	writeField(&b, "🆔 User ID", fmt.Sprintf("%d", a.ID))
	writeField(&b, "👤 Name", orNA(strings.TrimSpace(a.FirstName+" "+a.LastName)))
	writeField(&b, "📛 Username", orNA(a.Username))
	writeField(&b, "🌐 Language", orUnknown(a.LanguageCode))
	writeField(&b, "🌍 Country", formatCountry(r.Country))
	writeField(&b, "📅 Registration", r.Registration.String())
	writeField(&b, "🤖 Is Bot", yesNo(a.IsBot))
	writeField(&b, "✅ Verified", yesNo(a.IsVerified))
	writeField(&b, "🌟 Premium", yesNo(a.IsPremium))
	writeField(&b, "⚠️ Fake/Scam", yesNo(a.IsFake || a.IsScam))
	writeField(&b, "🗑 Deleted", yesNo(a.IsDeleted))
	writeField(&b, "🖼 Profile Photo", yesNo(a.HasPhoto))
	writeField(&b, "👥 Common Chats", fmt.Sprintf("%d", a.CommonChats))
	writeField(&b, "📜 Bio", orDash(truncate(a.Bio, 100)))
	writeField(&b, "🕒 Last Seen", r.Status)
	writeField(&b, "⏰ Analyzed At", r.AnalyzedAt.Format("2006-01-02 15:04:05 MST"))

	b.WriteString("\n⚠️ _Some information may be approximate or limited due to privacy settings\\._")
	return b.String()
}

// formatStats renders usage counters for the /stats command.
func formatStats(s storage.Stats) string {
	var b strings.Builder
	b.WriteString("📈 *Bot Statistics*\n\n")
	writeField(&b, "Started", s.StartedAt.Format("2006-01-02 15:04:05 MST"))
	writeField(&b, "Total analyses", fmt.Sprintf("%d", s.TotalAnalyses))
	if !s.LastAnalysisAt.IsZero() {
		writeField(&b, "Last analysis", s.LastAnalysisAt.Format("2006-01-02 15:04:05 MST"))
	}
	if len(s.Commands) > 0 {
		b.WriteString("\n*Commands:*\n")
		for _, name := range sortedKeys(s.Commands) {
			b.WriteString(fmt.Sprintf("• /%s: %d\n", escapeMarkdownV2(name), s.Commands[name]))
		}
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "*%s:* %s\n", escapeMarkdownV2(label), escapeMarkdownV2(value))
}

// formatCountry appends the provenance of a country estimate, matching the
// distinction the Source field carries.
func formatCountry(c models.CountryEstimate) string {
	switch c.Source {
	case models.SourceLanguage:
		return c.Label + " (from language)"
	case models.SourcePhone:
		return c.Label + " (from phone)"
	default:
		return "Unknown (Privacy Protected)"
	}
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func orUnknown(s string) string {
	if s == "" {
		return "Unknown"
	}
	return s
}

func orDash(s string) string {
	if s == "" {
		return "No bio"
	}
	return s
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// escapeMarkdownV2 escapes special characters for Telegram MarkdownV2.
// Characters that need escaping: _ * [ ] ( ) ~ ` > # + - = | { } . !
func escapeMarkdownV2(text string) string {
	var b strings.Builder
	for _, char := range text {
		switch char {
		case '_', '*', '[', ']', '(', ')', '~', '`', '>', '#', '+', '-', '=', '|', '{', '}', '.', '!':
			b.WriteByte('\\')
		}
		b.WriteRune(char)
	}
	return b.String()
}

// formatRetryAfter renders a rate-limit wait for user display.
func formatRetryAfter(d time.Duration) string {
	secs := int(d / time.Second)
	if secs < 1 {
		secs = 1
	}
	return fmt.Sprintf("Rate limited. Please wait %d seconds and try again", secs)
}
