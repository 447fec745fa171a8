package formatter

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/anikatabassum/maatricare/internal/domain"
	"github.com/anikatabassum/maatricare/internal/llm"
)

const noneReported = "None reported"
const notSpecified = "Not specified"

var inlineBoldRe = regexp.MustCompile(`\*\*([^*]+)\*\*`)

// RenderMarkdown gives the assistant's structured-markdown replies a
// light terminal treatment: section headers in the accent color, bold
// spans in bold, bullets recolored. Anything it does not recognize
// passes through untouched.
func RenderMarkdown(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = renderLine(line)
	}
	return strings.Join(out, "\n")
}

func renderLine(line string) string {
	trimmed := strings.TrimSpace(line)

	// A line that is exactly one bold span is a section header.
	if strings.HasPrefix(trimmed, "**") && strings.HasSuffix(trimmed, "**") && strings.Count(trimmed, "**") == 2 {
		return StyleHeader.Render(strings.Trim(trimmed, "*"))
	}

	rendered := inlineBoldRe.ReplaceAllStringFunc(line, func(m string) string {
		return StyleBold.Render(strings.Trim(m, "*"))
	})

	if strings.HasPrefix(strings.TrimSpace(rendered), "- ") {
		idx := strings.Index(rendered, "- ")
		rendered = rendered[:idx] + StyleGreen.Render("•") + " " + rendered[idx+2:]
	}

	return rendered
}

// FormatReply renders one assistant reply for the chat log, tagged
// with its classified intent. Emergency replies get a red box so they
// stand out in the scrollback.
func FormatReply(intent domain.Intent, text string) string {
	body := RenderMarkdown(text)
	if intent == domain.IntentEmergency {
		body = RenderBox(body, ColorRed)
	}
	return IntentLabel(intent) + "\n" + body
}

// FormatProfile renders the stored patient profile, or a setup hint
// when none is set.
func FormatProfile(p *domain.PatientProfile, med *domain.MedicalState) string {
	if p == nil {
		return Dim("No profile found. Please complete your profile setup first.")
	}

	history := p.MedicalHistory
	if strings.TrimSpace(history) == "" {
		history = notSpecified
	}

	var b strings.Builder
	b.WriteString(Header("Your Profile"))
	b.WriteString("\n")
	if p.Name != "" {
		writeField(&b, "Name", p.Name)
	}
	writeField(&b, "Age", fmt.Sprintf("%d", p.Age))
	writeField(&b, "Last Menstrual Period", p.LMPDate)
	if med != nil {
		writeField(&b, "Current Week", fmt.Sprintf("%d", med.CurrentWeek))
		writeField(&b, "Trimester", fmt.Sprintf("%d", med.Trimester))
		if med.DueDate != nil {
			writeField(&b, "Due Date", med.DueDate.Format(domain.DateFormat))
		}
		b.WriteString(Bold("Risk Level") + ": " + RiskColor(med.RiskLevel).Render(string(med.RiskLevel)) + "\n")
	}
	writeField(&b, "Medical History", history)
	writeField(&b, "Allergies", joinOrDefault(p.Allergies))
	writeField(&b, "Current Medications", joinOrDefault(p.Medications))

	return b.String()
}

// FormatStats renders upstream usage statistics for the stats command.
func FormatStats(stats llm.MonitorStats) string {
	var b strings.Builder
	b.WriteString(Header("Model Usage"))
	b.WriteString("\n")
	writeField(&b, "Lifetime requests", fmt.Sprintf("%d", stats.TotalLifetime))
	writeField(&b, "Recent requests (5m)", fmt.Sprintf("%d", stats.RecentRequests))
	writeField(&b, "Recent rate limits", fmt.Sprintf("%d", stats.RecentRateLimits))
	writeField(&b, "Recent errors", fmt.Sprintf("%d", stats.RecentErrors))
	writeField(&b, "Success rate", fmt.Sprintf("%.1f%%", stats.SuccessRatePct))
	writeField(&b, "Avg response time", stats.AvgResponseTime.Round(time.Millisecond).String())
	writeField(&b, "Requests per minute", fmt.Sprintf("%.1f", stats.RequestsPerMinute))
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString(Bold(label) + ": " + value + "\n")
}

func joinOrDefault(items []string) string {
	if len(items) == 0 {
		return noneReported
	}
	return strings.Join(items, ", ")
}
