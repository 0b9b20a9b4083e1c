package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/dia-companion/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		for _, line := range strings.Split(data, "\n") {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: выход"))

	return b.String()
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// fitText cuts v to max runes on one line.
func fitText(v string, max int) string {
	v = strings.Join(strings.Fields(v), " ")
	runes := []rune(v)
	if max <= 0 || len(runes) <= max {
		return v
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

func glucoseText(r models.HealthRecord) string {
	if r.Glucose == nil {
		return "-"
	}
	return strconv.FormatFloat(*r.Glucose, 'f', -1, 64)
}

func pressureText(r models.HealthRecord) string {
	if !r.HasPressure() {
		return "-"
	}
	return fmt.Sprintf("%d/%d", *r.Systolic, *r.Diastolic)
}

func labTypeLabel(t models.LabResultType) string {
	switch t {
	case models.LabResultBlood:
		return "Анализ крови"
	case models.LabResultUrine:
		return "Анализ мочи"
	default:
		return "Другое"
	}
}

func roleLabel(r models.Role) string {
	if r == models.RoleAdmin {
		return "Администратор"
	}
	return "Пользователь"
}

func sourcesText(sources []models.Source) string {
	if len(sources) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("\nИсточники:\n")
	for _, src := range sources {
		title := src.Title
		if title == "" {
			title = "Источник"
		}
		b.WriteString("  " + title + " <" + src.URI + ">\n")
	}
	return b.String()
}

func cursorMark(selected bool) string {
	if selected {
		return ">"
	}
	return " "
}
