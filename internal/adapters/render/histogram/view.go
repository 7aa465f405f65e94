package histogram

import "strings"

func renderView(layout Layout, s styles) string {
	lines := make([]string, 0, len(layout.Rows)+3)
	lines = append(lines,
		s.header.Render(layout.Header),
		"",
		s.banner.Render(layout.Banner),
	)

	for _, row := range layout.Rows {
		lines = append(lines, s.label.Render(row.Label)+s.separator.Render(": ")+s.bar.Render(row.Bar)+s.count.Render(row.Count))
	}

	// lipgloss.JoinVertical would pad every line to the widest one.
	return strings.Join(lines, "\n")
}
