package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yusufakg/AmiiboGenerator/internal/config"
)

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	if m.termWidth == 0 {
		return "Initializing..."
	}

	if m.busy {
		if m.summary != nil {
			return m.viewSummary()
		}
		return m.viewBusy()
	}

	return m.viewBrowser()
}

func (m Model) viewBrowser() string {
	cat := m.session.Catalog()

	title := titleStyle.Render(config.AppName + " " + config.Version)
	counter := fmt.Sprintf("%d/%d selected", cat.SelectedCount(), cat.Len())

	images := "off"
	if m.session.ImagesEnabled() {
		images = "on"
	}
	meta := helpStyle.Render(fmt.Sprintf("sort: %s | images: %s", m.session.SortOption().Label(), images))

	header := lipgloss.JoinHorizontal(lipgloss.Left,
		title,
		itemStyle.Render(counter),
		meta,
	)

	list := m.renderList()

	keys := m.Config.Keys
	helpText := fmt.Sprintf(
		"↑/↓: Move, %s: Toggle, %s: All, %s: Sort, %s: Images, %s: Generate, %s: Delete, %s: Refresh, %s: Quit",
		strings.Join(keys.Toggle, "/"), keys.ToggleAll, keys.Sort, keys.Images,
		keys.Generate, keys.Delete, keys.Update, keys.Exit,
	)
	help := helpStyle.Render(helpText)

	items := []string{header, list, help, m.renderStatusBar()}
	if m.statusMessage != "" {
		style := statusNegativeStyle
		if m.statusPositive {
			style = statusPositiveStyle
		}
		items = append(items, style.Render(m.statusMessage))
	}
	if m.dbHint != "" {
		items = append(items, hintStyle.Render(m.dbHint))
	}

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

// renderList draws one visible window of the catalog with the cursor and
// selection markers.
func (m Model) renderList() string {
	cat := m.session.Catalog()
	if cat.Len() == 0 {
		return itemStyle.Render("No amiibos loaded.")
	}

	var b strings.Builder
	start := m.session.Scroll()
	end := start + m.session.Visible()
	if end > cat.Len() {
		end = cat.Len()
	}

	for i := start; i < end; i++ {
		e := cat.At(i)

		cursor := "  "
		if i == m.session.Cursor() {
			cursor = "> "
		}
		mark := "[ ]"
		if e.Selected {
			mark = markStyle.Render("[x]")
		}
		line := fmt.Sprintf("%s%s %s - %s", cursor, mark, e.DisplaySeries(), e.DisplayName())

		if i == m.session.Cursor() {
			b.WriteString(cursorItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteByte('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderStatusBar creates the standard bottom block: NET | Status | Theme
func (m Model) renderStatusBar() string {
	netLabel := lipgloss.NewStyle().Render("NET: ")
	netText := netLabel + m.traffic
	statusText := fmt.Sprintf("STATUS: %s", m.onlineStatus)
	themeText := "THEME: "
	themeName := themeNameStyle.Render(m.Config.Theme)
	separator := helpStyle.Render(" | ")

	return lipgloss.NewStyle().PaddingTop(1).Render(
		lipgloss.JoinHorizontal(lipgloss.Left,
			netText,
			separator,
			statusText,
			separator,
			themeText,
			themeName,
		),
	)
}

func (m Model) viewBusy() string {
	label := m.busyLabel
	if label == "" {
		label = "working..."
	}
	content := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(config.AppName),
		busyStyle.Render(m.spinner.View()+" "+label),
	)
	return appStyle.Render(
		lipgloss.Place(m.termWidth, m.termHeight,
			lipgloss.Center, lipgloss.Center,
			content,
		),
	)
}

func (m Model) viewSummary() string {
	s := m.summary

	title := "Generation complete"
	lines := []string{
		fmt.Sprintf("Processed: %d", s.summary.Processed),
	}
	if s.action == "delete" {
		title = "Deletion complete"
		lines = append(lines,
			fmt.Sprintf("Deleted:   %d", s.summary.Deleted),
			fmt.Sprintf("Skipped:   %d", s.summary.Skipped),
		)
	} else {
		lines = append(lines, fmt.Sprintf("Generated: %d", s.summary.Generated))
	}
	lines = append(lines, fmt.Sprintf("Failed:    %d", s.summary.Failed))

	body := itemStyle.Render(strings.Join(lines, "\n"))
	prompt := helpStyle.Render(fmt.Sprintf("Press '%s' to continue", m.Config.Keys.Continue))

	content := lipgloss.JoinVertical(lipgloss.Center,
		summaryTitleStyle.Render(title),
		body,
		prompt,
	)
	return appStyle.Render(
		lipgloss.Place(m.termWidth, m.termHeight,
			lipgloss.Center, lipgloss.Center,
			content,
		),
	)
}
