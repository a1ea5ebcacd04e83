package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func helpLine(b key.Binding) string {
	h := b.Help()
	return fmt.Sprintf("• %-15s %s", h.Key, h.Desc)
}

func (a AppView) renderHelpModal(width, height int) string {
	k := a.keys

	green := lipgloss.NewStyle().
		Bold(true).
		Foreground(successColor)

	title := green.Render(HeaderTitle + " - Atajos de teclado")

	blue := lipgloss.NewStyle().Foreground(accentColor)

	chatActions := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Chat"),
		helpLine(k.Send),
		helpLine(k.Reset),
		helpLine(k.ClearInput),
		helpLine(k.YankLast),
		helpLine(k.YankAll),
		"",
		blue.Render("## General"),
		helpLine(k.Help),
		helpLine(k.Quit),
	)

	navigation := lipgloss.JoinVertical(
		lipgloss.Left,
		blue.Render("## Navegación"),
		helpLine(k.ScrollDown),
		helpLine(k.ScrollUp),
		helpLine(k.HalfPageDown),
		helpLine(k.HalfPageUp),
		helpLine(k.PageDown),
		helpLine(k.PageUp),
		helpLine(k.ScrollToTop),
		helpLine(k.ScrollToBottom),
	)

	columnStyle := lipgloss.NewStyle().Width(42).PaddingLeft(4)

	twoColumns := lipgloss.JoinHorizontal(
		lipgloss.Top,
		columnStyle.Render(chatActions),
		columnStyle.Render(navigation),
	)

	endpoint := DimStyle.Render(a.dataModel.Exchanger.Endpoint())

	footer := lipgloss.NewStyle().
		Foreground(dimColor).
		Render(fmt.Sprintf("Pulsa %s o Esc para cerrar", k.Help.Help().Key))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		twoColumns,
		"",
		endpoint,
		versionLine(a.dataModel.Version, a.dataModel.License),
		"",
		footer,
	)

	helpBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("8")).
		Padding(1, 2)

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		helpBox.Render(content),
	)
}

func versionLine(version, license string) string {
	labelStyle := lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	valueStyle := lipgloss.NewStyle().Foreground(dimColor)
	return labelStyle.Render("Versión: ") + valueStyle.Render(version) + "  " +
		labelStyle.Render("Licencia: ") + valueStyle.Render(license)
}
