package main

import "github.com/charmbracelet/lipgloss"

var (
	bgDark   = lipgloss.Color("#0F172A")
	bgMedium = lipgloss.Color("#1E293B")

	textPrimary   = lipgloss.Color("#F8FAFC")
	textSecondary = lipgloss.Color("#CBD5E1")
	textMuted     = lipgloss.Color("#64748B")

	primaryColor = lipgloss.Color("#8B5CF6")
	accentColor  = lipgloss.Color("#22D3EE")
	errorColor   = lipgloss.Color("#EF4444")
)

var (
	appStyle = lipgloss.NewStyle().
		Background(bgDark).
		Foreground(textPrimary).
		Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
		Background(primaryColor).
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true).
		Padding(0, 2).
		MarginBottom(1)

	queryListStyle = lipgloss.NewStyle().
		Foreground(textSecondary).
		Padding(0, 1)

	selectedQueryStyle = lipgloss.NewStyle().
		Foreground(bgDark).
		Background(accentColor).
		Bold(true).
		Padding(0, 1)

	winnerStyle = lipgloss.NewStyle().
		Foreground(accentColor).
		Bold(true)

	candidateStyle = lipgloss.NewStyle().
		Foreground(textMuted)

	statusBarStyle = lipgloss.NewStyle().
		Background(bgMedium).
		Foreground(textSecondary).
		Padding(0, 1)

	errorStyle = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)
)
