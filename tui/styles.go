package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	plainStyle   = lipgloss.NewStyle()
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	fieldErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	inlineErrStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	toastSuccessStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("28")).
				Padding(0, 1)
	toastErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("124")).
			Padding(0, 1)

	focusedButton = focusedStyle.Render("[ Submit ]")
	blurredButton = "[ " + blurredStyle.Render("Submit") + " ]"
)
