package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	goAuthClient "github.com/MrEthical07/goAuthClient"
	"github.com/MrEthical07/goAuthClient/guard"
)

type dashboardModel struct {
	client *goAuthClient.Client
	state  guard.State

	done goAuthClient.SubmitResult
}

func newDashboardModel(client *goAuthClient.Client) dashboardModel {
	return dashboardModel{
		client: client,
		state:  guard.Checking,
	}
}

// startCheck kicks off one guard resolution for this navigation. The page
// shows the interim placeholder until the result lands.
func (m dashboardModel) startCheck(g *guard.Guard) tea.Cmd {
	return func() tea.Msg {
		return guardResolvedMsg{res: g.Resolve(background())}
	}
}

func logoutCmd(client *goAuthClient.Client) tea.Cmd {
	return func() tea.Msg {
		res, err := client.Logout(background())
		return submitDoneMsg{res: res, err: err}
	}
}

func (m dashboardModel) Update(msg tea.Msg) (dashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.state == guard.Authorized && msg.String() == "l" {
			return m, logoutCmd(m.client)
		}

	case submitDoneMsg:
		if msg.err == nil {
			m.done = msg.res
		}
		return m, nil
	}
	return m, nil
}

func (m dashboardModel) View() string {
	if m.state != guard.Authorized {
		return helpStyle.Render("Validating...")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Welcome to Dashboard!"))
	b.WriteString("\n\n")
	b.WriteString("Status: Logged in (Token Active)")
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("l: logout • ctrl+c: quit"))
	return b.String()
}
