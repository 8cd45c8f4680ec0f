// Package tui is the terminal front end for goAuthClient: a registration
// form, a login form, and a guarded dashboard behind a route-based page
// switch. It consumes the library's submission flows and the guard package;
// no authentication decision is made here.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	goAuthClient "github.com/MrEthical07/goAuthClient"
	"github.com/MrEthical07/goAuthClient/guard"
)

const toastLifetime = 3 * time.Second

type navigateMsg struct {
	to goAuthClient.Route
	// replace marks a guard redirect: the target must not be reachable by
	// "back" navigation and the origin is preserved for post-login return.
	replace bool
	from    goAuthClient.Route
}

type submitDoneMsg struct {
	res goAuthClient.SubmitResult
	err error
}

type guardResolvedMsg struct {
	res guard.Resolution
}

type noticeMsg goAuthClient.Notice

type clearToastMsg struct{}

type model struct {
	client  *goAuthClient.Client
	guard   *guard.Guard
	notices <-chan goAuthClient.Notice

	route goAuthClient.Route
	// from is the originally requested route preserved across a guard
	// redirect, consumed by the next successful login.
	from goAuthClient.Route

	register  registerModel
	login     loginModel
	dashboard dashboardModel

	toast      string
	toastLevel goAuthClient.NoticeLevel

	width  int
	height int
}

func newModel(client *goAuthClient.Client, g *guard.Guard, notices <-chan goAuthClient.Notice) model {
	return model{
		client:    client,
		guard:     g,
		notices:   notices,
		route:     goAuthClient.RouteRegister,
		register:  newRegisterModel(client),
		login:     newLoginModel(client),
		dashboard: newDashboardModel(client),
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.register.Init(), waitForNotice(m.notices))
}

// navigate switches the visible page. Unknown routes fall through to the
// registration page, mirroring the catch-all route.
func (m model) navigate(msg navigateMsg) (model, tea.Cmd) {
	to := msg.to
	switch to {
	case goAuthClient.RouteLogin, goAuthClient.RouteDashboard, goAuthClient.RouteRegister:
	default:
		to = goAuthClient.RouteRegister
	}

	if msg.replace {
		m.from = msg.from
	}

	m.route = to
	switch to {
	case goAuthClient.RouteRegister:
		m.register = newRegisterModel(m.client)
		return m, m.register.Init()
	case goAuthClient.RouteLogin:
		m.login = newLoginModel(m.client)
		return m, m.login.Init()
	case goAuthClient.RouteDashboard:
		m.dashboard = newDashboardModel(m.client)
		return m, m.dashboard.startCheck(m.guard)
	}
	return m, nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case navigateMsg:
		return m.navigate(msg)

	case noticeMsg:
		m.toast = msg.Message
		m.toastLevel = msg.Level
		return m, tea.Batch(
			waitForNotice(m.notices),
			tea.Tick(toastLifetime, func(time.Time) tea.Msg { return clearToastMsg{} }),
		)

	case clearToastMsg:
		m.toast = ""
		return m, nil

	case guardResolvedMsg:
		if msg.res.Superseded {
			// Stale result: the token changed mid-flight. Restart from the
			// checking state against the current token.
			return m, m.dashboard.startCheck(m.guard)
		}
		switch msg.res.State {
		case guard.Authorized:
			m.dashboard.state = guard.Authorized
			return m, nil
		default:
			return m.navigate(navigateMsg{
				to:      goAuthClient.RouteLogin,
				replace: true,
				from:    goAuthClient.RouteDashboard,
			})
		}
	}

	switch m.route {
	case goAuthClient.RouteLogin:
		var cmd tea.Cmd
		m.login, cmd = m.login.Update(msg)
		if m.login.done.Navigate != goAuthClient.RouteNone {
			to := m.login.done.Navigate
			if m.from != goAuthClient.RouteNone {
				to = m.from
				m.from = goAuthClient.RouteNone
			}
			next, navCmd := m.navigate(navigateMsg{to: to})
			return next, tea.Batch(cmd, navCmd)
		}
		return m, cmd

	case goAuthClient.RouteDashboard:
		var cmd tea.Cmd
		m.dashboard, cmd = m.dashboard.Update(msg)
		if m.dashboard.done.Navigate != goAuthClient.RouteNone {
			next, navCmd := m.navigate(navigateMsg{to: m.dashboard.done.Navigate})
			return next, tea.Batch(cmd, navCmd)
		}
		return m, cmd

	default:
		var cmd tea.Cmd
		m.register, cmd = m.register.Update(msg)
		if m.register.done.Navigate != goAuthClient.RouteNone {
			next, navCmd := m.navigate(navigateMsg{to: m.register.done.Navigate})
			return next, tea.Batch(cmd, navCmd)
		}
		return m, cmd
	}
}

func (m model) View() string {
	var page string
	switch m.route {
	case goAuthClient.RouteLogin:
		page = m.login.View()
	case goAuthClient.RouteDashboard:
		page = m.dashboard.View()
	default:
		page = m.register.View()
	}

	if m.toast != "" {
		style := toastSuccessStyle
		if m.toastLevel == goAuthClient.NoticeError {
			style = toastErrorStyle
		}
		page += "\n\n" + style.Render(m.toast)
	}

	return appStyle.Render(page)
}

func waitForNotice(ch <-chan goAuthClient.Notice) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-ch
		if !ok {
			return nil
		}
		return noticeMsg(n)
	}
}

// Run starts the terminal UI and blocks until the user quits.
func Run(client *goAuthClient.Client, g *guard.Guard, notices <-chan goAuthClient.Notice) error {
	p := tea.NewProgram(newModel(client, g, notices), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// background returns the context submissions run under. Requests are not
// cancellable once issued; abandoned results are discarded by the flows,
// not interrupted.
func background() context.Context {
	return context.Background()
}
