package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	goAuthClient "github.com/MrEthical07/goAuthClient"
)

type loginModel struct {
	client *goAuthClient.Client

	inputs     []textinput.Model
	focusIndex int
	inlineErr  string
	spin       spinner.Model

	done goAuthClient.SubmitResult
}

func newLoginModel(client *goAuthClient.Client) loginModel {
	m := loginModel{
		client: client,
		inputs: make([]textinput.Model, 2),
		spin:   spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 128
	username.Focus()
	username.TextStyle = focusedStyle
	username.PromptStyle = focusedStyle
	m.inputs[0] = username

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	m.inputs[1] = password

	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) loading() bool {
	return m.client.Session().IsLoading()
}

func submitLoginCmd(client *goAuthClient.Client, creds goAuthClient.Credentials) tea.Cmd {
	return func() tea.Msg {
		res, err := client.SubmitLogin(background(), creds)
		return submitDoneMsg{res: res, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+r":
			// Footer link: don't have an account.
			m.done = goAuthClient.SubmitResult{Navigate: goAuthClient.RouteRegister}
			return m, nil

		case "enter", "up", "down", "tab", "shift+tab":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if m.loading() {
					return m, nil
				}
				m.inlineErr = ""
				creds := goAuthClient.Credentials{
					Username: m.inputs[0].Value(),
					Password: m.inputs[1].Value(),
				}
				return m, tea.Batch(m.spin.Tick, submitLoginCmd(m.client, creds))
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					m.inputs[i].PromptStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = plainStyle
				m.inputs[i].PromptStyle = plainStyle
			}
			return m, tea.Batch(cmds...)
		}

	case submitDoneMsg:
		if msg.err != nil {
			if msg.res.Message != "" {
				m.inlineErr = msg.res.Message
			}
			return m, nil
		}
		m.done = msg.res
		return m, nil

	case spinner.TickMsg:
		if !m.loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	if m.focusIndex >= 0 && m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		if m.inlineErr != "" {
			m.inlineErr = ""
		}
		return m, cmd
	}
	return m, nil
}

func (m loginModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Login Form"))
	b.WriteString("\n\n")

	if m.inlineErr != "" {
		b.WriteString(inlineErrStyle.Render(m.inlineErr))
		b.WriteString("\n\n")
	}

	labels := []string{"Username", "Password"}
	for i := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n\n")
	}

	button := blurredButton
	if m.focusIndex == len(m.inputs) {
		button = focusedButton
	}
	if m.loading() {
		button = m.spin.View() + " Logging in..."
	}
	b.WriteString(button)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+r: don't have an account? register • ctrl+c: quit"))

	return b.String()
}
