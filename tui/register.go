package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	goAuthClient "github.com/MrEthical07/goAuthClient"
)

var registerFields = []string{
	goAuthClient.FieldUsername,
	goAuthClient.FieldPassword,
	goAuthClient.FieldEmail,
	goAuthClient.FieldPhone,
}

var registerLabels = map[string]string{
	goAuthClient.FieldUsername: "Username",
	goAuthClient.FieldPassword: "Password",
	goAuthClient.FieldEmail:    "Email",
	goAuthClient.FieldPhone:    "Phone Number",
}

type registerModel struct {
	client *goAuthClient.Client

	inputs     []textinput.Model
	focusIndex int
	fieldErrs  goAuthClient.FieldErrors
	inlineErr  string
	spin       spinner.Model

	done goAuthClient.SubmitResult
}

func newRegisterModel(client *goAuthClient.Client) registerModel {
	m := registerModel{
		client:    client,
		inputs:    make([]textinput.Model, len(registerFields)),
		fieldErrs: goAuthClient.FieldErrors{},
		spin:      spinner.New(spinner.WithSpinner(spinner.Dot)),
	}

	for i, field := range registerFields {
		input := textinput.New()
		input.Placeholder = registerLabels[field]
		input.CharLimit = 128
		if field == goAuthClient.FieldPassword {
			input.EchoMode = textinput.EchoPassword
		}
		if i == 0 {
			input.Focus()
			input.TextStyle = focusedStyle
			input.PromptStyle = focusedStyle
		}
		m.inputs[i] = input
	}

	return m
}

func (m registerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m registerModel) profile() goAuthClient.RegistrationProfile {
	return goAuthClient.RegistrationProfile{
		Username: m.inputs[0].Value(),
		Password: m.inputs[1].Value(),
		Email:    m.inputs[2].Value(),
		Phone:    m.inputs[3].Value(),
	}
}

func (m registerModel) loading() bool {
	return m.client.Session().IsLoading()
}

func submitRegistrationCmd(client *goAuthClient.Client, profile goAuthClient.RegistrationProfile) tea.Cmd {
	return func() tea.Msg {
		res, err := client.SubmitRegistration(background(), profile)
		return submitDoneMsg{res: res, err: err}
	}
}

func (m registerModel) Update(msg tea.Msg) (registerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+l":
			// Footer link: already have an account.
			m.done = goAuthClient.SubmitResult{Navigate: goAuthClient.RouteLogin}
			return m, nil

		case "enter", "up", "down", "tab", "shift+tab":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if m.loading() {
					// Submission disabled while a request is in flight.
					return m, nil
				}
				m.inlineErr = ""
				return m, tea.Batch(
					m.spin.Tick,
					submitRegistrationCmd(m.client, m.profile()),
				)
			}

			// Leaving a field validates it, the blur behavior.
			if m.focusIndex >= 0 && m.focusIndex < len(m.inputs) {
				field := registerFields[m.focusIndex]
				m.fieldErrs[field] = goAuthClient.ValidateField(field, m.inputs[m.focusIndex].Value())
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
			switch {
			case msg.res.Fields.HasErrors():
				m.fieldErrs = msg.res.Fields
			case msg.res.Message != "":
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

	// Editing a field clears its stale error.
	if m.focusIndex >= 0 && m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		field := registerFields[m.focusIndex]
		if m.fieldErrs[field] != "" {
			m.fieldErrs[field] = ""
		}
		return m, cmd
	}
	return m, nil
}

func (m registerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Register Form"))
	b.WriteString("\n\n")

	if m.inlineErr != "" {
		b.WriteString(inlineErrStyle.Render(m.inlineErr))
		b.WriteString("\n\n")
	}

	for i, field := range registerFields {
		b.WriteString(registerLabels[field])
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg := m.fieldErrs[field]; msg != "" {
			b.WriteString(fieldErrorStyle.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	button := blurredButton
	if m.focusIndex == len(m.inputs) {
		button = focusedButton
	}
	if m.loading() {
		button = m.spin.View() + " Registering..."
	}
	b.WriteString(button)
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+l: already have an account? login • ctrl+c: quit"))

	return b.String()
}
