package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

type loginModel struct {
	inputs     []textinput.Model
	focus      int
	submitting bool
}

func newLoginModel() loginModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "user name"
	nameInput.CharLimit = 64
	nameInput.Width = 40
	nameInput.Focus()

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'

	return loginModel{inputs: []textinput.Model{nameInput, passwordInput}}
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Log in"))
	b.WriteString("\n\n")
	b.WriteString("Name:     " + m.inputs[0].View() + "\n")
	b.WriteString("Password: " + m.inputs[1].View() + "\n")

	if m.submitting {
		b.WriteString("\nSigning in...\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter submit  tab next field  esc back"))
	return b.String()
}
