package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"bazaar-be/models"
)

type registerModel struct {
	inputs     []textinput.Model
	focus      int
	role       string
	submitting bool
}

func newRegisterModel() registerModel {
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

	repeatInput := textinput.New()
	repeatInput.Placeholder = "repeat password"
	repeatInput.CharLimit = 256
	repeatInput.Width = 40
	repeatInput.EchoMode = textinput.EchoPassword
	repeatInput.EchoCharacter = '*'

	return registerModel{
		inputs: []textinput.Model{nameInput, passwordInput, repeatInput},
		role:   models.RoleBuyer,
	}
}

func (m registerModel) toggleRole() registerModel {
	if m.role == models.RoleBuyer {
		m.role = models.RoleSeller
	} else {
		m.role = models.RoleBuyer
	}
	return m
}

func (m registerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Register"))
	b.WriteString("\n\n")
	b.WriteString("Name:     " + m.inputs[0].View() + "\n")
	b.WriteString("Password: " + m.inputs[1].View() + "\n")
	b.WriteString("Repeat:   " + m.inputs[2].View() + "\n")

	buyer, seller := "  buyer", "  seller"
	if m.role == models.RoleBuyer {
		buyer = "> buyer"
	} else {
		seller = "> seller"
	}
	b.WriteString("\nRole:  " + buyer + "   " + seller + "\n")

	if m.submitting {
		b.WriteString("\nCreating account...\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter submit  tab next field  ←/→ role  esc back"))
	return b.String()
}
