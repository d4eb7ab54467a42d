package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"bazaar-be/models"
)

type sellersModel struct {
	sellers []models.User
	idx     int
	loading bool
	spinner spinner.Model
}

func newSellersModel() sellersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return sellersModel{spinner: s}
}

func (m sellersModel) current() (models.User, bool) {
	if len(m.sellers) == 0 || m.idx < 0 || m.idx >= len(m.sellers) {
		return models.User{}, false
	}
	return m.sellers[m.idx], true
}

func (m sellersModel) View() string {
	out := titleStyle.Render("Sellers") + "\n\n"

	if m.loading {
		out += m.spinner.View() + " Loading...\n"
	} else if len(m.sellers) == 0 {
		out += "No sellers registered yet\n"
	} else {
		for i, seller := range m.sellers {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}
			out += fmt.Sprintf("%s#%d  %s\n", cursor, seller.UserID, seller.Name)
		}
	}

	out += "\n" + helpStyle.Render("enter open catalog  r refresh  esc back")
	return out
}
