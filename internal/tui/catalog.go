package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"bazaar-be/models"
)

type catalogModel struct {
	catalog  models.SellerCatalog
	loading  bool
	ordering bool
	status   string
	spinner  spinner.Model
}

func newCatalogModel() catalogModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return catalogModel{spinner: s}
}

func (m catalogModel) View() string {
	out := titleStyle.Render("Catalog") + "\n\n"

	if m.loading {
		out += m.spinner.View() + " Loading...\n"
	} else {
		out += fmt.Sprintf("Seller: %s (#%d)\n\n", m.catalog.SellerName, m.catalog.SellerID)
		if len(m.catalog.Products) == 0 {
			out += "The catalog is empty\n"
		} else {
			for _, product := range m.catalog.Products {
				out += fmt.Sprintf("  %-30s %10.2f\n", product.Name, product.Price)
			}
		}
	}

	if m.ordering {
		out += "\nPlacing order...\n"
	}
	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("o place order  esc back")
	return out
}
