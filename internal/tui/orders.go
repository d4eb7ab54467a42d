package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"

	"bazaar-be/models"
)

type ordersModel struct {
	orders  []models.SellerOrder
	loading bool
	spinner spinner.Model
}

func newOrdersModel() ordersModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return ordersModel{spinner: s}
}

func (m ordersModel) View() string {
	out := titleStyle.Render("Orders") + "\n\n"

	if m.loading {
		out += m.spinner.View() + " Loading...\n"
	} else if len(m.orders) == 0 {
		out += "No orders yet\n"
	} else {
		for _, order := range m.orders {
			out += fmt.Sprintf("Order #%d from %s (#%d)\n", order.OrderID, order.BuyerName, order.BuyerID)
			for _, product := range order.Products {
				out += fmt.Sprintf("    %-30s %10.2f\n", product.Name, product.Price)
			}
		}
	}

	out += "\n" + helpStyle.Render("r refresh  esc back")
	return out
}
