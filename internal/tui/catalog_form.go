package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"

	"bazaar-be/models"
)

// catalogFormModel collects the product list for a new catalog. Enter with a
// filled name/price pair adds a product; enter with both fields empty
// submits the whole catalog.
type catalogFormModel struct {
	inputs     []textinput.Model
	focus      int
	products   []models.Product
	submitting bool
}

func newCatalogFormModel() catalogFormModel {
	nameInput := textinput.New()
	nameInput.Placeholder = "product name"
	nameInput.CharLimit = 128
	nameInput.Width = 40
	nameInput.Focus()

	priceInput := textinput.New()
	priceInput.Placeholder = "price"
	priceInput.CharLimit = 16
	priceInput.Width = 16

	return catalogFormModel{inputs: []textinput.Model{nameInput, priceInput}}
}

func (m catalogFormModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Create catalog"))
	b.WriteString("\n\n")

	if len(m.products) == 0 {
		b.WriteString("No products added yet\n")
	} else {
		for _, product := range m.products {
			b.WriteString(fmt.Sprintf("  %-30s %10.2f\n", product.Name, product.Price))
		}
	}

	b.WriteString("\nName:  " + m.inputs[0].View() + "\n")
	b.WriteString("Price: " + m.inputs[1].View() + "\n")

	if m.submitting {
		b.WriteString("\nSubmitting catalog...\n")
	}

	b.WriteString("\n" + helpStyle.Render("enter add product  enter on empty fields submit  tab next field  esc back"))
	return b.String()
}
