package tui

type homeModel struct {
	items  []string
	idx    int
	status string
}

func newHomeModel() homeModel {
	return homeModel{items: []string{
		"Browse sellers",
		"Create my catalog",
		"My orders",
	}}
}

func (m homeModel) View() string {
	out := titleStyle.Render("Bazaar") + "\n\n"
	for i, item := range m.items {
		cursor := "  "
		if i == m.idx {
			cursor = "> "
		}
		out += cursor + item + "\n"
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	out += "\n" + helpStyle.Render("enter open  c copy token  L log out  q quit")
	return out
}
