package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"bazaar-be/internal/adapter"
	"bazaar-be/models"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenHome
	screenSellers
	screenCatalog
	screenCatalogForm
	screenOrders
)

type appModel struct {
	ctx     context.Context
	adapter adapter.ServerAdapter

	currentScreen screen

	welcome     welcomeModel
	login       loginModel
	register    registerModel
	home        homeModel
	sellersScr  sellersModel
	catalogScr  catalogModel
	catalogForm catalogFormModel
	ordersScr   ordersModel

	showError    bool
	errorOverlay errorOverlayModel

	quitByUser bool
	err        error
}

func newAppModel(ctx context.Context, serverAdapter adapter.ServerAdapter) appModel {
	return appModel{
		ctx:           ctx,
		adapter:       serverAdapter,
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		login:         newLoginModel(),
		register:      newRegisterModel(),
		home:          newHomeModel(),
		sellersScr:    newSellersModel(),
		catalogScr:    newCatalogModel(),
		catalogForm:   newCatalogFormModel(),
		ordersScr:     newOrdersModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
	case authDoneMsg:
		m.setSubmitting(false)
		m.currentScreen = screenHome
		m.home.status = ""
		return m, nil
	case authFailedMsg:
		m.setSubmitting(false)
		m.showErrorf(msg.err.Error())
		return m, nil
	case sellersLoadedMsg:
		m.sellersScr.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenHome
			return m, nil
		}
		m.sellersScr.sellers = msg.sellers
		if m.sellersScr.idx >= len(m.sellersScr.sellers) {
			m.sellersScr.idx = 0
		}
		return m, nil
	case catalogLoadedMsg:
		m.catalogScr.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenSellers
			return m, nil
		}
		m.catalogScr.catalog = msg.catalog
		return m, nil
	case orderPlacedMsg:
		m.catalogScr.ordering = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.catalogScr.status = "Order #" + strconv.FormatInt(msg.orderID, 10) + " placed"
		return m, cmdClearStatus()
	case catalogCreatedMsg:
		m.catalogForm.submitting = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			return m, nil
		}
		m.currentScreen = screenHome
		m.home.status = "Catalog #" + strconv.FormatInt(msg.catalogID, 10) + " created"
		m.catalogForm = newCatalogFormModel()
		return m, cmdClearStatus()
	case ordersLoadedMsg:
		m.ordersScr.loading = false
		if msg.err != nil {
			m.showErrorf(msg.err.Error())
			m.currentScreen = screenHome
			return m, nil
		}
		m.ordersScr.orders = msg.orders
		return m, nil
	case copiedMsg:
		m.home.status = "Token copied to clipboard"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.home.status = ""
		m.catalogScr.status = ""
		return m, nil
	case spinner.TickMsg:
		return m.updateSpinners(msg)
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenHome:
		return m.updateHome(msg)
	case screenSellers:
		return m.updateSellers(msg)
	case screenCatalog:
		return m.updateCatalog(msg)
	case screenCatalogForm:
		return m.updateCatalogForm(msg)
	case screenOrders:
		return m.updateOrders(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
	case screenLogin:
		body = m.login.View()
	case screenRegister:
		body = m.register.View()
	case screenHome:
		body = m.home.View()
	case screenSellers:
		body = m.sellersScr.View()
	case screenCatalog:
		body = m.catalogScr.View()
	case screenCatalogForm:
		body = m.catalogForm.View()
	case screenOrders:
		body = m.ordersScr.View()
	}

	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) setSubmitting(v bool) {
	m.login.submitting = v
	m.register.submitting = v
	m.catalogForm.submitting = v
}

func (m appModel) updateSpinners(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.sellersScr.loading:
		m.sellersScr.spinner, cmd = m.sellersScr.spinner.Update(msg)
	case m.catalogScr.loading:
		m.catalogScr.spinner, cmd = m.catalogScr.spinner.Update(msg)
	case m.ordersScr.loading:
		m.ordersScr.spinner, cmd = m.ordersScr.spinner.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.welcome.idx > 0 {
			m.welcome.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.welcome.idx < len(m.welcome.items)-1 {
			m.welcome.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.welcome.idx == 0 {
			m.currentScreen = screenLogin
		} else {
			m.currentScreen = screenRegister
		}
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateLogin(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.login = focusNextLogin(m.login, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.login = focusNextLogin(m.login, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.login.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.login.inputs[0].Value())
			pass := m.login.inputs[1].Value()
			if name == "" || pass == "" {
				m.showErrorf("Name and password are required")
				return m, nil
			}
			m.login.submitting = true
			return m, m.cmdLogin(name, pass)
		}
	}

	var cmd tea.Cmd
	m.login.inputs[m.login.focus], cmd = m.login.inputs[m.login.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateRegister(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenWelcome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.register = focusNextRegister(m.register, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.register = focusNextRegister(m.register, -1)
			return m, nil
		case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
			m.register = m.register.toggleRole()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.register.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.register.inputs[0].Value())
			pass := m.register.inputs[1].Value()
			repeat := m.register.inputs[2].Value()
			if name == "" || pass == "" {
				m.showErrorf("Name and password are required")
				return m, nil
			}
			if pass != repeat {
				m.showErrorf("Passwords do not match")
				return m, nil
			}
			m.register.submitting = true
			return m, m.cmdRegisterAndLogin(name, pass, m.register.role)
		}
	}

	var cmd tea.Cmd
	m.register.inputs[m.register.focus], cmd = m.register.inputs[m.register.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.items)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		switch m.home.idx {
		case 0:
			m.currentScreen = screenSellers
			m.sellersScr.loading = true
			return m, tea.Batch(m.sellersScr.spinner.Tick, m.cmdLoadSellers())
		case 1:
			m.currentScreen = screenCatalogForm
			return m, textinput.Blink
		case 2:
			m.currentScreen = screenOrders
			m.ordersScr.loading = true
			return m, tea.Batch(m.ordersScr.spinner.Tick, m.cmdLoadOrders())
		}
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopyToClipboard(m.adapter.Token())
	case key.Matches(keyMsg, keys.logout):
		m.adapter.SetToken("")
		m.login = newLoginModel()
		m.register = newRegisterModel()
		m.currentScreen = screenWelcome
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateSellers(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.up):
		if m.sellersScr.idx > 0 {
			m.sellersScr.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.sellersScr.idx < len(m.sellersScr.sellers)-1 {
			m.sellersScr.idx++
		}
	case key.Matches(keyMsg, keys.refresh):
		if m.sellersScr.loading {
			return m, nil
		}
		m.sellersScr.loading = true
		return m, tea.Batch(m.sellersScr.spinner.Tick, m.cmdLoadSellers())
	case key.Matches(keyMsg, keys.enter):
		seller, ok := m.sellersScr.current()
		if !ok {
			return m, nil
		}
		m.currentScreen = screenCatalog
		m.catalogScr = newCatalogModel()
		m.catalogScr.loading = true
		return m, tea.Batch(m.catalogScr.spinner.Tick, m.cmdLoadCatalog(seller.UserID))
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateCatalog(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenSellers
	case key.Matches(keyMsg, keys.order):
		if m.catalogScr.loading || m.catalogScr.ordering {
			return m, nil
		}
		m.catalogScr.ordering = true
		return m, m.cmdPlaceOrder(m.catalogScr.catalog.SellerID)
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) updateCatalogForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = screenHome
			return m, nil
		case key.Matches(keyMsg, keys.tab):
			m.catalogForm = focusNextCatalogForm(m.catalogForm, 1)
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.catalogForm = focusNextCatalogForm(m.catalogForm, -1)
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			if m.catalogForm.submitting {
				return m, nil
			}
			name := strings.TrimSpace(m.catalogForm.inputs[0].Value())
			rawPrice := strings.TrimSpace(m.catalogForm.inputs[1].Value())

			// enter on blank fields submits; a bare catalog is allowed
			if name == "" && rawPrice == "" {
				m.catalogForm.submitting = true
				return m, m.cmdCreateCatalog(m.catalogForm.products)
			}

			if name == "" || rawPrice == "" {
				m.showErrorf("Product name and price are both required")
				return m, nil
			}
			price, err := strconv.ParseFloat(rawPrice, 64)
			if err != nil || price <= 0 {
				m.showErrorf("Price must be a positive number")
				return m, nil
			}

			m.catalogForm.products = append(m.catalogForm.products, models.Product{Name: name, Price: price})
			m.catalogForm.inputs[0].SetValue("")
			m.catalogForm.inputs[1].SetValue("")
			m.catalogForm = focusCatalogForm(m.catalogForm, 0)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.catalogForm.inputs[m.catalogForm.focus], cmd = m.catalogForm.inputs[m.catalogForm.focus].Update(msg)
	return m, cmd
}

func (m appModel) updateOrders(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenHome
	case key.Matches(keyMsg, keys.refresh):
		if m.ordersScr.loading {
			return m, nil
		}
		m.ordersScr.loading = true
		return m, tea.Batch(m.ordersScr.spinner.Tick, m.cmdLoadOrders())
	case key.Matches(keyMsg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit
	}
	return m, nil
}

func (m appModel) cmdLogin(name, password string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		token, err := serverAdapter.Login(ctx, name, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}

func (m appModel) cmdRegisterAndLogin(name, password, role string) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		if _, err := serverAdapter.Register(ctx, name, password, role); err != nil {
			return authFailedMsg{err: err}
		}
		token, err := serverAdapter.Login(ctx, name, password)
		if err != nil {
			return authFailedMsg{err: err}
		}
		return authDoneMsg{token: token}
	}
}

func (m appModel) cmdLoadSellers() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		sellers, err := serverAdapter.Sellers(ctx)
		return sellersLoadedMsg{sellers: sellers, err: err}
	}
}

func (m appModel) cmdLoadCatalog(sellerID int64) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		catalog, err := serverAdapter.SellerCatalog(ctx, sellerID)
		return catalogLoadedMsg{catalog: catalog, err: err}
	}
}

func (m appModel) cmdPlaceOrder(sellerID int64) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		orderID, err := serverAdapter.CreateOrder(ctx, sellerID)
		return orderPlacedMsg{orderID: orderID, err: err}
	}
}

func (m appModel) cmdCreateCatalog(products []models.Product) tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		catalogID, err := serverAdapter.CreateCatalog(ctx, products)
		return catalogCreatedMsg{catalogID: catalogID, err: err}
	}
}

func (m appModel) cmdLoadOrders() tea.Cmd {
	ctx := m.ctx
	serverAdapter := m.adapter
	return func() tea.Msg {
		orders, err := serverAdapter.Orders(ctx)
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return authFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func focusNextLogin(m loginModel, step int) loginModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextRegister(m registerModel, step int) registerModel {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + step + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
	return m
}

func focusNextCatalogForm(m catalogFormModel, step int) catalogFormModel {
	return focusCatalogForm(m, (m.focus+step+len(m.inputs))%len(m.inputs))
}

func focusCatalogForm(m catalogFormModel, focus int) catalogFormModel {
	m.inputs[m.focus].Blur()
	m.focus = focus
	m.inputs[m.focus].Focus()
	return m
}
