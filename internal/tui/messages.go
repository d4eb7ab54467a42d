package tui

import "bazaar-be/models"

type authDoneMsg struct {
	token string
}

type sellersLoadedMsg struct {
	sellers []models.User
	err     error
}

type catalogLoadedMsg struct {
	catalog models.SellerCatalog
	err     error
}

type orderPlacedMsg struct {
	orderID int64
	err     error
}

type catalogCreatedMsg struct {
	catalogID int64
	err       error
}

type ordersLoadedMsg struct {
	orders []models.SellerOrder
	err    error
}

type authFailedMsg struct {
	err error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
