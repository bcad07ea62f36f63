package dto

import "github.com/shopspring/decimal"

// DashboardResponse is the aggregate payload behind the dashboard shell.
type DashboardResponse struct {
	Users      int64           `json:"users"`
	Branches   int64           `json:"branches"`
	Customers  int64           `json:"customers"`
	Products   int64           `json:"products"`
	Providers  int64           `json:"providers"`
	Promotions int64           `json:"promotions"`
	Sales      int64           `json:"sales"`
	Buys       int64           `json:"buys"`
	SalesToday decimal.Decimal `json:"sales_today"`
}
