package models

import "github.com/shopspring/decimal"

// MaxPrice is the exclusive upper bound of a numeric(10,2) price.
var MaxPrice = decimal.New(1, 8)

type MenuItem struct {
	ID           uint            `json:"id"            gorm:"primary_key"`
	RestaurantID uint            `json:"restaurant_id" gorm:"index;not null"`
	Name         string          `json:"name"          gorm:"type:varchar(100);not null"`
	Price        decimal.Decimal `json:"price"         gorm:"type:numeric(10,2);not null"`
	Description  string          `json:"description"`
}
