package models

import (
	"strings"
	"time"
)

// Status is stored as free text: the forward path is NEW -> IN_PROGRESS -> COMPLETED,
// with CANCELLED reachable from NEW or IN_PROGRESS, but owners may set any value.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
)

func (s Status) String() string { return string(s) }

func (s Status) IsBlank() bool { return strings.TrimSpace(string(s)) == "" }

// MaxLineQuantity bounds a single order line.
const MaxLineQuantity = 999

type Order struct {
	ID           uint        `json:"id"            gorm:"primary_key"`
	CustomerID   uint        `json:"customer_id"   gorm:"index;not null"`
	Customer     *Customer   `json:"customer,omitempty"   gorm:"association_autoupdate:false;association_autocreate:false"`
	RestaurantID uint        `json:"restaurant_id" gorm:"index;not null"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"association_autoupdate:false;association_autocreate:false"`
	Status       Status      `json:"status"        gorm:"type:text;not null"`
	Note         string      `json:"note"          gorm:"type:text"`
	CreatedAt    time.Time   `json:"created_at"    gorm:"not null"`
	Lines        []OrderLine `json:"lines"         gorm:"foreignkey:OrderID"`
}

// Contains reports whether any line of the order references the menu item.
func (o Order) Contains(menuItemID uint) bool {
	for _, l := range o.Lines {
		if l.MenuItemID == menuItemID {
			return true
		}
	}
	return false
}

type OrderLine struct {
	ID                 uint      `json:"id"                  gorm:"primary_key"`
	OrderID            uint      `json:"-"                   gorm:"index;not null"`
	MenuItemID         uint      `json:"menu_item_id"        gorm:"index;not null"`
	MenuItem           *MenuItem `json:"menu_item,omitempty" gorm:"association_autoupdate:false;association_autocreate:false"`
	Quantity           int       `json:"quantity"            gorm:"not null"`
	Note               string    `json:"note"`
	RemovedIngredients string    `json:"removed_ingredients"`
	AddedIngredients   string    `json:"added_ingredients"`
}

type OrderStatusChange struct {
	ID         uint      `json:"id"`
	OrderID    uint      `json:"order_id"`
	FromStatus Status    `json:"from_status"`
	ToStatus   Status    `json:"to_status"`
	ChangedBy  string    `json:"changed_by"`
	ChangedAt  time.Time `json:"changed_at"`
}
