package models

import "time"

const (
	MinScore         = 1.0
	MaxScore         = 5.0
	MaxCommentLength = 500
)

type RestaurantReview struct {
	ID           uint        `json:"id"            gorm:"primary_key"`
	Score        float64     `json:"score"         gorm:"not null"`
	Comment      string      `json:"comment"       gorm:"type:varchar(500)"`
	RestaurantID uint        `json:"restaurant_id" gorm:"index;not null"`
	Restaurant   *Restaurant `json:"restaurant,omitempty" gorm:"association_autoupdate:false;association_autocreate:false"`
	CustomerID   uint        `json:"customer_id"   gorm:"index"`
	Customer     *Customer   `json:"customer,omitempty"   gorm:"association_autoupdate:false;association_autocreate:false"`
	CreatedAt    time.Time   `json:"created_at"    gorm:"not null"`
}

type DishReview struct {
	ID         uint      `json:"id"           gorm:"primary_key"`
	Score      float64   `json:"score"        gorm:"not null"`
	Comment    string    `json:"comment"      gorm:"type:varchar(500)"`
	MenuItemID uint      `json:"menu_item_id" gorm:"index;not null"`
	MenuItem   *MenuItem `json:"menu_item,omitempty" gorm:"association_autoupdate:false;association_autocreate:false"`
	CustomerID uint      `json:"customer_id"  gorm:"index;not null"`
	Customer   *Customer `json:"customer,omitempty"  gorm:"association_autoupdate:false;association_autocreate:false"`
	CreatedAt  time.Time `json:"created_at"   gorm:"not null"`
}

func (r RestaurantReview) score() float64 { return r.Score }

func (r DishReview) score() float64 { return r.Score }

type scored interface {
	RestaurantReview | DishReview
	score() float64
}

// AverageScore returns the mean score of the reviews, 0 for none.
func AverageScore[R scored](reviews []R) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.score()
	}
	return sum / float64(len(reviews))
}
