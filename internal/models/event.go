package models

type EventType string

const (
	EventOrderPlaced               EventType = "order.placed"
	EventOrderStatusChanged        EventType = "order.status_changed"
	EventRestaurantReviewSubmitted EventType = "review.restaurant_submitted"
	EventDishReviewSubmitted       EventType = "review.dish_submitted"
)
