package models

// DashboardStats is the landing-page summary.
type DashboardStats struct {
	TotalEarnings  string  `json:"total_earnings"`
	ActivePackage  *string `json:"active_package"`
	AdsViewedToday int     `json:"ads_viewed_today"`
	ReferralsCount int     `json:"referrals_count"`
}

// Product is a store item.
type Product struct {
	ID                   int64  `json:"id"`
	Name                 string `json:"name"`
	Description          string `json:"description"`
	Price                string `json:"price"`
	MainImage            string `json:"main_image,omitempty"`
	IsFeatured           bool   `json:"is_featured"`
	SupportsInstallments bool   `json:"supports_installments"`
}

// Order is a store purchase.
type Order struct {
	ID          int64  `json:"id"`
	Status      string `json:"status"`
	TotalAmount string `json:"total_amount"`
	CreatedAt   string `json:"created_at"`
}

// TrackingInfo is the delivery status of an order in transit.
type TrackingInfo struct {
	TrackingNumber    string          `json:"tracking_number,omitempty"`
	EstimatedDelivery string          `json:"estimated_delivery,omitempty"`
	EstimatedMinutes  int             `json:"estimated_minutes,omitempty"`
	DeliveryGuy       *DeliveryGuy    `json:"delivery_guy,omitempty"`
	History           []TrackingEvent `json:"history,omitempty"`
	Status            string          `json:"status,omitempty"`
}

// DeliveryGuy identifies the courier handling a delivery.
type DeliveryGuy struct {
	Name        string `json:"name"`
	VehicleType string `json:"vehicle_type"`
}

// TrackingEvent is one entry in an order's delivery history.
type TrackingEvent struct {
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// RateOrderRequest scores a delivered order.
type RateOrderRequest struct {
	Rating int `json:"rating"`
}
