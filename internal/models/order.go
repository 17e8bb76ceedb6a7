package models

type Order struct {
	OrderID      string `json:"order_id"`
	CustomerName string `json:"name"`
	DeliveryDay  string `json:"delivery_day"`
	Zone         string `json:"zone"`
	Address      string `json:"address"`
	PackageSize  string `json:"package_size"`
	Status       string `json:"status"` // Pending, Delivered, Failed
	CreatedAt    string `json:"created_at"`
	DeliveredAt  string `json:"delivered_at,omitempty"`
}
