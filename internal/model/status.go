package model

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// StatusInfo is the display projection of an order status, shared by the
// order list, order detail, and admin views.
type StatusInfo struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Info maps a status to its display representation. It is total: unrecognized
// values project as pending rather than failing.
func (s OrderStatus) Info() StatusInfo {
	switch s {
	case OrderStatusProcessing:
		return StatusInfo{Label: "Processing", Color: "blue", Icon: "package"}
	case OrderStatusShipped:
		return StatusInfo{Label: "Shipped", Color: "purple", Icon: "truck"}
	case OrderStatusDelivered:
		return StatusInfo{Label: "Delivered", Color: "green", Icon: "check-circle"}
	case OrderStatusCancelled:
		return StatusInfo{Label: "Cancelled", Color: "red", Icon: "x-circle"}
	default:
		return StatusInfo{Label: "Order Received", Color: "yellow", Icon: "clock"}
	}
}
