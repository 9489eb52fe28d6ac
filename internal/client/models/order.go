package models

import "time"

// OrderStatus classifies the fulfillment state of an order. Status
// transitions happen server-side; the engine only carries them.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderItem is one line of a placed order. Prices are in minor
// currency units.
type OrderItem struct {
	ProductName string `json:"productName"`
	Size        string `json:"size,omitempty"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unitPrice"`
}

// OrderRecord is one placed purchase. OrderNumber is the natural key
// used to merge copies of the same order found in different tiers.
type OrderRecord struct {
	OrderNumber     string      `json:"orderNumber"`
	AccountID       string      `json:"accountId"`
	Date            time.Time   `json:"date"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int64       `json:"totalAmount"`
	PaymentMethod   string      `json:"paymentMethod"`
	Status          OrderStatus `json:"status"`
	ShippingAddress Address     `json:"shippingAddress"`
	TrackingNumber  string      `json:"trackingNumber,omitempty"`
	Carrier         string      `json:"carrier,omitempty"`
	TrackingURL     string      `json:"trackingUrl,omitempty"`
}

// FillMissingFrom copies fields from other into o for every field o
// leaves unset. Set fields of o are never overwritten, so when o is the
// remote copy and other the local one, remote values win.
func (o *OrderRecord) FillMissingFrom(other OrderRecord) {
	if o.AccountID == "" {
		o.AccountID = other.AccountID
	}
	if o.Date.IsZero() {
		o.Date = other.Date
	}
	if len(o.Items) == 0 {
		o.Items = other.Items
	}
	if o.TotalAmount == 0 {
		o.TotalAmount = other.TotalAmount
	}
	if o.PaymentMethod == "" {
		o.PaymentMethod = other.PaymentMethod
	}
	if o.Status == "" {
		o.Status = other.Status
	}
	if (o.ShippingAddress == Address{}) {
		o.ShippingAddress = other.ShippingAddress
	}
	if o.TrackingNumber == "" {
		o.TrackingNumber = other.TrackingNumber
	}
	if o.Carrier == "" {
		o.Carrier = other.Carrier
	}
	if o.TrackingURL == "" {
		o.TrackingURL = other.TrackingURL
	}
}

// Coupon is a discount voucher cached per account. A welcome coupon is
// seeded on registration.
type Coupon struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Percent     int       `json:"percent"`
	Description string    `json:"description"`
	Expires     time.Time `json:"expires"`
	Redeemed    bool      `json:"redeemed"`
}
