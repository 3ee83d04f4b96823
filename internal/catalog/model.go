package catalog

import "time"

type Category struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type ShippingMethod struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type PaymentMethod struct {
	ID          int64  `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
}

type Customer struct {
	ID               int64  `json:"id" db:"id"`
	FirstName        string `json:"first_name" db:"first_name"`
	LastName         string `json:"last_name" db:"last_name"`
	Disambiguator    string `json:"disambiguator" db:"disambiguator"`
	Username         string `json:"username" db:"username"`
	Password         string `json:"-" db:"password"`
	Email            string `json:"email" db:"email"`
	ShippingMethodID int64  `json:"shipping_method_id" db:"shipping_method_id"`
	PaymentMethodID  int64  `json:"payment_method_id" db:"payment_method_id"`
}

type Product struct {
	ID         int64   `json:"id" db:"id"`
	Name       string  `json:"name" db:"name"`
	Price      float64 `json:"price" db:"price"`
	StockNum   int     `json:"stock_num" db:"stock_num"`
	CategoryID int64   `json:"category_id" db:"category_id"`
}

type ShoppingCart struct {
	ID               int64   `json:"id" db:"id"`
	TotalPrice       float64 `json:"total_price" db:"total_price"`
	CustomerID       int64   `json:"customer_id" db:"customer_id"`
	ShippingMethodID int64   `json:"shipping_method_id" db:"shipping_method_id"`
	PaymentMethodID  int64   `json:"payment_method_id" db:"payment_method_id"`
}

type CartItem struct {
	ID        int64 `json:"id" db:"id"`
	Quantity  int   `json:"quantity" db:"quantity"`
	CartID    int64 `json:"cart_id" db:"cart_id"`
	ProductID int64 `json:"product_id" db:"product_id"`
}

type Order struct {
	ID               int64     `json:"id" db:"id"`
	TotalPrice       float64   `json:"total_price" db:"total_price"`
	OrderDate        time.Time `json:"order_date" db:"order_date"`
	Receiver         string    `json:"receiver" db:"receiver"`
	Address          string    `json:"address" db:"address"`
	ShippingMethodID int64     `json:"shipping_method_id" db:"shipping_method_id"`
	PaymentMethodID  int64     `json:"payment_method_id" db:"payment_method_id"`
	CustomerID       int64     `json:"customer_id" db:"customer_id"`
}

type OrderLineItem struct {
	ID        int64   `json:"id" db:"id"`
	Price     float64 `json:"price" db:"price"`
	Quantity  int     `json:"quantity" db:"quantity"`
	OrderID   int64   `json:"order_id" db:"order_id"`
	ProductID int64   `json:"product_id" db:"product_id"`
}

// Line joins a cart item or order line item with the product it points at.
// Detail views price lines with the current product price, not a stored one.
type Line struct {
	ID           int64   `json:"id"`
	Quantity     int     `json:"quantity"`
	ProductID    int64   `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductPrice float64 `json:"product_price"`
}

// SubTotal is the line's contribution to a cart or order total.
func (l Line) SubTotal() float64 {
	return float64(l.Quantity) * l.ProductPrice
}

// TotalOf recomputes a cart or order total from its lines. An empty line set
// totals to zero.
func TotalOf(lines []Line) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.SubTotal()
	}
	return total
}
