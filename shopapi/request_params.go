package shopapi

// AddToCartParams is the body of POST /cart.
type AddToCartParams struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemParams is the body of PATCH /cart/{id}.
type UpdateCartItemParams struct {
	Quantity int `json:"quantity"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// CreateOrderParams is the body of POST /orders. Items is always encoded as an array, so it
// should be set to an empty slice rather than nil.
type CreateOrderParams struct {
	Items           []OrderItem `json:"items"`
	ShippingAddress string      `json:"shippingAddress"`
	Phone           string      `json:"phone"`
	UserName        string      `json:"userName"`
	UserEmail       string      `json:"userEmail"`
}

// CreateProductParams is the body of the admin-only POST /products.
type CreateProductParams struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
	Stock       int     `json:"stock"`
}
