package product

// Product is one catalog entry offered by a vendor. Price is the unit price
// in the shop currency; Stock of zero means no stock ceiling is enforced on
// cart quantities.
type Product struct {
	ID        int     `json:"productId"`
	Name      string  `json:"productName"`
	Price     float64 `json:"productPrice"`
	Image     string  `json:"productImage,omitempty"`
	Vendor    string  `json:"vendor"`
	VendorID  string  `json:"vendorId,omitempty"`
	Delivery  string  `json:"delivery,omitempty"`
	Stock     int     `json:"stock,omitempty"`
	CreatedAt string  `json:"createdAt,omitempty"`
	UpdatedAt string  `json:"updatedAt,omitempty"`
}
