package commerce

import (
	"context"

	"github.com/ebalci/pazaryeri/internal/model"
)

// Lookup is a reference-data row (brand, color, usage status).
type Lookup struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Products lists every product, sold or not. Callers filter for display.
func (c *Client) Products(ctx context.Context) ([]model.Product, error) {
	var out []model.Product
	if err := c.getJSON(ctx, "/Product/GetAll", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AddProductRequest carries every field of the add-product form.
type AddProductRequest struct {
	OwnerID       int64   `json:"ownerId"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	IsOfferable   bool    `json:"isOfferable"`
	CategoryID    int64   `json:"categoryId"`
	BrandID       int64   `json:"brandId"`
	ColorID       int64   `json:"colorId"`
	UsageStatusID int64   `json:"usageStatusId"`
}

func (c *Client) AddProduct(ctx context.Context, req AddProductRequest) error {
	return c.postJSON(ctx, "/Product/AddProduct", req, nil)
}

func (c *Client) Brands(ctx context.Context) ([]Lookup, error) {
	var out []Lookup
	if err := c.getJSON(ctx, "/Product/GetAllBrands", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Colors(ctx context.Context) ([]Lookup, error) {
	var out []Lookup
	if err := c.getJSON(ctx, "/Product/GetAllColors", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) UsageStatuses(ctx context.Context) ([]Lookup, error) {
	var out []Lookup
	if err := c.getJSON(ctx, "/Product/GetAllUsageStatuses", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
