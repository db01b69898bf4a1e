package commerce

import (
	"context"
	"net/url"

	"github.com/ebalci/pazaryeri/internal/model"
)

// Categories lists every category.
func (c *Client) Categories(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	if err := c.getJSON(ctx, "/Category/GetAllCategory", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type addCategoryRequest struct {
	Name string `json:"name"`
}

func (c *Client) AddCategory(ctx context.Context, name string) error {
	return c.postJSON(ctx, "/Category/AddCategory", addCategoryRequest{Name: name}, nil)
}

type updateCategoryRequest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, name string) error {
	return c.postJSON(ctx, "/Category/UpdateCategoryByIdCategory", updateCategoryRequest{ID: id, Name: name}, nil)
}

// ProductsByCategory lists the products filed under the named category.
func (c *Client) ProductsByCategory(ctx context.Context, categoryName string) ([]model.Product, error) {
	var out []model.Product
	q := url.Values{"categoryName": {categoryName}}
	if err := c.getJSON(ctx, "/Product/GetProductByCategoryName", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}
