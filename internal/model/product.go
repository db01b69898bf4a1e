package model

type Product struct {
	ID              int64   `json:"id"`
	OwnerID         int64   `json:"ownerId"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	IsSold          bool    `json:"isSold"`
	IsOfferable     bool    `json:"isOfferable"`
	CategoryName    string  `json:"categoryName"`
	BrandName       string  `json:"brandName"`
	ColorName       string  `json:"colorName"`
	UsageStatusName string  `json:"usageStatusName"`
}

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
