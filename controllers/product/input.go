package productcontroller

import (
	"strings"

	"github.com/junaidrashid-git/orbit-aether/models"
)

type ProductInput struct {
	ID       models.FlexID `json:"id"`
	Name     string        `json:"name"`
	SKU      string        `json:"sku"`
	Price    float64       `json:"price"`
	Stock    int           `json:"stock"`
	Category string        `json:"category"`
	Status   string        `json:"status"`
}

func (in ProductInput) toModel() (models.Product, error) {
	status, err := models.ParseStockStatus(in.Status, in.Stock)
	if err != nil {
		return models.Product{}, err
	}
	return models.Product{
		ID:       in.ID.Uint(),
		Name:     strings.TrimSpace(in.Name),
		SKU:      strings.TrimSpace(in.SKU),
		Price:    in.Price,
		Stock:    in.Stock,
		Category: in.Category,
		Status:   status,
	}, nil
}

// columns lists what a full product update writes.
func columns(p models.Product) map[string]interface{} {
	return map[string]interface{}{
		"name":     p.Name,
		"sku":      p.SKU,
		"price":    p.Price,
		"stock":    p.Stock,
		"category": p.Category,
		"status":   p.Status,
	}
}
