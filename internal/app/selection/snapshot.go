package selection

import (
	"encoding/json"
	"fmt"

	"github.com/light-bringer/storefront-service/internal/app/selection/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/money"
)

// cartLineRecord is the persisted shape of a cart line.
type cartLineRecord struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    money.Money `json:"price"`
	Image    string      `json:"image"`
	Quantity int         `json:"quantity"`
	Brand    string      `json:"brand,omitempty"`
}

// EncodeFavorites serializes wishlist ids as a JSON array.
func EncodeFavorites(ids []string) ([]byte, error) {
	if ids == nil {
		ids = []string{}
	}
	return json.Marshal(ids)
}

// DecodeFavorites parses a JSON array of ids.
func DecodeFavorites(data []byte) ([]string, error) {
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}
	return ids, nil
}

// EncodeCart serializes cart lines as a JSON array of records.
func EncodeCart(lines []domain.CartLine) ([]byte, error) {
	records := make([]cartLineRecord, 0, len(lines))
	for _, l := range lines {
		records = append(records, cartLineRecord{
			ID:       l.ProductID,
			Name:     l.Name,
			Price:    l.Price,
			Image:    l.Image,
			Quantity: l.Quantity,
			Brand:    l.Brand,
		})
	}
	return json.Marshal(records)
}

// DecodeCart parses a JSON array of cart line records.
func DecodeCart(data []byte) ([]domain.CartLine, error) {
	var records []cartLineRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}

	lines := make([]domain.CartLine, 0, len(records))
	for _, r := range records {
		lines = append(lines, domain.CartLine{
			ProductID: r.ID,
			Name:      r.Name,
			Price:     r.Price,
			Image:     r.Image,
			Brand:     r.Brand,
			Quantity:  r.Quantity,
		})
	}
	return lines, nil
}
