package cart

import (
	"github.com/shopspring/decimal"

	"github.com/threadline-co/threadline-backend/internal/catalog"
)

// Item is one cart line. Product and Price are snapshots taken when the
// line was created; later catalog changes never touch them.
type Item struct {
	ProductID string          `json:"product_id"`
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Size      *string         `json:"size,omitempty"`
	Color     *string         `json:"color,omitempty"`
}

// LineTotal is the snapshot price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CartDTO is the cart view returned by every operation.
type CartDTO struct {
	Items      []Item          `json:"items"`
	IsOpen     bool            `json:"is_open"`
	TotalItems int             `json:"total_items"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// AddItemInput captures the caller-supplied line options.
type AddItemInput struct {
	Quantity int     `json:"quantity"`
	Size     *string `json:"size,omitempty"`
	Color    *string `json:"color,omitempty"`
}

// snapshot is the persisted shape. Only items survive a restart; the
// open flag always resets to false.
type snapshot struct {
	Items []Item `json:"items"`
}
