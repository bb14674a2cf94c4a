package model

import (
	"encoding/json"
	"fmt"
	"strings"

	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/money"
)

// ItemType — тип товара, ключ — UPC. Сервер — единственный источник уникальности.
type ItemType struct {
	Name     string  `json:"name"`
	UPC      int64   `json:"upc"`
	ImageURL *string `json:"imageURL,omitempty"`
}

// Validate проверяет поля до отправки на сервер.
func (t ItemType) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errs.Validation("item type name is required")
	}
	if !money.ValidIdentifier(t.UPC) {
		return errs.Validation("upc %d does not fit in %d digits", t.UPC, money.IdentifierWidth)
	}
	return nil
}

type itemTypeWire struct {
	Name     *string `json:"name"`
	UPC      *int64  `json:"upc"`
	ImageURL *string `json:"imageURL"`
}

// UnmarshalJSON требует ключи name и upc.
func (t *ItemType) UnmarshalJSON(b []byte) error {
	var w itemTypeWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.Name == nil {
		return fmt.Errorf("item type: %w %q", ErrMissingField, "name")
	}
	if w.UPC == nil {
		return fmt.Errorf("item type: %w %q", ErrMissingField, "upc")
	}
	*t = ItemType{Name: *w.Name, UPC: *w.UPC, ImageURL: w.ImageURL}
	return nil
}
