// Package view готовит сущности каталога к показу в CLI.
package view

import (
	"fmt"
	"io"
	"strconv"

	"InventoryManagement/internal/model"
	"InventoryManagement/internal/money"
)

const notSet = "<not set>"

// ItemType — DTO для отображения типа товара.
type ItemType struct {
	UPC      string
	Name     string
	ImageURL string
}

// Item — DTO для отображения экземпляра. Суммы уже отформатированы кодеком,
// производные поля пересчитаны из хранимых.
type Item struct {
	ID                  string
	UPC                 string
	Status              string
	QRCode              string
	OrderNumberToSeller string
	OrderNumberToBuyer  string

	PricePaidBySeller    string
	TaxPaidBySeller      string
	ShippingCostToSeller string
	ShippingCostToBuyer  string
	Fees                 string
	OtherExpenses        string
	ShippingPaidByBuyer  string
	PricePaidByBuyer     string

	Expenses string
	Revenues string
	Profit   string
}

func optional(s *string) string {
	if s == nil || *s == "" {
		return notSet
	}
	return *s
}

// NewItemType строит DTO типа товара.
func NewItemType(t model.ItemType) ItemType {
	return ItemType{
		UPC:      money.FormatIdentifier(t.UPC),
		Name:     t.Name,
		ImageURL: optional(t.ImageURL),
	}
}

// NewItem строит DTO экземпляра.
func NewItem(c *money.Codec, it model.Item) Item {
	id := notSet
	if it.Identified() {
		id = strconv.FormatInt(it.IDValue(), 10)
	}
	return Item{
		ID:                   id,
		UPC:                  money.FormatIdentifier(it.ItemTypeUPC),
		Status:               it.Status.String(),
		QRCode:               optional(it.QRCode),
		OrderNumberToSeller:  optional(it.OrderNumberToSeller),
		OrderNumberToBuyer:   optional(it.OrderNumberToBuyer),
		PricePaidBySeller:    c.Format(it.PricePaidBySeller),
		TaxPaidBySeller:      c.Format(it.TaxPaidBySeller),
		ShippingCostToSeller: c.Format(it.ShippingCostToSeller),
		ShippingCostToBuyer:  c.Format(it.ShippingCostToBuyer),
		Fees:                 c.Format(it.Fees),
		OtherExpenses:        c.Format(it.OtherExpenses),
		ShippingPaidByBuyer:  c.Format(it.ShippingPaidByBuyer),
		PricePaidByBuyer:     c.Format(it.PricePaidByBuyer),
		Expenses:             c.Format(it.Expenses()),
		Revenues:             c.Format(it.Revenues()),
		Profit:               c.Format(it.Profit()),
	}
}

// WriteItemTypes печатает список типов, по одному в строке.
func WriteItemTypes(w io.Writer, types []model.ItemType) {
	if len(types) == 0 {
		fmt.Fprintln(w, "No item types")
		return
	}
	for _, t := range types {
		v := NewItemType(t)
		fmt.Fprintf(w, "- %s  %s\n", v.UPC, v.Name)
	}
	fmt.Fprintf(w, "Total: %d\n", len(types))
}

// WriteItemType печатает тип товара подробно.
func WriteItemType(w io.Writer, t model.ItemType) {
	v := NewItemType(t)
	fmt.Fprintf(w, "upc:       %s\n", v.UPC)
	fmt.Fprintf(w, "name:      %s\n", v.Name)
	fmt.Fprintf(w, "image:     %s\n", v.ImageURL)
}

// WriteItems печатает краткий список экземпляров.
func WriteItems(w io.Writer, c *money.Codec, items []model.Item) {
	if len(items) == 0 {
		fmt.Fprintln(w, "No items")
		return
	}
	for _, it := range items {
		v := NewItem(c, it)
		fmt.Fprintf(w, "- %s  upc=%s  status=%s  profit=%s\n", v.ID, v.UPC, v.Status, v.Profit)
	}
	fmt.Fprintf(w, "Total: %d\n", len(items))
}

// WriteItem печатает экземпляр подробно.
func WriteItem(w io.Writer, c *money.Codec, it model.Item) {
	v := NewItem(c, it)
	rows := [][2]string{
		{"id", v.ID},
		{"upc", v.UPC},
		{"status", v.Status},
		{"qr", v.QRCode},
		{"order (seller)", v.OrderNumberToSeller},
		{"order (buyer)", v.OrderNumberToBuyer},
		{"price paid", v.PricePaidBySeller},
		{"tax paid", v.TaxPaidBySeller},
		{"shipping in", v.ShippingCostToSeller},
		{"shipping out", v.ShippingCostToBuyer},
		{"fees", v.Fees},
		{"other", v.OtherExpenses},
		{"buyer shipping", v.ShippingPaidByBuyer},
		{"sale price", v.PricePaidByBuyer},
		{"expenses", v.Expenses},
		{"revenues", v.Revenues},
		{"profit", v.Profit},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-15s %s\n", r[0]+":", r[1])
	}
}
