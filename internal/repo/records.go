package repo

import (
	"time"

	"github.com/shopspring/decimal"

	"InventoryManagement/internal/model"
)

// ItemTypeRecord — строка таблицы item_types.
type ItemTypeRecord struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	UPC      int64  `gorm:"uniqueIndex;not null"`
	Name     string `gorm:"not null"`
	ImageURL *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ItemTypeRecord) TableName() string { return "item_types" }

// ItemRecord — строка таблицы items. Суммы хранятся текстом, чтобы не терять точность и масштаб.
type ItemRecord struct {
	ID                  int64   `gorm:"primaryKey;autoIncrement"`
	ItemTypeUPC         int64   `gorm:"index;not null"`
	QRCode              *string `gorm:"index"`
	Status              int32   `gorm:"not null"`
	OrderNumberToSeller *string `gorm:"index"`
	OrderNumberToBuyer  *string `gorm:"index"`

	PricePaidBySeller    string `gorm:"type:text;not null"`
	TaxPaidBySeller      string `gorm:"type:text;not null"`
	ShippingCostToSeller string `gorm:"type:text;not null"`
	ShippingCostToBuyer  string `gorm:"type:text;not null"`
	Fees                 string `gorm:"type:text;not null"`
	OtherExpenses        string `gorm:"type:text;not null"`
	ShippingPaidByBuyer  string `gorm:"type:text;not null"`
	PricePaidByBuyer     string `gorm:"type:text;not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (ItemRecord) TableName() string { return "items" }

func toItemTypeRecord(t model.ItemType) ItemTypeRecord {
	return ItemTypeRecord{UPC: t.UPC, Name: t.Name, ImageURL: t.ImageURL}
}

func (r ItemTypeRecord) toModel() model.ItemType {
	return model.ItemType{Name: r.Name, UPC: r.UPC, ImageURL: r.ImageURL}
}

func moneyText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// textMoney разбирает сохранённую сумму; повреждённое значение читается как ноль.
func textMoney(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func toItemRecord(it model.Item) ItemRecord {
	return ItemRecord{
		ID:                   it.IDValue(),
		ItemTypeUPC:          it.ItemTypeUPC,
		QRCode:               it.QRCode,
		Status:               int32(it.Status),
		OrderNumberToSeller:  it.OrderNumberToSeller,
		OrderNumberToBuyer:   it.OrderNumberToBuyer,
		PricePaidBySeller:    moneyText(it.PricePaidBySeller),
		TaxPaidBySeller:      moneyText(it.TaxPaidBySeller),
		ShippingCostToSeller: moneyText(it.ShippingCostToSeller),
		ShippingCostToBuyer:  moneyText(it.ShippingCostToBuyer),
		Fees:                 moneyText(it.Fees),
		OtherExpenses:        moneyText(it.OtherExpenses),
		ShippingPaidByBuyer:  moneyText(it.ShippingPaidByBuyer),
		PricePaidByBuyer:     moneyText(it.PricePaidByBuyer),
	}
}

func (r ItemRecord) toModel() model.Item {
	it := model.Item{
		ItemTypeUPC:          r.ItemTypeUPC,
		QRCode:               r.QRCode,
		Status:               model.ItemStatus(r.Status),
		OrderNumberToSeller:  r.OrderNumberToSeller,
		OrderNumberToBuyer:   r.OrderNumberToBuyer,
		PricePaidBySeller:    textMoney(r.PricePaidBySeller),
		TaxPaidBySeller:      textMoney(r.TaxPaidBySeller),
		ShippingCostToSeller: textMoney(r.ShippingCostToSeller),
		ShippingCostToBuyer:  textMoney(r.ShippingCostToBuyer),
		Fees:                 textMoney(r.Fees),
		OtherExpenses:        textMoney(r.OtherExpenses),
		ShippingPaidByBuyer:  textMoney(r.ShippingPaidByBuyer),
		PricePaidByBuyer:     textMoney(r.PricePaidByBuyer),
	}
	return it.WithID(r.ID)
}

func itemsToModel(recs []ItemRecord) []model.Item {
	out := make([]model.Item, 0, len(recs))
	for _, r := range recs {
		out = append(out, r.toModel())
	}
	return out
}
