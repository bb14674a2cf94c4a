package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/money"
)

// ItemStatus — стадия жизни экземпляра товара. На проводе передаётся числом.
type ItemStatus int32

const (
	StatusOrdered ItemStatus = 0
	StatusInStock ItemStatus = 1
	StatusSold    ItemStatus = 2
)

func (s ItemStatus) String() string {
	switch s {
	case StatusOrdered:
		return "Ordered"
	case StatusInStock:
		return "In Stock"
	case StatusSold:
		return "Sold"
	default:
		return fmt.Sprintf("ItemStatus(%d)", int32(s))
	}
}

// Valid сообщает, является ли значение известным статусом.
func (s ItemStatus) Valid() bool {
	return s >= StatusOrdered && s <= StatusSold
}

// ParseItemStatus принимает имя статуса (без учёта регистра и пробелов) или его номер.
func ParseItemStatus(text string) (ItemStatus, error) {
	switch normalize(text) {
	case "ordered", "0":
		return StatusOrdered, nil
	case "instock", "1":
		return StatusInStock, nil
	case "sold", "2":
		return StatusSold, nil
	}
	return 0, errs.Validation("unknown item status %q", text)
}

func normalize(text string) string {
	r := strings.NewReplacer(" ", "", "_", "", "-", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(text)))
}

func (s *ItemStatus) UnmarshalJSON(b []byte) error {
	var n int32
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	st := ItemStatus(n)
	if !st.Valid() {
		return fmt.Errorf("unknown item status %d", n)
	}
	*s = st
	return nil
}

// Item — экземпляр товара с денежными полями.
// ID == nil означает «неидентифицированный» экземпляр (до присвоения id сервером).
type Item struct {
	ID                  *int64
	ItemTypeUPC         int64
	QRCode              *string
	Status              ItemStatus
	OrderNumberToSeller *string
	OrderNumberToBuyer  *string

	PricePaidBySeller    decimal.Decimal
	TaxPaidBySeller      decimal.Decimal
	ShippingCostToSeller decimal.Decimal
	ShippingCostToBuyer  decimal.Decimal
	Fees                 decimal.Decimal
	OtherExpenses        decimal.Decimal
	ShippingPaidByBuyer  decimal.Decimal
	PricePaidByBuyer     decimal.Decimal
}

// NewItem возвращает неидентифицированный экземпляр со статусом Ordered и нулевыми суммами.
func NewItem(upc int64) Item {
	return Item{ItemTypeUPC: upc, Status: StatusOrdered}
}

// Identified сообщает, присвоен ли экземпляру id.
func (it Item) Identified() bool {
	return it.ID != nil
}

// IDValue возвращает id или 0 для неидентифицированного экземпляра.
func (it Item) IDValue() int64 {
	if it.ID == nil {
		return 0
	}
	return *it.ID
}

// Unidentified — проекция без id (тело запросов create/update).
func (it Item) Unidentified() Item {
	it.ID = nil
	return it
}

// WithID возвращает копию с присвоенным id.
func (it Item) WithID(id int64) Item {
	it.ID = &id
	return it
}

// Expenses — сумма всех расходов продавца.
func (it Item) Expenses() decimal.Decimal {
	return decimal.Sum(it.PricePaidBySeller,
		it.TaxPaidBySeller,
		it.ShippingCostToSeller,
		it.ShippingCostToBuyer,
		it.Fees,
		it.OtherExpenses,
	)
}

// Revenues — сумма, полученная от покупателя.
func (it Item) Revenues() decimal.Decimal {
	return it.ShippingPaidByBuyer.Add(it.PricePaidByBuyer)
}

// Profit = Revenues - Expenses.
func (it Item) Profit() decimal.Decimal {
	return it.Revenues().Sub(it.Expenses())
}

// Validate проверяет поля до отправки на сервер.
func (it Item) Validate() error {
	if !money.ValidIdentifier(it.ItemTypeUPC) {
		return errs.Validation("item type upc %d does not fit in %d digits", it.ItemTypeUPC, money.IdentifierWidth)
	}
	if !it.Status.Valid() {
		return errs.Validation("unknown item status %d", int32(it.Status))
	}
	return nil
}

// itemWire — форма Item на проводе. Производные поля не передаются.
type itemWire struct {
	ID                   *int64     `json:"id,omitempty"`
	ItemTypeUPC          int64      `json:"itemTypeUPC"`
	QRCode               *string    `json:"qrCode"`
	Status               ItemStatus `json:"itemStatus"`
	OrderNumberToSeller  *string    `json:"orderNumberToSeller"`
	OrderNumberToBuyer   *string    `json:"orderNumberToBuyer"`
	PricePaidBySeller    wireMoney  `json:"pricePaidBySeller"`
	TaxPaidBySeller      wireMoney  `json:"taxPaidBySeller"`
	ShippingCostToSeller wireMoney  `json:"shippingCostToSeller"`
	ShippingCostToBuyer  wireMoney  `json:"shippingCostToBuyer"`
	Fees                 wireMoney  `json:"fees"`
	OtherExpenses        wireMoney  `json:"otherExpenses"`
	ShippingPaidByBuyer  wireMoney  `json:"shippingPaidByBuyer"`
	PricePaidByBuyer     wireMoney  `json:"pricePaidByBuyer"`
}

// itemWireIn — то же при чтении: nil означает отсутствующий (или null) ключ.
type itemWireIn struct {
	ID                   *int64      `json:"id"`
	ItemTypeUPC          *int64      `json:"itemTypeUPC"`
	QRCode               *string     `json:"qrCode"`
	Status               *ItemStatus `json:"itemStatus"`
	OrderNumberToSeller  *string     `json:"orderNumberToSeller"`
	OrderNumberToBuyer   *string     `json:"orderNumberToBuyer"`
	PricePaidBySeller    *wireMoney  `json:"pricePaidBySeller"`
	TaxPaidBySeller      *wireMoney  `json:"taxPaidBySeller"`
	ShippingCostToSeller *wireMoney  `json:"shippingCostToSeller"`
	ShippingCostToBuyer  *wireMoney  `json:"shippingCostToBuyer"`
	Fees                 *wireMoney  `json:"fees"`
	OtherExpenses        *wireMoney  `json:"otherExpenses"`
	ShippingPaidByBuyer  *wireMoney  `json:"shippingPaidByBuyer"`
	PricePaidByBuyer     *wireMoney  `json:"pricePaidByBuyer"`
}

// ErrMissingField — в документе нет обязательного ключа.
var ErrMissingField = errors.New("missing required field")

func (it Item) MarshalJSON() ([]byte, error) {
	return json.Marshal(itemWire{
		ID:                   it.ID,
		ItemTypeUPC:          it.ItemTypeUPC,
		QRCode:               it.QRCode,
		Status:               it.Status,
		OrderNumberToSeller:  it.OrderNumberToSeller,
		OrderNumberToBuyer:   it.OrderNumberToBuyer,
		PricePaidBySeller:    wireMoney(it.PricePaidBySeller),
		TaxPaidBySeller:      wireMoney(it.TaxPaidBySeller),
		ShippingCostToSeller: wireMoney(it.ShippingCostToSeller),
		ShippingCostToBuyer:  wireMoney(it.ShippingCostToBuyer),
		Fees:                 wireMoney(it.Fees),
		OtherExpenses:        wireMoney(it.OtherExpenses),
		ShippingPaidByBuyer:  wireMoney(it.ShippingPaidByBuyer),
		PricePaidByBuyer:     wireMoney(it.PricePaidByBuyer),
	})
}

// UnmarshalJSON требует itemTypeUPC, itemStatus и все восемь денежных ключей.
// id, qrCode и номера заказов необязательны.
func (it *Item) UnmarshalJSON(b []byte) error {
	var w itemWireIn
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if w.ItemTypeUPC == nil {
		return fmt.Errorf("item: %w %q", ErrMissingField, "itemTypeUPC")
	}
	if w.Status == nil {
		return fmt.Errorf("item: %w %q", ErrMissingField, "itemStatus")
	}
	out := Item{
		ID:                  w.ID,
		ItemTypeUPC:         *w.ItemTypeUPC,
		QRCode:              w.QRCode,
		Status:              *w.Status,
		OrderNumberToSeller: w.OrderNumberToSeller,
		OrderNumberToBuyer:  w.OrderNumberToBuyer,
	}
	amounts := []struct {
		key string
		src *wireMoney
		dst *decimal.Decimal
	}{
		{"pricePaidBySeller", w.PricePaidBySeller, &out.PricePaidBySeller},
		{"taxPaidBySeller", w.TaxPaidBySeller, &out.TaxPaidBySeller},
		{"shippingCostToSeller", w.ShippingCostToSeller, &out.ShippingCostToSeller},
		{"shippingCostToBuyer", w.ShippingCostToBuyer, &out.ShippingCostToBuyer},
		{"fees", w.Fees, &out.Fees},
		{"otherExpenses", w.OtherExpenses, &out.OtherExpenses},
		{"shippingPaidByBuyer", w.ShippingPaidByBuyer, &out.ShippingPaidByBuyer},
		{"pricePaidByBuyer", w.PricePaidByBuyer, &out.PricePaidByBuyer},
	}
	for _, a := range amounts {
		if a.src == nil {
			return fmt.Errorf("item: %w %q", ErrMissingField, a.key)
		}
		*a.dst = decimal.Decimal(*a.src)
	}
	*it = out
	return nil
}

// wireMoney пишет сумму голым JSON-числом, сохраняя все знаки.
// При чтении принимает и число, и строку; null считается отсутствием значения.
type wireMoney decimal.Decimal

func (m wireMoney) MarshalJSON() ([]byte, error) {
	d := decimal.Decimal(m)
	if exp := d.Exponent(); exp < 0 {
		return []byte(d.StringFixed(-exp)), nil
	}
	return []byte(d.String()), nil
}

func (m *wireMoney) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return err
	}
	*m = wireMoney(d)
	return nil
}
