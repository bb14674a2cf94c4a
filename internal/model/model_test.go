package model

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"InventoryManagement/internal/errs"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestItem_DerivedFields(t *testing.T) {
	it := Item{
		PricePaidBySeller:    d("23.00"),
		TaxPaidBySeller:      d("0"),
		ShippingCostToSeller: d("1.00"),
		ShippingCostToBuyer:  d("43.00"),
		Fees:                 d("3.00"),
		OtherExpenses:        d("7.00"),
		ShippingPaidByBuyer:  d("43.00"),
		PricePaidByBuyer:     d("343.00"),
	}
	assert.True(t, it.Expenses().Equal(d("77.00")), "expenses %s", it.Expenses())
	assert.True(t, it.Revenues().Equal(d("386.00")), "revenues %s", it.Revenues())
	assert.True(t, it.Profit().Equal(d("309.00")), "profit %s", it.Profit())
	assert.True(t, it.Profit().Equal(it.Revenues().Sub(it.Expenses())))
}

func TestItem_TaxCountsAsExpense(t *testing.T) {
	it := NewItem(1)
	it.TaxPaidBySeller = d("2.50")
	assert.True(t, it.Expenses().Equal(d("2.50")))
	assert.True(t, it.Profit().Equal(d("-2.50")))
}

func TestItem_ZeroValueDerived(t *testing.T) {
	it := NewItem(887961202007)
	assert.True(t, it.Expenses().IsZero())
	assert.True(t, it.Revenues().IsZero())
	assert.True(t, it.Profit().IsZero())
	assert.Equal(t, StatusOrdered, it.Status)
	assert.False(t, it.Identified())
}

func TestItem_IdentityProjection(t *testing.T) {
	it := NewItem(5).WithID(42)
	assert.True(t, it.Identified())
	assert.Equal(t, int64(42), it.IDValue())

	un := it.Unidentified()
	assert.False(t, un.Identified())
	assert.Equal(t, int64(0), un.IDValue())
	// исходное значение не меняется
	assert.Equal(t, int64(42), it.IDValue())
}

func TestItem_JSONWireShape(t *testing.T) {
	qr := "QR-1"
	order := "A#1"
	it := Item{
		ItemTypeUPC:         887961202007,
		QRCode:              &qr,
		Status:              StatusInStock,
		OrderNumberToSeller: &order,
		PricePaidBySeller:   d("23.10"),
		PricePaidByBuyer:    d("0.000001"),
	}
	b, err := json.Marshal(it)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	_, hasID := raw["id"]
	assert.False(t, hasID, "unidentified item must not carry id")
	assert.Equal(t, "23.10", string(raw["pricePaidBySeller"]))
	assert.Equal(t, "0.000001", string(raw["pricePaidByBuyer"]))
	assert.Equal(t, "1", string(raw["itemStatus"]))
	assert.Equal(t, "null", string(raw["orderNumberToBuyer"]))
	for _, derived := range []string{"expenses", "revenues", "profit"} {
		_, ok := raw[derived]
		assert.False(t, ok, derived)
	}

	var back Item
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.PricePaidBySeller.Equal(it.PricePaidBySeller))
	assert.True(t, back.PricePaidByBuyer.Equal(it.PricePaidByBuyer))
	assert.Equal(t, "QR-1", *back.QRCode)
	assert.Nil(t, back.OrderNumberToBuyer)
}

// fullItemDoc — документ со всеми обязательными ключами; fees передаётся строкой.
const fullItemDoc = `{"id":7,"itemTypeUPC":1,"itemStatus":2,"pricePaidBySeller":23.00,"taxPaidBySeller":0,` +
	`"shippingCostToSeller":1,"shippingCostToBuyer":0,"fees":"3.00","otherExpenses":0,` +
	`"shippingPaidByBuyer":0,"pricePaidByBuyer":30}`

func TestItem_UnmarshalAcceptsStringsAndID(t *testing.T) {
	var it Item
	require.NoError(t, json.Unmarshal([]byte(fullItemDoc), &it))
	assert.Equal(t, int64(7), it.IDValue())
	assert.Equal(t, StatusSold, it.Status)
	assert.True(t, it.Fees.Equal(d("3")))
	assert.True(t, it.OtherExpenses.IsZero())
	assert.Nil(t, it.QRCode)
}

func TestItem_UnmarshalRequiresKeys(t *testing.T) {
	var full map[string]any
	require.NoError(t, json.Unmarshal([]byte(fullItemDoc), &full))

	required := []string{"itemTypeUPC", "itemStatus", "pricePaidBySeller", "taxPaidBySeller",
		"shippingCostToSeller", "shippingCostToBuyer", "fees", "otherExpenses",
		"shippingPaidByBuyer", "pricePaidByBuyer"}
	for _, key := range required {
		for _, mode := range []string{"missing", "null"} {
			doc := map[string]any{}
			for k, v := range full {
				doc[k] = v
			}
			if mode == "missing" {
				delete(doc, key)
			} else {
				doc[key] = nil
			}
			b, err := json.Marshal(doc)
			require.NoError(t, err)

			var it Item
			err = json.Unmarshal(b, &it)
			assert.ErrorIs(t, err, ErrMissingField, "%s %s", mode, key)
		}
	}

	var it Item
	assert.Error(t, json.Unmarshal([]byte(`{}`), &it))
	assert.Error(t, json.Unmarshal([]byte(`null`), &it))
	assert.Error(t, json.Unmarshal([]byte(`{"unexpected":true}`), &it))
}

func TestItemType_UnmarshalRequiresKeys(t *testing.T) {
	var typ ItemType
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Widget","upc":887961202007,"imageURL":"http://img"}`), &typ))
	assert.Equal(t, "Widget", typ.Name)
	assert.Equal(t, int64(887961202007), typ.UPC)
	require.NotNil(t, typ.ImageURL)

	for _, doc := range []string{`{}`, `null`, `{"upc":1}`, `{"name":"x"}`, `{"name":"x","upc":null}`, `{"unexpected":true}`} {
		var got ItemType
		assert.ErrorIs(t, json.Unmarshal([]byte(doc), &got), ErrMissingField, doc)
	}
}

func TestItem_UnmarshalRejectsUnknownStatus(t *testing.T) {
	var it Item
	assert.Error(t, json.Unmarshal([]byte(`{"itemTypeUPC":1,"itemStatus":9}`), &it))
}

func TestParseItemStatus(t *testing.T) {
	cases := map[string]ItemStatus{
		"Ordered":  StatusOrdered,
		"in stock": StatusInStock,
		"IN_STOCK": StatusInStock,
		"sold":     StatusSold,
		"2":        StatusSold,
	}
	for in, want := range cases {
		got, err := ParseItemStatus(in)
		if assert.NoError(t, err, in) {
			assert.Equal(t, want, got)
		}
	}
	_, err := ParseItemStatus("lost")
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.Equal(t, "In Stock", StatusInStock.String())
}

func TestValidate(t *testing.T) {
	assert.NoError(t, ItemType{Name: "Lea", UPC: 887961202007}.Validate())
	assert.ErrorIs(t, ItemType{Name: " ", UPC: 1}.Validate(), errs.ErrValidation)
	assert.ErrorIs(t, ItemType{Name: "x", UPC: -1}.Validate(), errs.ErrValidation)

	assert.NoError(t, NewItem(1).Validate())
	bad := NewItem(1)
	bad.Status = 5
	assert.ErrorIs(t, bad.Validate(), errs.ErrValidation)
}
