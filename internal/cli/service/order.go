package service

import (
	"math/big"
	"strings"

	"github.com/shopspring/decimal"

	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/model"
)

// MaxOrderCount — предел числа экземпляров в одном заказе.
const MaxOrderCount = 10_000

// OrderTotals — суммы по всему заказу у продавца, которые делятся между экземплярами.
type OrderTotals struct {
	Price    decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
}

// PlanOrder строит count неидентифицированных экземпляров со статусом Ordered для одного
// заказа у продавца. Каждая сумма делится поровну; остаток раздаётся первым экземплярам
// по одной минимальной единице, так что сумма по экземплярам в точности равна итогу.
func PlanOrder(upc int64, count int, totals OrderTotals, orderNumberToSeller string) ([]model.Item, error) {
	if count <= 0 {
		return nil, errs.Validation("item count must be positive, got %d", count)
	}
	if count > MaxOrderCount {
		return nil, errs.Validation("item count %d exceeds the limit of %d per order", count, MaxOrderCount)
	}
	proto := model.NewItem(upc)
	if err := proto.Validate(); err != nil {
		return nil, err
	}
	if n := strings.TrimSpace(orderNumberToSeller); n != "" {
		proto.OrderNumberToSeller = &n
	}

	price := splitEven(totals.Price, count)
	tax := splitEven(totals.Tax, count)
	shipping := splitEven(totals.Shipping, count)

	items := make([]model.Item, count)
	for i := range items {
		it := proto
		if proto.OrderNumberToSeller != nil {
			n := *proto.OrderNumberToSeller
			it.OrderNumberToSeller = &n
		}
		it.PricePaidBySeller = price[i]
		it.TaxPaidBySeller = tax[i]
		it.ShippingCostToSeller = shipping[i]
		items[i] = it
	}
	return items, nil
}

// minSplitScale — доли считаются как минимум в центах.
const minSplitScale = 2

func splitEven(total decimal.Decimal, n int) []decimal.Decimal {
	scale := int32(minSplitScale)
	if exp := -total.Exponent(); exp > scale {
		scale = exp
	}
	units := total.Shift(scale).BigInt()

	q, r := new(big.Int).QuoRem(units, big.NewInt(int64(n)), new(big.Int))
	base := decimal.NewFromBigInt(q, -scale)
	step := decimal.New(int64(r.Sign()), -scale)
	extra := int(new(big.Int).Abs(r).Int64())

	out := make([]decimal.Decimal, n)
	for i := range out {
		if i < extra {
			out[i] = base.Add(step)
		} else {
			out[i] = base
		}
	}
	return out
}
