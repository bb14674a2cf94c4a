package commands

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/errs"
	"InventoryManagement/internal/model"
	"InventoryManagement/internal/money"
)

// editableMoney — денежные поля экземпляра по именам, принимаемым item-edit.
func editableMoney(it *model.Item) map[string]*decimal.Decimal {
	return map[string]*decimal.Decimal{
		"price-paid":     &it.PricePaidBySeller,
		"tax-paid":       &it.TaxPaidBySeller,
		"shipping-in":    &it.ShippingCostToSeller,
		"shipping-out":   &it.ShippingCostToBuyer,
		"fees":           &it.Fees,
		"other":          &it.OtherExpenses,
		"buyer-shipping": &it.ShippingPaidByBuyer,
		"sale-price":     &it.PricePaidByBuyer,
	}
}

// editableFields возвращает все имена полей item-edit в алфавитном порядке.
func editableFields() []string {
	names := []string{"status", "qr", "order-seller", "order-buyer"}
	for k := range editableMoney(&model.Item{}) {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// applyField меняет одно поле экземпляра. Пустое значение очищает текстовое поле
// и обнуляет денежное.
func applyField(codec *money.Codec, it *model.Item, field, value string) error {
	field = strings.ToLower(strings.TrimSpace(field))
	switch field {
	case "status":
		st, err := model.ParseItemStatus(value)
		if err != nil {
			return err
		}
		it.Status = st
		return nil
	case "qr":
		it.QRCode = optionalText(value)
		return nil
	case "order-seller":
		it.OrderNumberToSeller = optionalText(value)
		return nil
	case "order-buyer":
		it.OrderNumberToBuyer = optionalText(value)
		return nil
	}
	f, ok := editableMoney(it)[field]
	if !ok {
		return errs.Validation("unknown field %q, expected one of: %s", field, strings.Join(editableFields(), ", "))
	}
	d, err := codec.Parse(value)
	if err != nil {
		return err
	}
	*f = d
	return nil
}

type itemEditCmd struct{}

func (itemEditCmd) Name() string { return "item-edit" }
func (itemEditCmd) Description() string {
	return "Change one field of an item: " + strings.Join(editableFields(), "|")
}
func (itemEditCmd) Usage() string { return "item-edit <id> <field> <value>" }

func (itemEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 3 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		it, err := app.Client.GetItem(ctx, id)
		if err != nil {
			return err
		}
		if err := applyField(app.Codec, &it, args[1], args[2]); err != nil {
			return err
		}
		// PUT заменяет документ целиком
		if err := app.Client.UpdateItem(ctx, id, it); err != nil {
			return err
		}
		fmt.Fprintln(Out, "Updated:")
		fmt.Fprintf(Out, "  id:     %d\n", id)
		fmt.Fprintf(Out, "  %s: %s\n", strings.ToLower(args[1]), args[2])
		fmt.Fprintf(Out, "  profit: %s\n", app.Codec.Format(it.Profit()))
		return nil
	})
}

func init() { RegisterCmd(itemEditCmd{}) }
