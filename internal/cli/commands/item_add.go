package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/cli/service"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/money"
)

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Record a seller order: count items, order totals split evenly"
}
func (itemAddCmd) Usage() string {
	return "item-add [--order=<orderNumber>] <upc> <count> [price] [tax] [shipping]"
}

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("item-add", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	order := fs.String("order", "", "order number at the seller")
	if err := fs.Parse(args); err != nil {
		return ErrUsage
	}
	rest := fs.Args()
	if len(rest) < 2 || len(rest) > 5 {
		return ErrUsage
	}
	upc, err := parseUPC(rest[0])
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(rest[1])
	if err != nil || count <= 0 {
		return ErrUsage
	}

	codec, err := money.NewCodec(cfg.Locale)
	if err != nil {
		return err
	}
	var totals service.OrderTotals
	for i, dst := range []*decimal.Decimal{&totals.Price, &totals.Tax, &totals.Shipping} {
		if len(rest) <= i+2 {
			break
		}
		if *dst, err = codec.Parse(rest[i+2]); err != nil {
			return err
		}
	}
	items, err := service.PlanOrder(upc, count, totals, *order)
	if err != nil {
		return err
	}

	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		ids, err := app.Client.CreateItems(ctx, items)
		if err != nil {
			return err
		}
		fmt.Fprintf(Out, "Created %d item(s) of %s\n", len(ids), money.FormatIdentifier(upc))
		for i, id := range ids {
			it := items[i]
			fmt.Fprintf(Out, "- %d  price=%s  tax=%s  shipping=%s\n", id,
				app.Codec.Format(it.PricePaidBySeller),
				app.Codec.Format(it.TaxPaidBySeller),
				app.Codec.Format(it.ShippingCostToSeller))
		}
		return nil
	})
}

func init() { RegisterCmd(itemAddCmd{}) }
