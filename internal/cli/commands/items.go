package commands

import (
	"context"
	"fmt"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/cli/view"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/model"
)

type itemsCmd struct{}

func (itemsCmd) Name() string        { return "items" }
func (itemsCmd) Description() string { return "List items, optionally of one type" }
func (itemsCmd) Usage() string       { return "items [upc]" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) > 1 {
		return ErrUsage
	}
	var upc *int64
	if len(args) == 1 {
		n, err := parseUPC(args[0])
		if err != nil {
			return err
		}
		upc = &n
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		var (
			list []model.Item
			err  error
		)
		if upc != nil {
			list, err = app.Client.ListItemsByType(ctx, *upc)
		} else {
			list, err = app.Client.ListItems(ctx)
		}
		if err != nil {
			return err
		}
		view.WriteItems(Out, app.Codec, list)
		return nil
	})
}

type itemCmd struct{}

func (itemCmd) Name() string        { return "item" }
func (itemCmd) Description() string { return "Show an item with expenses, revenues and profit" }
func (itemCmd) Usage() string       { return "item <id>" }

func (itemCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
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
		view.WriteItem(Out, app.Codec, it)
		return nil
	})
}

type itemQRCmd struct{}

func (itemQRCmd) Name() string        { return "item-qr" }
func (itemQRCmd) Description() string { return "Find an item by its QR code" }
func (itemQRCmd) Usage() string       { return "item-qr <qrCode>" }

func (itemQRCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		it, err := app.Client.GetItemByQR(ctx, args[0])
		if err != nil {
			return err
		}
		view.WriteItem(Out, app.Codec, it)
		return nil
	})
}

type itemCheckInCmd struct{}

func (itemCheckInCmd) Name() string { return "item-checkin" }
func (itemCheckInCmd) Description() string {
	return "Check in an ordered item: set its scanned QR code and mark it In Stock"
}
func (itemCheckInCmd) Usage() string { return "item-checkin <id> <qrCode>" }

func (itemCheckInCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		it, err := app.Client.CheckIn(ctx, id, args[1])
		if err != nil {
			return err
		}
		fmt.Fprintln(Out, "Checked in:")
		view.WriteItem(Out, app.Codec, it)
		return nil
	})
}

type orderCmd struct{}

func (orderCmd) Name() string        { return "order" }
func (orderCmd) Description() string { return "List items of a seller or buyer order" }
func (orderCmd) Usage() string       { return "order <orderNumber>" }

func (orderCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		list, err := app.Client.ListItemsByOrder(ctx, args[0])
		if err != nil {
			return err
		}
		view.WriteItems(Out, app.Codec, list)
		return nil
	})
}

type itemDeleteCmd struct{}

func (itemDeleteCmd) Name() string        { return "item-delete" }
func (itemDeleteCmd) Description() string { return "Delete an item" }
func (itemDeleteCmd) Usage() string       { return "item-delete <id>" }

func (itemDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		if err := app.Client.DeleteItem(ctx, id); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Deleted item %d\n", id)
		return nil
	})
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemCmd{})
	RegisterCmd(itemQRCmd{})
	RegisterCmd(itemCheckInCmd{})
	RegisterCmd(orderCmd{})
	RegisterCmd(itemDeleteCmd{})
}
