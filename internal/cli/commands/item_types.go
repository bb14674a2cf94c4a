package commands

import (
	"context"
	"fmt"

	"InventoryManagement/internal/cli/bootstrap"
	"InventoryManagement/internal/cli/service"
	"InventoryManagement/internal/cli/view"
	"InventoryManagement/internal/config"
	"InventoryManagement/internal/model"
	"InventoryManagement/internal/money"
)

type typesCmd struct{}

func (typesCmd) Name() string        { return "types" }
func (typesCmd) Description() string { return "List item types" }
func (typesCmd) Usage() string       { return "types" }

func (typesCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		list, err := app.Client.ListItemTypes(ctx)
		if err != nil {
			return err
		}
		view.WriteItemTypes(Out, list)
		return nil
	})
}

type typeCmd struct{}

func (typeCmd) Name() string        { return "type" }
func (typeCmd) Description() string { return "Show an item type and its items" }
func (typeCmd) Usage() string       { return "type <upc>" }

func (typeCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	upc, err := parseUPC(args[0])
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		// тип и его экземпляры запрашиваются параллельно
		typeCh := service.Async(ctx, func(ctx context.Context) (model.ItemType, error) {
			return app.Client.GetItemType(ctx, upc)
		})
		itemsCh := service.Async(ctx, func(ctx context.Context) ([]model.Item, error) {
			return app.Client.ListItemsByType(ctx, upc)
		})
		t, items := <-typeCh, <-itemsCh
		if t.Err != nil {
			return t.Err
		}
		view.WriteItemType(Out, t.Value)
		if items.Err != nil {
			return items.Err
		}
		fmt.Fprintln(Out)
		view.WriteItems(Out, app.Codec, items.Value)
		return nil
	})
}

type typeAddCmd struct{}

func (typeAddCmd) Name() string        { return "type-add" }
func (typeAddCmd) Description() string { return "Create an item type" }
func (typeAddCmd) Usage() string       { return "type-add <upc> <name> [imageURL]" }

func (typeAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	t, err := itemTypeFromArgs(args)
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		if err := app.Client.CreateItemType(ctx, t); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Created item type %s\n", money.FormatIdentifier(t.UPC))
		return nil
	})
}

type typeEditCmd struct{}

func (typeEditCmd) Name() string        { return "type-edit" }
func (typeEditCmd) Description() string { return "Replace name and image of an item type" }
func (typeEditCmd) Usage() string       { return "type-edit <upc> <name> [imageURL]" }

func (typeEditCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	t, err := itemTypeFromArgs(args)
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		if err := app.Client.UpdateItemType(ctx, t.UPC, t); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Updated item type %s\n", money.FormatIdentifier(t.UPC))
		return nil
	})
}

type typeDeleteCmd struct{}

func (typeDeleteCmd) Name() string        { return "type-delete" }
func (typeDeleteCmd) Description() string { return "Delete an item type that has no items" }
func (typeDeleteCmd) Usage() string       { return "type-delete <upc>" }

func (typeDeleteCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	upc, err := parseUPC(args[0])
	if err != nil {
		return err
	}
	return withApp(ctx, cfg, true, func(app *bootstrap.App) error {
		if err := app.Client.DeleteItemType(ctx, upc); err != nil {
			return err
		}
		fmt.Fprintf(Out, "Deleted item type %s\n", money.FormatIdentifier(upc))
		return nil
	})
}

func itemTypeFromArgs(args []string) (model.ItemType, error) {
	if len(args) < 2 || len(args) > 3 {
		return model.ItemType{}, ErrUsage
	}
	upc, err := parseUPC(args[0])
	if err != nil {
		return model.ItemType{}, err
	}
	t := model.ItemType{UPC: upc, Name: args[1]}
	if len(args) == 3 {
		t.ImageURL = optionalText(args[2])
	}
	return t, nil
}

func init() {
	RegisterCmd(typesCmd{})
	RegisterCmd(typeCmd{})
	RegisterCmd(typeAddCmd{})
	RegisterCmd(typeEditCmd{})
	RegisterCmd(typeDeleteCmd{})
}
