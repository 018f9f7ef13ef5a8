package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkozlov/stylist/internal/client/services"
)

// confirmFn is a test seam for the destructive-action confirmation prompt.
var confirmFn = Confirm

// ShowCloset activates the closet tab with an optional slot filter.
func (a *App) ShowCloset(ctx context.Context, slot string) error {
	a.closetFilter = slot
	a.switchTab(ctx, TabCloset)
	return nil
}

// loadCloset fetches and renders the item grid. Reloads are guarded so that
// a slow, superseded fetch never overwrites a newer one.
func (a *App) loadCloset(ctx context.Context, slot string) {
	ticket := a.closetGuard.Begin()

	items, err := a.closet.List(ctx, slot)
	if !a.closetGuard.Current(ticket) {
		return
	}
	if err != nil {
		a.log.Error(ctx, "loading closet", "error", err)
		return
	}
	a.renderCloset(items)
}

// AddItem uploads one photo: mode single adds one item, mode outfit extracts
// several. Progress is shown while the upload runs; success reloads the
// closet and reports the mode-specific message.
func (a *App) AddItem(ctx context.Context, path string, mode services.UploadMode) error {
	fmt.Fprintln(a.out, "Uploading...")

	result, err := a.closet.Upload(ctx, path, mode)
	if err != nil {
		a.alertf("%v", err)
		return err
	}

	a.loadCloset(ctx, a.closetFilter)

	if result.Mode == services.UploadSingle {
		a.alertf("Item added successfully!")
	} else {
		a.alertf("%d items added successfully!", result.Total)
	}
	return nil
}

// RemoveItem deletes one closet item after an explicit confirmation. The
// request is never sent when the user declines.
func (a *App) RemoveItem(ctx context.Context, id string) error {
	if !confirmFn(a.reader, "Are you sure you want to delete this item?", os.Stdout) {
		return nil
	}

	if err := a.closet.Delete(ctx, id); err != nil {
		a.alertf("%v", err)
		return err
	}
	a.loadCloset(ctx, a.closetFilter)
	return nil
}
