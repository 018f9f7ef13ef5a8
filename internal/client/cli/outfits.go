package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dkozlov/stylist/internal/client/models"
)

// ShowOutfits activates the saved-outfits tab.
func (a *App) ShowOutfits(ctx context.Context) error {
	a.switchTab(ctx, TabOutfits)
	return nil
}

// ShowProfile activates the profile tab.
func (a *App) ShowProfile(ctx context.Context) error {
	a.switchTab(ctx, TabProfile)
	return nil
}

// loadOutfits fetches the saved outfits, caches them for rename lookups and
// renders the list.
func (a *App) loadOutfits(ctx context.Context) {
	outfits, err := a.outfits.List(ctx)
	if err != nil {
		a.log.Error(ctx, "loading outfits", "error", err)
		return
	}
	a.savedOutfits = outfits
	a.renderOutfitsList(outfits)
}

// RemoveOutfit deletes one saved outfit after an explicit confirmation.
func (a *App) RemoveOutfit(ctx context.Context, id string) error {
	if !confirmFn(a.reader, "Are you sure you want to delete this outfit?", os.Stdout) {
		return nil
	}

	if err := a.outfits.Delete(ctx, id); err != nil {
		a.alertf("%v", err)
		return err
	}
	a.loadOutfits(ctx)
	return nil
}

// RenameOutfit edits a saved outfit's name inline. With an empty name the
// user is prompted; cancelling the prompt (Ctrl-D on an empty line) restores
// the original label and sends nothing. A committed name goes to the server
// and the list is reloaded; on failure the original label is restored.
func (a *App) RenameOutfit(ctx context.Context, id, name string) error {
	current, ok := a.findSavedOutfit(id)
	if !ok {
		a.alertf("No saved outfit with id %s.", id)
		return nil
	}

	if name == "" {
		prompt := fmt.Sprintf("New name for %q (Ctrl-D to cancel)", current.DisplayName())
		line, cancelled, err := GetLineOrCancel(a.reader, prompt, os.Stdout)
		if err != nil {
			return err
		}
		if cancelled {
			fmt.Fprintln(a.out, current.DisplayName())
			return nil
		}
		name = line
	}

	persisted, err := a.outfits.Rename(ctx, id, name)
	if err != nil {
		fmt.Fprintln(a.out, current.DisplayName())
		a.alertf("%v", err)
		return err
	}

	a.log.Debug(ctx, "renamed outfit", "id", id, "name", persisted)
	a.loadOutfits(ctx)
	return nil
}

func (a *App) findSavedOutfit(id string) (saved models.SavedOutfit, ok bool) {
	for _, o := range a.savedOutfits {
		if o.ID == id {
			return o, true
		}
	}
	return saved, false
}
