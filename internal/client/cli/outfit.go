package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dkozlov/stylist/internal/client/models"
	"github.com/dkozlov/stylist/internal/common"
)

const noMatchMessage = "No items match your filters. Try different filters or add more items to your closet."

// Discover prompts for the generation filters (any of which may be left
// blank) and requests an outfit. A no-match answer is reported without
// touching the current outfit view; success replaces it.
func (a *App) Discover(ctx context.Context) error {
	formality, err := getSimpleText(a.reader, "Formality (blank for any)", os.Stdout)
	if err != nil {
		return err
	}
	season, err := getSimpleText(a.reader, "Season (blank for any)", os.Stdout)
	if err != nil {
		return err
	}
	color, err := getSimpleText(a.reader, "Color (blank for any)", os.Stdout)
	if err != nil {
		return err
	}

	filters := models.GenerateFilters{Formality: formality, Season: season, Color: color}

	outfit, err := a.outfits.Generate(ctx, filters)
	if err != nil {
		if errors.Is(err, common.ErrNoMatch) {
			a.alertf(noMatchMessage)
			return nil
		}
		a.alertf("%v", err)
		return err
	}

	a.currentOutfit = outfit
	a.currentFilters = filters
	a.outfitViewOpen = true
	a.displayOutfit(outfit)
	return nil
}

// Regenerate re-runs generation with the filters of the open outfit view.
// Responses are guarded so that a slow, superseded request never replaces a
// newer outfit.
func (a *App) Regenerate(ctx context.Context) error {
	if !a.outfitViewOpen {
		a.alertf("No outfit is open. Use 'discover' first.")
		return nil
	}

	ticket := a.generateGuard.Begin()

	outfit, err := a.outfits.Generate(ctx, a.currentFilters)
	if !a.generateGuard.Current(ticket) {
		return nil
	}
	if err != nil {
		if errors.Is(err, common.ErrNoMatch) {
			a.alertf(noMatchMessage)
			return nil
		}
		a.alertf("%v", err)
		return err
	}

	a.currentOutfit = outfit
	a.displayOutfit(outfit)
	return nil
}

// SaveOutfit persists the outfit on screen together with the filters that
// produced it, then closes the view.
func (a *App) SaveOutfit(ctx context.Context) error {
	if !a.outfitViewOpen || len(a.currentOutfit) == 0 {
		a.alertf("No outfit is open. Use 'discover' first.")
		return nil
	}

	if err := a.outfits.Save(ctx, a.currentOutfit, a.currentFilters); err != nil {
		a.alertf("%v", err)
		return err
	}

	a.alertf("Outfit saved successfully!")
	a.CloseOutfit()
	return nil
}

// CloseOutfit dismisses the outfit view and drops the generated outfit.
func (a *App) CloseOutfit() {
	a.outfitViewOpen = false
	a.currentOutfit = nil
}
