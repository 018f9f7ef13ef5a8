package cli

import (
	"fmt"
	"strings"

	"github.com/dkozlov/stylist/internal/client/models"
)

// renderTabs draws the navigation bar with exactly one active tab.
func (a *App) renderTabs() {
	names := []Tab{TabCloset, TabOutfits, TabProfile}
	parts := make([]string, 0, len(names))
	for _, tab := range names {
		label := tabLabel(tab)
		if tab == a.tab {
			label = "[" + label + "]"
		}
		parts = append(parts, label)
	}
	fmt.Fprintln(a.out, strings.Join(parts, "  "))
}

func tabLabel(t Tab) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// renderHeaderStrip draws the weather line and the season color swatches.
func (a *App) renderHeaderStrip() {
	if a.weather != nil {
		icon := a.weather.Icon
		if icon == "" {
			icon = "☀️"
		}
		location := a.weather.Location
		if location == "" {
			location = "Los Angeles"
		}
		fmt.Fprintf(a.out, "%s %.0f°F %s\n", icon, a.weather.Temperature, location)
	}
	if len(a.seasonColors) > 0 {
		fmt.Fprintf(a.out, "Season colors: %s\n", strings.Join(a.seasonColors, " "))
	}
}

// renderCloset draws the item grid, or the empty state when there is
// nothing to show.
func (a *App) renderCloset(items []models.ClosetItem) {
	if len(items) == 0 {
		fmt.Fprintln(a.out, "Your closet is empty. Add your first item!")
		return
	}
	for _, item := range items {
		fmt.Fprintf(a.out, "- %s  %s • %s  [id %s]\n", item.Type, item.Slot, item.ColorPrimary, item.ID)
		if item.ImageURL != "" {
			fmt.Fprintf(a.out, "    %s\n", item.ImageURL)
		}
		if details := item.Details(); details != "" {
			fmt.Fprintf(a.out, "    %s\n", details)
		}
	}
}

// outfitLines builds the outfit view in document order: one line per display
// region in the fixed slot order, then the item cards. With the combined
// dress policy the dress occupies both the top and bottom regions; either
// way a present dress gets its own card after the ordered slots.
func outfitLines(outfit models.Outfit, policy DressRenderPolicy) []string {
	dress, hasDress := outfit[models.SlotDress]

	var lines []string
	for _, slot := range models.SlotOrder {
		item, ok := outfit[slot]
		if hasDress && policy == DressCombined &&
			(slot == models.SlotTop || slot == models.SlotBottom) {
			item, ok = dress, true
		}
		if ok {
			lines = append(lines, fmt.Sprintf("%-9s %s (%s)", slot+":", item.Type, item.ColorPrimary))
		} else {
			lines = append(lines, fmt.Sprintf("%-9s —", slot+":"))
		}
	}

	for _, slot := range models.SlotOrder {
		if item, ok := outfit[slot]; ok {
			lines = append(lines, cardLine(item))
		}
	}
	if hasDress {
		lines = append(lines, cardLine(dress))
	}
	return lines
}

func cardLine(item models.ClosetItem) string {
	return fmt.Sprintf("- %s  %s • %s", item.Type, item.Slot, item.ColorPrimary)
}

// displayOutfit renders the current outfit view. Pure function of the
// outfit value and the dress policy, so repeated calls draw identical
// contents.
func (a *App) displayOutfit(outfit models.Outfit) {
	fmt.Fprintln(a.out, "Your outfit:")
	for _, line := range outfitLines(outfit, a.dressRender) {
		fmt.Fprintln(a.out, line)
	}
	fmt.Fprintln(a.out, "('regen' to try again, 'saveoutfit' to keep it, 'back' to close)")
}

// renderOutfitsList draws the saved outfits, or the empty state.
func (a *App) renderOutfitsList(outfits []models.SavedOutfit) {
	if len(outfits) == 0 {
		fmt.Fprintln(a.out, "No saved outfits yet. Generate one from your closet!")
		return
	}
	for _, o := range outfits {
		fmt.Fprintf(a.out, "%s  [id %s]\n", o.DisplayName(), o.ID)

		thumbs := make([]string, 0, len(o.Items))
		for _, item := range o.Items {
			thumbs = append(thumbs, item.Type)
		}
		if len(thumbs) > 0 {
			fmt.Fprintf(a.out, "    %s\n", strings.Join(thumbs, " | "))
		}
	}
}

// renderProfile draws the profile panel from the in-memory user record.
// No network call.
func (a *App) renderProfile() {
	sess, ok := a.store.Current()
	if !ok {
		return
	}
	u := sess.User

	fmt.Fprintln(a.out, u.Name)
	fmt.Fprintf(a.out, "@%s\n", u.Username)
	fmt.Fprintln(a.out, u.Contact())
	if u.ProfilePhotoURL != "" {
		fmt.Fprintln(a.out, u.ProfilePhotoURL)
	} else {
		fmt.Fprintln(a.out, "(no profile photo)")
	}
}
