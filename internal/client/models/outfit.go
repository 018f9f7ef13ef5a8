package models

// Slot is a fixed anatomical category positioning an item within an outfit.
type Slot string

const (
	SlotOuterwear Slot = "outerwear"
	SlotTop       Slot = "top"
	SlotBottom    Slot = "bottom"
	SlotShoes     Slot = "shoes"
	SlotAccessory Slot = "accessory"
	SlotDress     Slot = "dress"
)

// SlotOrder is the fixed rendering order for outfit display regions.
// Dress is handled separately after the ordered slots.
var SlotOrder = []Slot{SlotOuterwear, SlotTop, SlotBottom, SlotShoes, SlotAccessory}

// Outfit is a freshly generated, transient slot-to-item selection. At most
// one item occupies a slot; a dress conceptually substitutes for both top
// and bottom.
type Outfit map[Slot]ClosetItem

// ItemIDs returns the ids of all items in the outfit in SlotOrder, with the
// dress item (if any) last. Deterministic regardless of map iteration order.
func (o Outfit) ItemIDs() []string {
	ids := make([]string, 0, len(o))
	for _, slot := range SlotOrder {
		if item, ok := o[slot]; ok {
			ids = append(ids, item.ID)
		}
	}
	if item, ok := o[SlotDress]; ok {
		ids = append(ids, item.ID)
	}
	return ids
}

// GenerateFilters are the optional outfit-generation constraints. Blank
// fields are omitted from the request.
type GenerateFilters struct {
	Formality string `json:"formality,omitempty"`
	Season    string `json:"season,omitempty"`
	Color     string `json:"color,omitempty"`
}

// SavedOutfit is a persisted outfit. The client mutates only the name.
type SavedOutfit struct {
	ID        string           `json:"id"`
	Name      string           `json:"name,omitempty"`
	Items     []ClosetItem     `json:"items"`
	Filters   *GenerateFilters `json:"filters,omitempty"`
	CreatedAt string           `json:"created_at,omitempty"`
}

// UntitledOutfitName is the display and persistence default for outfits
// without a name.
const UntitledOutfitName = "Untitled Outfit"

// DisplayName returns the outfit name or the untitled default.
func (s SavedOutfit) DisplayName() string {
	if s.Name == "" {
		return UntitledOutfitName
	}
	return s.Name
}

// Weather is the header-strip weather summary.
type Weather struct {
	Temperature float64 `json:"temperature"`
	Icon        string  `json:"icon,omitempty"`
	Location    string  `json:"location,omitempty"`
}

// SeasonColors is the current seasonal color palette.
type SeasonColors struct {
	Colors []string `json:"colors"`
}
