package models

import "testing"

func TestClosetItem_Details(t *testing.T) {
	tests := []struct {
		name string
		item ClosetItem
		want string
	}{
		{
			name: "only material is informative",
			item: ClosetItem{
				Pattern:   "solid",
				Material:  "cotton",
				Fit:       "regular",
				Formality: "casual",
				Season:    []string{},
				Features:  []string{},
			},
			want: "cotton",
		},
		{
			name: "all defaults excluded",
			item: ClosetItem{Pattern: "unknown", Material: "unknown", Fit: "unknown", Formality: "unknown"},
			want: "",
		},
		{
			name: "everything informative",
			item: ClosetItem{
				Pattern:   "striped",
				Material:  "wool",
				Fit:       "slim",
				Formality: "formal",
				Season:    []string{"fall", "winter"},
				Features:  []string{"pockets"},
			},
			want: "striped • wool • slim • formal • fall/winter • pockets",
		},
		{
			name: "empty item",
			item: ClosetItem{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Details(); got != tt.want {
				t.Errorf("Details() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUserRecord_Contact(t *testing.T) {
	u := UserRecord{Email: "a@b.c", Phone: "555"}
	if got := u.Contact(); got != "a@b.c" {
		t.Errorf("email should win: %q", got)
	}
	u.Email = ""
	if got := u.Contact(); got != "555" {
		t.Errorf("phone fallback: %q", got)
	}
	u.Phone = ""
	if got := u.Contact(); got != "No contact info" {
		t.Errorf("placeholder fallback: %q", got)
	}
}

func TestOutfit_ItemIDs_FixedOrder(t *testing.T) {
	o := Outfit{
		SlotShoes:     ClosetItem{ID: "s"},
		SlotTop:       ClosetItem{ID: "t"},
		SlotDress:     ClosetItem{ID: "d"},
		SlotOuterwear: ClosetItem{ID: "o"},
	}

	want := []string{"o", "t", "s", "d"}
	got := o.ItemIDs()
	if len(got) != len(want) {
		t.Fatalf("ItemIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ItemIDs() = %v, want %v", got, want)
		}
	}
}

func TestSavedOutfit_DisplayName(t *testing.T) {
	if got := (SavedOutfit{}).DisplayName(); got != UntitledOutfitName {
		t.Errorf("DisplayName() = %q", got)
	}
	if got := (SavedOutfit{Name: "Beach day"}).DisplayName(); got != "Beach day" {
		t.Errorf("DisplayName() = %q", got)
	}
}
