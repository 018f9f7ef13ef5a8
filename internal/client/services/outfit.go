package services

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/dkozlov/stylist/internal/client/api"
	"github.com/dkozlov/stylist/internal/client/models"
	"github.com/dkozlov/stylist/internal/common"
)

// OutfitService generates outfits and manages the saved-outfits list.
type OutfitService interface {
	Generate(ctx context.Context, filters models.GenerateFilters) (models.Outfit, error)
	Save(ctx context.Context, outfit models.Outfit, filters models.GenerateFilters) error
	List(ctx context.Context) ([]models.SavedOutfit, error)
	Delete(ctx context.Context, id string) error
	Rename(ctx context.Context, id, name string) (string, error)
}

type outfitService struct {
	gw Gateway
}

func NewOutfitService(gw Gateway) OutfitService {
	return &outfitService{gw: gw}
}

// Generate requests an outfit constrained by the given filters; blank
// filters are omitted from the query. An empty or missing outfit in the
// response is reported as common.ErrNoMatch, not a failure.
func (o *outfitService) Generate(ctx context.Context, filters models.GenerateFilters) (models.Outfit, error) {
	q := url.Values{}
	if filters.Formality != "" {
		q.Set("formality", filters.Formality)
	}
	if filters.Season != "" {
		q.Set("season", filters.Season)
	}
	if filters.Color != "" {
		q.Set("color", filters.Color)
	}

	resp, err := o.gw.Do(ctx, http.MethodGet, "/outfits/generate", api.Opts{Query: q})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(api.ErrorMessage(resp, "Failed to generate outfit"))
	}

	var result struct {
		Outfit models.Outfit `json:"outfit"`
	}
	if err := api.DecodeJSON(resp, &result); err != nil {
		return nil, err
	}
	if len(result.Outfit) == 0 {
		return nil, common.ErrNoMatch
	}
	return result.Outfit, nil
}

// saveOutfitRequest is the persistence payload: item ids in slot order plus
// the filters that produced the outfit.
type saveOutfitRequest struct {
	Items   []string               `json:"items"`
	Filters models.GenerateFilters `json:"filters"`
}

// Save persists the outfit; the server assigns its identity.
func (o *outfitService) Save(ctx context.Context, outfit models.Outfit, filters models.GenerateFilters) error {
	payload := saveOutfitRequest{Items: outfit.ItemIDs(), Filters: filters}

	resp, err := o.gw.Do(ctx, http.MethodPost, "/outfits/save", api.Opts{JSON: payload})
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(api.ErrorMessage(resp, "Failed to save outfit"))
	}
	resp.Body.Close()
	return nil
}

// List fetches the saved outfits.
func (o *outfitService) List(ctx context.Context) ([]models.SavedOutfit, error) {
	resp, err := o.gw.Do(ctx, http.MethodGet, "/outfits", api.Opts{})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(api.ErrorMessage(resp, "Failed to load outfits"))
	}

	var outfits []models.SavedOutfit
	if err := api.DecodeJSON(resp, &outfits); err != nil {
		return nil, err
	}
	return outfits, nil
}

// Delete removes one saved outfit by id.
func (o *outfitService) Delete(ctx context.Context, id string) error {
	resp, err := o.gw.Do(ctx, http.MethodDelete, "/outfits/"+id, api.Opts{})
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(api.ErrorMessage(resp, "Failed to delete outfit"))
	}
	resp.Body.Close()
	return nil
}

// Rename updates a saved outfit's name. The name is trimmed first; an
// all-whitespace name becomes the untitled default. The persisted name is
// returned.
func (o *outfitService) Rename(ctx context.Context, id, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = models.UntitledOutfitName
	}

	payload := map[string]string{"name": name}

	resp, err := o.gw.Do(ctx, http.MethodPatch, "/outfits/"+id, api.Opts{JSON: payload})
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errors.New(api.ErrorMessage(resp, "Failed to rename outfit"))
	}
	resp.Body.Close()
	return name, nil
}
