package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dkozlov/stylist/internal/client/api"
	"github.com/dkozlov/stylist/internal/client/models"
)

// UploadMode distinguishes the two photo upload flows.
type UploadMode string

const (
	// UploadSingle adds one clothing item from one photo.
	UploadSingle UploadMode = "single"
	// UploadOutfitPhoto extracts multiple items from one outfit photo.
	UploadOutfitPhoto UploadMode = "outfit"
)

// UploadResult reports how many items an upload produced.
type UploadResult struct {
	Mode  UploadMode
	Total int
}

// ClosetService lists, uploads and deletes closet items.
type ClosetService interface {
	List(ctx context.Context, slot string) ([]models.ClosetItem, error)
	Upload(ctx context.Context, path string, mode UploadMode) (UploadResult, error)
	Delete(ctx context.Context, id string) error
}

type closetService struct {
	gw Gateway
}

func NewClosetService(gw Gateway) ClosetService {
	return &closetService{gw: gw}
}

// List fetches the closet items, optionally filtered by slot.
func (c *closetService) List(ctx context.Context, slot string) ([]models.ClosetItem, error) {
	var q url.Values
	if slot != "" {
		q = url.Values{"slot": []string{slot}}
	}

	resp, err := c.gw.Do(ctx, http.MethodGet, "/items", api.Opts{Query: q})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(api.ErrorMessage(resp, "Failed to load closet"))
	}

	var items []models.ClosetItem
	if err := api.DecodeJSON(resp, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Upload submits one photo as multipart field "file". In single mode one
// item is expected back; in outfit mode the response carries the count of
// extracted items.
func (c *closetService) Upload(ctx context.Context, path string, mode UploadMode) (UploadResult, error) {
	endpoint := "/items"
	if mode == UploadOutfitPhoto {
		endpoint = "/items/outfit"
	}

	body := api.NewMultipartBody().WriteFile("file", path)

	resp, err := c.gw.Do(ctx, http.MethodPost, endpoint, api.Opts{Multipart: body})
	if err != nil {
		return UploadResult{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return UploadResult{}, errors.New(api.ErrorMessage(resp, "Upload failed"))
	}

	if mode == UploadSingle {
		var item models.ClosetItem
		if err := api.DecodeJSON(resp, &item); err != nil {
			return UploadResult{}, err
		}
		return UploadResult{Mode: mode, Total: 1}, nil
	}

	var result struct {
		Total int `json:"total"`
	}
	if err := api.DecodeJSON(resp, &result); err != nil {
		return UploadResult{}, err
	}
	return UploadResult{Mode: mode, Total: result.Total}, nil
}

// Delete removes one item by id. The server's error detail is surfaced on
// failure.
func (c *closetService) Delete(ctx context.Context, id string) error {
	resp, err := c.gw.Do(ctx, http.MethodDelete, "/items/"+id, api.Opts{})
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New(api.ErrorMessage(resp, fmt.Sprintf("Failed to delete item %s", id)))
	}
	resp.Body.Close()
	return nil
}
