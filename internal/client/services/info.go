package services

import (
	"context"
	"errors"
	"net/http"

	"github.com/dkozlov/stylist/internal/client/api"
	"github.com/dkozlov/stylist/internal/client/models"
)

// InfoService serves the header strip: current weather and the seasonal
// color palette. Both are best-effort; callers log failures and move on.
type InfoService interface {
	Weather(ctx context.Context) (models.Weather, error)
	SeasonColors(ctx context.Context) ([]string, error)
}

type infoService struct {
	gw Gateway
}

func NewInfoService(gw Gateway) InfoService {
	return &infoService{gw: gw}
}

func (i *infoService) Weather(ctx context.Context) (models.Weather, error) {
	resp, err := i.gw.Do(ctx, http.MethodGet, "/weather", api.Opts{})
	if err != nil {
		return models.Weather{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return models.Weather{}, errors.New(api.ErrorMessage(resp, "Failed to load weather"))
	}

	var w models.Weather
	if err := api.DecodeJSON(resp, &w); err != nil {
		return models.Weather{}, err
	}
	return w, nil
}

func (i *infoService) SeasonColors(ctx context.Context) ([]string, error) {
	resp, err := i.gw.Do(ctx, http.MethodGet, "/season-colors", api.Opts{})
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(api.ErrorMessage(resp, "Failed to load season colors"))
	}

	var sc models.SeasonColors
	if err := api.DecodeJSON(resp, &sc); err != nil {
		return nil, err
	}
	return sc.Colors, nil
}
