// Package services contains the application services of the stylist client:
// thin orchestration between the interactive flows and the API gateway.
package services

import (
	"context"
	"net/http"

	"github.com/dkozlov/stylist/internal/client/api"
)

// Gateway is the transport surface the services depend on. *api.Client
// satisfies it.
type Gateway interface {
	Do(ctx context.Context, method, endpoint string, opts api.Opts) (*http.Response, error)
	BaseURL() string
}
