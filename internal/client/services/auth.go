package services

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dkozlov/stylist/internal/client/api"
	"github.com/dkozlov/stylist/internal/client/models"
	"github.com/dkozlov/stylist/internal/client/session"
)

// SignupInput carries the signup form. EmailOrPhone is routed to the email
// field when it contains '@', to the phone field otherwise. The optional
// ProfilePhotoPath names a local image file.
type SignupInput struct {
	Name             string
	Username         string
	EmailOrPhone     string
	Password         []byte
	ProfilePhotoPath string
}

// AuthService defines the authentication operations of the CLI.
//
// Contract:
//   - Login/Signup: authenticate against the server and persist the session.
//   - Logout: destroy the persisted and in-memory session.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (session.Session, error)
	Signup(ctx context.Context, in SignupInput) (session.Session, error)
	Logout(ctx context.Context) error
}

type authService struct {
	gw    Gateway
	store *session.Store
}

// NewAuthService constructs an AuthService bound to the gateway and the
// session store.
func NewAuthService(gw Gateway, store *session.Store) AuthService {
	return &authService{gw: gw, store: store}
}

// authResponse is the payload of the auth endpoints.
type authResponse struct {
	AccessToken string            `json:"access_token"`
	User        models.UserRecord `json:"user"`
}

// Login authenticates with username and password and saves the returned
// session. On an application error the server's detail is surfaced.
func (a *authService) Login(ctx context.Context, username string, password []byte) (session.Session, error) {
	body := api.NewMultipartBody().
		WriteField("username", username).
		WriteField("password", string(password))

	resp, err := a.gw.Do(ctx, http.MethodPost, "/auth/login", api.Opts{Multipart: body})
	if err != nil {
		return session.Session{}, err
	}
	return a.finishAuth(ctx, resp, "Login failed")
}

// Signup creates an account and saves the returned session.
func (a *authService) Signup(ctx context.Context, in SignupInput) (session.Session, error) {
	body := api.NewMultipartBody().
		WriteField("name", in.Name).
		WriteField("username", in.Username).
		WriteField("password", string(in.Password))

	if strings.Contains(in.EmailOrPhone, "@") {
		body.WriteField("email", in.EmailOrPhone)
	} else {
		body.WriteField("phone", in.EmailOrPhone)
	}
	if in.ProfilePhotoPath != "" {
		body.WriteFile("profile_photo", in.ProfilePhotoPath)
	}

	resp, err := a.gw.Do(ctx, http.MethodPost, "/auth/signup", api.Opts{Multipart: body})
	if err != nil {
		return session.Session{}, err
	}
	return a.finishAuth(ctx, resp, "Signup failed")
}

func (a *authService) finishAuth(ctx context.Context, resp *http.Response, fallback string) (session.Session, error) {
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return session.Session{}, errors.New(api.ErrorMessage(resp, fallback))
	}

	var payload authResponse
	if err := api.DecodeJSON(resp, &payload); err != nil {
		return session.Session{}, err
	}

	sess := session.Session{Token: payload.AccessToken, User: payload.User}
	if err := a.store.Save(ctx, sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}

// Logout clears the persisted session and the in-memory mirror.
func (a *authService) Logout(ctx context.Context) error {
	return a.store.Clear(ctx)
}
