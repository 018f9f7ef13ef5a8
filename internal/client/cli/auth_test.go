package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/dkozlov/stylist/internal/client/models"
	"github.com/dkozlov/stylist/internal/client/services"
	"github.com/dkozlov/stylist/internal/client/session"
	"github.com/dkozlov/stylist/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPassword(t *testing.T, pw string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer) ([]byte, error) { return []byte(pw), nil }
	t.Cleanup(func() { getPassword = orig })
}

type fakeAuth struct {
	loginUser string
	loginPass string
	loginErr  error

	signupIn  services.SignupInput
	signupErr error

	logoutCalls int
	logoutErr   error
}

func (f *fakeAuth) Login(ctx context.Context, username string, password []byte) (session.Session, error) {
	f.loginUser = username
	f.loginPass = string(password)
	if f.loginErr != nil {
		return session.Session{}, f.loginErr
	}
	return session.Session{Token: "t1", User: models.UserRecord{Username: username}}, nil
}

func (f *fakeAuth) Signup(ctx context.Context, in services.SignupInput) (session.Session, error) {
	f.signupIn = in
	if f.signupErr != nil {
		return session.Session{}, f.signupErr
	}
	return session.Session{Token: "t1", User: models.UserRecord{Username: in.Username}}, nil
}

func (f *fakeAuth) Logout(ctx context.Context) error {
	f.logoutCalls++
	return f.logoutErr
}

type fakeInfo struct {
	weather models.Weather
	colors  []string
	err     error
}

func (f *fakeInfo) Weather(ctx context.Context) (models.Weather, error) {
	return f.weather, f.err
}

func (f *fakeInfo) SeasonColors(ctx context.Context) ([]string, error) {
	return f.colors, f.err
}

func newAuthApp(auth *fakeAuth) (*App, *bytes.Buffer) {
	var buf bytes.Buffer
	a := &App{
		log:    logging.NewDefault(io.Discard),
		auth:   auth,
		closet: &fakeCloset{},
		info:   &fakeInfo{weather: models.Weather{Temperature: 72}, colors: []string{"coral"}},
		reader: bufio.NewReader(strings.NewReader("")),
		out:    &buf,
	}
	return a, &buf
}

func TestLogin_SuccessEntersApp(t *testing.T) {
	stubInputs(t, "maria")
	stubPassword(t, "secret")

	auth := &fakeAuth{}
	a, buf := newAuthApp(auth)

	err := a.Login(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "maria", auth.loginUser)
	assert.Equal(t, "secret", auth.loginPass)
	assert.True(t, a.loggedIn)
	assert.Equal(t, TabCloset, a.tab)
	assert.Contains(t, buf.String(), "72°F")
}

func TestLogin_FailureStaysOnAuth(t *testing.T) {
	stubInputs(t, "maria")
	stubPassword(t, "wrong")

	auth := &fakeAuth{loginErr: errors.New("Incorrect username or password")}
	a, buf := newAuthApp(auth)

	err := a.Login(context.Background())
	require.Error(t, err)

	assert.False(t, a.loggedIn)
	assert.Contains(t, buf.String(), "Incorrect username or password")
}

func TestSignup_CollectsForm(t *testing.T) {
	stubInputs(t, "Maria Diaz", "maria", "maria@example.com", "avatar.jpg")
	stubPassword(t, "secret")

	auth := &fakeAuth{}
	a, _ := newAuthApp(auth)

	err := a.Signup(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Maria Diaz", auth.signupIn.Name)
	assert.Equal(t, "maria", auth.signupIn.Username)
	assert.Equal(t, "maria@example.com", auth.signupIn.EmailOrPhone)
	assert.Equal(t, "secret", string(auth.signupIn.Password))
	assert.Equal(t, "avatar.jpg", auth.signupIn.ProfilePhotoPath)
	assert.True(t, a.loggedIn)
}

func TestLogout_ClearsOutfitState(t *testing.T) {
	auth := &fakeAuth{}
	a, buf := newAuthApp(auth)
	a.loggedIn = true
	a.currentOutfit = models.Outfit{models.SlotTop: {ID: "t1"}}
	a.outfitViewOpen = true

	err := a.Logout(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, auth.logoutCalls)
	assert.False(t, a.loggedIn)
	assert.False(t, a.outfitViewOpen)
	assert.Nil(t, a.currentOutfit)
	assert.Contains(t, buf.String(), "Please log in or sign up.")
}
