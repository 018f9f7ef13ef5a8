package cli

import (
	"context"
	"os"

	"github.com/dkozlov/stylist/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates, and on success enters the
// app view (header strip plus closet tab). Failures are reported to the
// user; the error is returned for callers that care.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	if _, err := a.auth.Login(ctx, username, password); err != nil {
		a.alertf("%v", err)
		return err
	}

	a.showApp(ctx)
	return nil
}

// Signup collects the signup form (name, username, email-or-phone, password,
// optional profile photo path) and creates the account. A successful signup
// logs the user straight in.
func (a *App) Signup(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return err
	}
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}
	emailOrPhone, err := getSimpleText(a.reader, "Enter email or phone", os.Stdout)
	if err != nil {
		return err
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer wipe(password)

	photoPath, err := getSimpleText(a.reader, "Profile photo path (optional, leave blank to skip)", os.Stdout)
	if err != nil {
		return err
	}

	in := services.SignupInput{
		Name:             name,
		Username:         username,
		EmailOrPhone:     emailOrPhone,
		Password:         password,
		ProfilePhotoPath: photoPath,
	}
	if _, err := a.auth.Signup(ctx, in); err != nil {
		a.alertf("%v", err)
		return err
	}

	a.showApp(ctx)
	return nil
}

// Logout destroys the session and returns to the auth screen.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		a.alertf("Logout failed: %v", err)
		return err
	}
	a.currentOutfit = nil
	a.showAuth()
	return nil
}

// wipe zeroes a sensitive byte slice.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
