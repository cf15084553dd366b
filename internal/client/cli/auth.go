package cli

import (
	"context"
	"os"

	"notekeeper/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// SignUp prompts for a user id and password and registers a new account.
// On success the session token returned by the server is kept in memory.
// The password byte slice is wiped before returning.
func (a *App) SignUp(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.service.SignUp(ctx, userID, string(password)); err != nil {
		printError(err.Error())
		return err
	}

	printSuccess("Account created, logged in as", userID)
	return nil
}

// Login prompts for credentials and authenticates against the server.
// The password byte slice is wiped before returning.
func (a *App) Login(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "Enter user id", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.service.Login(ctx, userID, string(password)); err != nil {
		printError(err.Error())
		return err
	}

	printSuccess("Logged in as", userID)
	return nil
}
