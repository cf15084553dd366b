package cli

import (
	"context"
	"os"
)

// PutNote prompts for a note body and uploads it, replacing any existing
// payload.
func (a *App) PutNote(ctx context.Context) error {
	data, err := GetMultiline(a.reader, "Enter note text", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.service.SaveNote(ctx, data); err != nil {
		printError(err.Error())
		return err
	}

	printSuccess("Note saved")
	return nil
}

// ShowNote fetches and prints the note of targetID. When targetID is empty,
// the caller's own note is shown.
func (a *App) ShowNote(ctx context.Context, targetID string) error {
	if targetID == "" {
		targetID = a.service.Session.UserID
	}

	data, err := a.service.Note(ctx, targetID)
	if err != nil {
		printError(err.Error())
		return err
	}

	printlnFn(data)
	return nil
}

// DeleteNote removes the caller's note payload.
func (a *App) DeleteNote(ctx context.Context) error {
	if err := a.service.DeleteNote(ctx); err != nil {
		printError(err.Error())
		return err
	}

	printSuccess("Note deleted")
	return nil
}
