package cli

import (
	"context"
	"strings"
)

// Share grants the listed users read access to the caller's note.
func (a *App) Share(ctx context.Context, to []string) error {
	if len(to) == 0 {
		printError("usage: share <user> [user...]")
		return nil
	}

	if err := a.service.Share(ctx, to); err != nil {
		printError(err.Error())
		return err
	}

	printSuccess("Note shared with", strings.Join(to, ", "))
	return nil
}

// Users prints all registered user ids.
func (a *App) Users(ctx context.Context) error {
	ids, err := a.service.Users(ctx)
	if err != nil {
		printError(err.Error())
		return err
	}

	for _, id := range ids {
		printlnFn(id)
	}
	return nil
}

// Me prints the caller's profile: id, who can read their note, and whose
// notes they can read.
func (a *App) Me(ctx context.Context) error {
	me, err := a.service.Me(ctx)
	if err != nil {
		printError(err.Error())
		return err
	}

	printlnFn("id:", me.ID)
	printlnFn("shared with:", strings.Join(me.NoteRecipients, ", "))
	printlnFn("can read:", strings.Join(me.AccessibleNotes, ", "))
	return nil
}
