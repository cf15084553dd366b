// Package models defines the durable data structures persisted by the
// server-side repositories.
package models

import "time"

// User is the per-user record: credentials, the opaque token issued at
// signup, the optional note payload, and the two sharing lists.
//
// Data distinguishes "no note saved yet" (nil, omitted from the stored form)
// from an empty note (pointer to ""); clearing a note removes the field
// entirely.
//
// NoteRecipients and AccessibleNotes are maintained pairwise symmetric: user
// B appears in A's NoteRecipients exactly when A appears in B's
// AccessibleNotes. Share requests are the only writer of these fields.
type User struct {
	ID              string    `json:"id"`
	HashedPassword  string    `json:"hashed_password"`
	Token           string    `json:"token"`
	Data            *string   `json:"data,omitempty"`
	NoteRecipients  []string  `json:"noteRecipients"`
	AccessibleNotes []string  `json:"accessibleNotes"`
	CreatedAt       time.Time `json:"created_at"`
}

// AddRecipient records that the user's note is shared with id, keeping the
// list duplicate-free. It reports whether the list changed.
func (u *User) AddRecipient(id string) bool {
	if contains(u.NoteRecipients, id) {
		return false
	}
	u.NoteRecipients = append(u.NoteRecipients, id)
	return true
}

// AddAccessible records that the user may read id's note, keeping the list
// duplicate-free. It reports whether the list changed.
func (u *User) AddAccessible(id string) bool {
	if contains(u.AccessibleNotes, id) {
		return false
	}
	u.AccessibleNotes = append(u.AccessibleNotes, id)
	return true
}

func contains(list []string, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}
