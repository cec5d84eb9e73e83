package profile

import "bookit/models"

// ProfileService manages each user's editable profile draft. The draft is
// client-local state held server-side for the session: it is never
// submitted or persisted anywhere.
type ProfileService interface {
	// Get returns the user's current draft, initializing it on first access.
	Get(userID string) models.ProfileDraft
	// Apply merges the given text fields into the draft. Unknown fields are
	// ignored.
	Apply(userID string, fields map[string]string) models.ProfileDraft
	// ToggleSchedule flips the open flag at "{day}_{slot}". A missing key is
	// treated as false, so toggling twice restores the original state.
	ToggleSchedule(userID, day, slot string) (models.ProfileDraft, error)
	// AddService appends an empty service entry.
	AddService(userID string) models.ProfileDraft
	// RemoveService deletes the service entry at the given index.
	RemoveService(userID string, index int) (models.ProfileDraft, error)
	// UpdateService sets the name or price of the service entry at index.
	UpdateService(userID string, index int, field, value string) (models.ProfileDraft, error)
	// AddPictures appends generated local references for the given uploads.
	AddPictures(userID string, filenames []string) models.ProfileDraft
}
