package profile

import (
	"fmt"
	"sync"

	"bookit/models"

	"github.com/google/uuid"
)

// InMemoryProfileService holds each user's profile draft in memory.
type InMemoryProfileService struct {
	mu     sync.Mutex
	byUser map[string]*models.ProfileDraft
}

// NewInMemoryProfileService creates an empty draft store.
func NewInMemoryProfileService() *InMemoryProfileService {
	return &InMemoryProfileService{
		byUser: make(map[string]*models.ProfileDraft),
	}
}

// draftLocked returns the user's draft, initializing it on first access.
// A fresh draft starts with one blank service row, matching the edit form.
func (s *InMemoryProfileService) draftLocked(userID string) *models.ProfileDraft {
	d, ok := s.byUser[userID]
	if !ok {
		d = &models.ProfileDraft{
			Services: []models.ServiceEntry{{}},
			Schedule: make(map[string]bool),
			Pictures: []string{},
		}
		s.byUser[userID] = d
	}
	return d
}

func copyDraft(d *models.ProfileDraft) models.ProfileDraft {
	out := *d
	out.Services = append([]models.ServiceEntry(nil), d.Services...)
	out.Schedule = make(map[string]bool, len(d.Schedule))
	for k, v := range d.Schedule {
		out.Schedule[k] = v
	}
	out.Pictures = append([]string(nil), d.Pictures...)
	return out
}

// Get returns the user's current draft.
func (s *InMemoryProfileService) Get(userID string) models.ProfileDraft {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDraft(s.draftLocked(userID))
}

// Apply merges text fields into the draft.
func (s *InMemoryProfileService) Apply(userID string, fields map[string]string) models.ProfileDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draftLocked(userID)
	for name, value := range fields {
		switch name {
		case "name":
			d.Name = value
		case "email":
			d.Email = value
		case "phone":
			d.Phone = value
		case "bio":
			d.Bio = value
		case "location":
			d.Location = value
		}
	}
	return copyDraft(d)
}

// validScheduleKey reports whether day and slot belong to the fixed grid.
func validScheduleKey(day, slot string) bool {
	dayOK := false
	for _, d := range models.ScheduleDays {
		if d == day {
			dayOK = true
			break
		}
	}
	if !dayOK {
		return false
	}
	for _, t := range models.ScheduleSlots {
		if t == slot {
			return true
		}
	}
	return false
}

// ToggleSchedule flips the open flag at the composite "{day}_{slot}" key.
func (s *InMemoryProfileService) ToggleSchedule(userID, day, slot string) (models.ProfileDraft, error) {
	if !validScheduleKey(day, slot) {
		return models.ProfileDraft{}, fmt.Errorf("unknown schedule slot %q %q", day, slot)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draftLocked(userID)
	key := day + "_" + slot
	d.Schedule[key] = !d.Schedule[key]
	return copyDraft(d), nil
}

// AddService appends an empty service entry.
func (s *InMemoryProfileService) AddService(userID string) models.ProfileDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draftLocked(userID)
	d.Services = append(d.Services, models.ServiceEntry{})
	return copyDraft(d)
}

// RemoveService deletes the service entry at index.
func (s *InMemoryProfileService) RemoveService(userID string, index int) (models.ProfileDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draftLocked(userID)
	if index < 0 || index >= len(d.Services) {
		return models.ProfileDraft{}, fmt.Errorf("service index %d out of range", index)
	}
	d.Services = append(d.Services[:index], d.Services[index+1:]...)
	return copyDraft(d), nil
}

// UpdateService sets one field of the service entry at index.
func (s *InMemoryProfileService) UpdateService(userID string, index int, field, value string) (models.ProfileDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draftLocked(userID)
	if index < 0 || index >= len(d.Services) {
		return models.ProfileDraft{}, fmt.Errorf("service index %d out of range", index)
	}
	switch field {
	case "name":
		d.Services[index].Name = value
	case "price":
		d.Services[index].Price = value
	default:
		return models.ProfileDraft{}, fmt.Errorf("unknown service field %q", field)
	}
	return copyDraft(d), nil
}

// AddPictures appends a generated local reference per upload. References are
// ephemeral; nothing is stored durably.
func (s *InMemoryProfileService) AddPictures(userID string, filenames []string) models.ProfileDraft {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.draftLocked(userID)
	for range filenames {
		d.Pictures = append(d.Pictures, "blob:local/"+uuid.New().String())
	}
	return copyDraft(d)
}
