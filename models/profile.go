package models

// ScheduleDays are the day labels of the weekly schedule grid.
var ScheduleDays = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// ScheduleSlots are the fixed two-hour slot labels of the weekly schedule grid.
var ScheduleSlots = []string{
	"08:00 - 10:00",
	"10:00 - 12:00",
	"12:00 - 14:00",
	"14:00 - 16:00",
	"16:00 - 18:00",
	"18:00 - 20:00",
}

// ServiceEntry is one offered service with its listed price.
type ServiceEntry struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// ProfileDraft is the editable profile state. It is never persisted or
// submitted anywhere; the preview is a pure projection of this struct.
type ProfileDraft struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	Location string `json:"location"`

	Services []ServiceEntry `json:"services"`

	// Schedule keys are "{day}_{slot}" over ScheduleDays x ScheduleSlots.
	// A missing key means the slot is not open.
	Schedule map[string]bool `json:"schedule"`

	Pictures []string `json:"pictures"`
}
