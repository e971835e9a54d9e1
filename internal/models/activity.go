package models

// Activity is a single event record of the association. Dates are ISO 8601
// (YYYY-MM-DD) so lexicographic comparison matches chronological order;
// Time is display-only and never used for ordering.
type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Location    string `json:"location"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ActivityInput carries the caller-supplied fields of a new activity.
// The id is always assigned by the service.
type ActivityInput struct {
	Name        string `json:"name" validate:"required"`
	Date        string `json:"date" validate:"required|date"`
	Time        string `json:"time" validate:"required"`
	Location    string `json:"location" validate:"required"`
	Description string `json:"description" validate:"required"`
	ImageURL    string `json:"imageUrl"`
}

// ActivityPatch is a partial update. Nil fields are left untouched; there is
// no way to patch the id.
type ActivityPatch struct {
	Name        *string `json:"name"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`
}

// Apply merges the non-nil patch fields over the activity in place.
func (a *Activity) Apply(p ActivityPatch) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Date != nil {
		a.Date = *p.Date
	}
	if p.Time != nil {
		a.Time = *p.Time
	}
	if p.Location != nil {
		a.Location = *p.Location
	}
	if p.Description != nil {
		a.Description = *p.Description
	}
	if p.ImageURL != nil {
		a.ImageURL = *p.ImageURL
	}
}

// IsUpcoming reports whether the activity falls on or after the given day
// (ISO date string). Same-day events count as upcoming.
func (a *Activity) IsUpcoming(today string) bool {
	return a.Date >= today
}

func NewActivity(id string, in ActivityInput) Activity {
	return Activity{
		ID:          id,
		Name:        in.Name,
		Date:        in.Date,
		Time:        in.Time,
		Location:    in.Location,
		Description: in.Description,
		ImageURL:    in.ImageURL,
	}
}
