package models

// Location is one of the shop's premises.
type Location struct {
	ID       string        `json:"id"`
	Name     LocalizedText `json:"name"`
	Address  LocalizedText `json:"address"`
	Schedule LocalizedText `json:"schedule"`
	Phone    LocalizedText `json:"phone"`
	Note     LocalizedText `json:"note"`
}

// LocationView is a Location rendered in one locale.
type LocationView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Schedule string `json:"schedule"`
	Phone    string `json:"phone"`
	Note     string `json:"note"`
}

// Localize renders the location for lang.
func (l Location) Localize(lang Language) LocationView {
	return LocationView{
		ID:       l.ID,
		Name:     l.Name.In(lang),
		Address:  l.Address.In(lang),
		Schedule: l.Schedule.In(lang),
		Phone:    l.Phone.In(lang),
		Note:     l.Note.In(lang),
	}
}

// AboutCopy is the owner's introduction shown next to the locations.
type AboutCopy struct {
	Title   string `json:"title"`
	Intro   string `json:"intro"`
	Middle  string `json:"middle"`
	Closing string `json:"closing"`
}

// LocationsPage is the body of GET /api/locations.
type LocationsPage struct {
	Locations []LocationView `json:"locations"`
	About     AboutCopy      `json:"about"`
}
