package models

// Contact is a single address-book record owned by exactly one user.
// The JSON field names are part of the wire contract with the SPA client
// and must not be renamed.
type Contact struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"user_id"`
	Ime           string `json:"ime"`
	Prezime       string `json:"prezime"`
	Email         string `json:"email"`
	Telefon       string `json:"telefon"`
	Adresa        string `json:"adresa"`
	Linkedin      string `json:"linkedin"`
	Skype         string `json:"skype"`
	Instagram     string `json:"instagram"`
	DatumRodjenja string `json:"datumRodjenja"`
	Jmbg          string `json:"jmbg"`
}
