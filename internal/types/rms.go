package types

// RMSProfile is the standardized Resume Metadata Standard shape emitted
// alongside the internal Profile. It is a pure reshaping of merged data;
// no additional extraction happens when building it.
type RMSProfile struct {
	Personal     RMSPersonal     `json:"personal"`
	Professional RMSProfessional `json:"professional"`
}

// RMSName splits the candidate name into parts.
type RMSName struct {
	First  string `json:"first"`
	Middle string `json:"middle,omitempty"`
	Last   string `json:"last"`
}

// RMSContact carries the standardized contact channels.
type RMSContact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Website  string `json:"website,omitempty"`
}

// RMSPersonal groups identity and contact data.
type RMSPersonal struct {
	Name     RMSName    `json:"name"`
	Contact  RMSContact `json:"contact"`
	Location string     `json:"location,omitempty"`
	Summary  string     `json:"summary,omitempty"`
}

// RMSDates is the canonical date range used by all RMS entries.
type RMSDates struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Current bool   `json:"current"`
}

// RMSExperience is a standardized work history entry.
type RMSExperience struct {
	Company      string   `json:"company"`
	Position     string   `json:"position"`
	Location     string   `json:"location,omitempty"`
	Dates        RMSDates `json:"dates"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// RMSEducation is a standardized education entry.
type RMSEducation struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy,omitempty"`
	Location     string   `json:"location,omitempty"`
	Dates        RMSDates `json:"dates"`
	GPA          string   `json:"gpa,omitempty"`
}

// RMSProject is a standardized project entry.
type RMSProject struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	Dates        RMSDates `json:"dates"`
	Achievements []string `json:"achievements,omitempty"`
	URL          string   `json:"url,omitempty"`
}

// RMSCertification is a standardized certification entry.
type RMSCertification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer,omitempty"`
	Date   string `json:"date,omitempty"`
}

// RMSProfessional groups the professional history sections.
type RMSProfessional struct {
	Experience     []RMSExperience     `json:"experience"`
	Education      []RMSEducation      `json:"education"`
	Projects       []RMSProject        `json:"projects"`
	Certifications []RMSCertification  `json:"certifications"`
	Skills         map[string][]string `json:"skills"`
}
