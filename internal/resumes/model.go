package resumes

import "time"

// PersonalInfo holds the contact header of a resume.
type PersonalInfo struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Summary  string `json:"summary"`
}

// ExperienceEntry is one job. ID is assigned by the editor and only meaningful locally.
type ExperienceEntry struct {
	ID          int64  `json:"id"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// EducationEntry is one degree or course.
type EducationEntry struct {
	ID          int64  `json:"id"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

// SkillEntry is one listed skill.
type SkillEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Document is the resume as submitted by the editor.
type Document struct {
	PersonalInfo PersonalInfo      `json:"personalInfo"`
	Experience   []ExperienceEntry `json:"experience"`
	Education    []EducationEntry  `json:"education"`
	Skills       []SkillEntry      `json:"skills"`
}

// StoredResume is a Document plus the identity assigned on save. It is never updated in place.
type StoredResume struct {
	Document
	ID      string    `json:"id"`
	SavedAt time.Time `json:"saved_at"`
}

// Summary is the list view of a stored resume.
type Summary struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	SavedAt time.Time `json:"saved_at"`
}

const unnamed = "Unnamed"

// clone deep-copies the entry slices and replaces nil slices with empty ones.
func (d Document) clone() Document {
	out := d
	out.Experience = append(make([]ExperienceEntry, 0, len(d.Experience)), d.Experience...)
	out.Education = append(make([]EducationEntry, 0, len(d.Education)), d.Education...)
	out.Skills = append(make([]SkillEntry, 0, len(d.Skills)), d.Skills...)
	return out
}

func (r StoredResume) clone() StoredResume {
	r.Document = r.Document.clone()
	return r
}

func (r StoredResume) summary() Summary {
	name := r.PersonalInfo.Name
	if name == "" {
		name = unnamed
	}
	return Summary{ID: r.ID, Name: name, SavedAt: r.SavedAt}
}
