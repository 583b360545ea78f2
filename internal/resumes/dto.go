package resumes

// saveRequest mirrors Document with pointers so absent fields can be told apart from zero values.
type saveRequest struct {
	PersonalInfo *PersonalInfo     `json:"personalInfo" binding:"required"`
	Experience   []experienceInput `json:"experience" binding:"required,dive"`
	Education    []educationInput  `json:"education" binding:"required,dive"`
	Skills       []skillInput      `json:"skills" binding:"required,dive"`
}

type experienceInput struct {
	ID          *int64 `json:"id" binding:"required"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type educationInput struct {
	ID          *int64 `json:"id" binding:"required"`
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Year        string `json:"year"`
	Description string `json:"description"`
}

type skillInput struct {
	ID   *int64 `json:"id" binding:"required"`
	Name string `json:"name"`
}

func (r saveRequest) toDocument() Document {
	doc := Document{
		PersonalInfo: *r.PersonalInfo,
		Experience:   make([]ExperienceEntry, 0, len(r.Experience)),
		Education:    make([]EducationEntry, 0, len(r.Education)),
		Skills:       make([]SkillEntry, 0, len(r.Skills)),
	}
	for _, e := range r.Experience {
		doc.Experience = append(doc.Experience, ExperienceEntry{
			ID:          *e.ID,
			Company:     e.Company,
			Position:    e.Position,
			Duration:    e.Duration,
			Description: e.Description,
		})
	}
	for _, e := range r.Education {
		doc.Education = append(doc.Education, EducationEntry{
			ID:          *e.ID,
			Institution: e.Institution,
			Degree:      e.Degree,
			Year:        e.Year,
			Description: e.Description,
		})
	}
	for _, s := range r.Skills {
		doc.Skills = append(doc.Skills, SkillEntry{ID: *s.ID, Name: s.Name})
	}
	return doc
}
