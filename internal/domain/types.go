package domain

// SkillCategory groups skills on the portfolio page
type SkillCategory string

const (
	CategoryFrontend SkillCategory = "frontend"
	CategoryBackend  SkillCategory = "backend"
	CategoryMobile   SkillCategory = "mobile"
	CategoryDevops   SkillCategory = "devops"
	CategoryDesign   SkillCategory = "design"
	CategoryOther    SkillCategory = "other"
)

// SkillCategories lists every category in display order
var SkillCategories = []SkillCategory{
	CategoryFrontend,
	CategoryBackend,
	CategoryMobile,
	CategoryDevops,
	CategoryDesign,
	CategoryOther,
}

// ExperienceType distinguishes jobs from events and organizations
type ExperienceType string

const (
	ExperienceEvent        ExperienceType = "event"
	ExperienceOrganization ExperienceType = "organization"
	ExperienceWork         ExperienceType = "work"
)

// LanguageLevel is a spoken-language proficiency
type LanguageLevel string

const (
	LevelBasic        LanguageLevel = "basic"
	LevelIntermediate LanguageLevel = "intermediate"
	LevelAdvanced     LanguageLevel = "advanced"
	LevelNative       LanguageLevel = "native"
)

// PersonalInfo is the owner's profile and contact details
type PersonalInfo struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	LinkedIn        string `json:"linkedin"`
	GitHub          string `json:"github"`
	Location        string `json:"location"`
	Summary         string `json:"summary"`
	Avatar          string `json:"avatar,omitempty"`
	CVDownloadLink  string `json:"cvDownloadLink,omitempty"`
	CustomEmailLink string `json:"customEmailLink,omitempty"`
}

// Skill is a named competence. ProjectCount is derived from the projects.
type Skill struct {
	ID           string        `json:"id"`
	Name         string        `json:"name"`
	ProjectCount int           `json:"projectCount"`
	Category     SkillCategory `json:"category"`
}

// Project is a portfolio project
type Project struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Role         string   `json:"role"`
	Organization string   `json:"organization"`
	Duration     string   `json:"duration"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Achievements []string `json:"achievements"`
	Link         string   `json:"link,omitempty"`
	GitHub       string   `json:"github,omitempty"`
	Images       []string `json:"images,omitempty"`
	Featured     bool     `json:"featured,omitempty"`
}

// Experience is a job, event, or organization role
type Experience struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Organization     string         `json:"organization"`
	Duration         string         `json:"duration"`
	Description      string         `json:"description"`
	Responsibilities []string       `json:"responsibilities"`
	Type             ExperienceType `json:"type"`
	Image            string         `json:"image,omitempty"`
}

// Education is a degree or course of study
type Education struct {
	ID          string   `json:"id"`
	Institution string   `json:"institution"`
	Degree      string   `json:"degree"`
	Field       string   `json:"field"`
	Duration    string   `json:"duration"`
	GPA         string   `json:"gpa,omitempty"`
	Honors      []string `json:"honors,omitempty"`
}

// Achievement is an award or recognition
type Achievement struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Date         string `json:"date"`
	Organization string `json:"organization"`
	Category     string `json:"category"`
}

// Language is a spoken language
type Language struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Level LanguageLevel `json:"level"`
}

// Document is the whole portfolio, persisted as one unit
type Document struct {
	PersonalInfo PersonalInfo  `json:"personalInfo"`
	Skills       []Skill       `json:"skills"`
	Projects     []Project     `json:"projects"`
	Experiences  []Experience  `json:"experiences"`
	Education    []Education   `json:"education"`
	Achievements []Achievement `json:"achievements"`
	Languages    []Language    `json:"languages"`
}

// Clone returns a deep copy of the document
func (d Document) Clone() Document {
	out := d
	out.Skills = cloneSlice(d.Skills)
	out.Projects = cloneEach(d.Projects, Project.Clone)
	out.Experiences = cloneEach(d.Experiences, Experience.Clone)
	out.Education = cloneEach(d.Education, Education.Clone)
	out.Achievements = cloneSlice(d.Achievements)
	out.Languages = cloneSlice(d.Languages)
	return out
}

// Clone returns a deep copy of the project
func (p Project) Clone() Project {
	p.Technologies = cloneSlice(p.Technologies)
	p.Achievements = cloneSlice(p.Achievements)
	p.Images = cloneSlice(p.Images)
	return p
}

// Clone returns a deep copy of the experience
func (e Experience) Clone() Experience {
	e.Responsibilities = cloneSlice(e.Responsibilities)
	return e
}

// Clone returns a deep copy of the education entry
func (e Education) Clone() Education {
	e.Honors = cloneSlice(e.Honors)
	return e
}

// cloneSlice copies s, keeping nil as nil so optional fields round-trip
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func cloneEach[T any](s []T, clone func(T) T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	for i, item := range s {
		out[i] = clone(item)
	}
	return out
}
