package domain

// Patches are partial records: a nil field leaves the target unchanged.

// PersonalInfoPatch is a partial PersonalInfo
type PersonalInfoPatch struct {
	Name            *string `json:"name,omitempty"`
	Title           *string `json:"title,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	LinkedIn        *string `json:"linkedin,omitempty"`
	GitHub          *string `json:"github,omitempty"`
	Location        *string `json:"location,omitempty"`
	Summary         *string `json:"summary,omitempty"`
	Avatar          *string `json:"avatar,omitempty"`
	CVDownloadLink  *string `json:"cvDownloadLink,omitempty"`
	CustomEmailLink *string `json:"customEmailLink,omitempty"`
}

// Apply merges the patch onto info
func (p PersonalInfoPatch) Apply(info PersonalInfo) PersonalInfo {
	set(&info.Name, p.Name)
	set(&info.Title, p.Title)
	set(&info.Phone, p.Phone)
	set(&info.Email, p.Email)
	set(&info.LinkedIn, p.LinkedIn)
	set(&info.GitHub, p.GitHub)
	set(&info.Location, p.Location)
	set(&info.Summary, p.Summary)
	set(&info.Avatar, p.Avatar)
	set(&info.CVDownloadLink, p.CVDownloadLink)
	set(&info.CustomEmailLink, p.CustomEmailLink)
	return info
}

// DocumentPatch is a partial Document. Collections are replaced wholesale.
type DocumentPatch struct {
	PersonalInfo *PersonalInfoPatch `json:"personalInfo,omitempty"`
	Skills       *[]Skill           `json:"skills,omitempty"`
	Projects     *[]Project         `json:"projects,omitempty"`
	Experiences  *[]Experience      `json:"experiences,omitempty"`
	Education    *[]Education       `json:"education,omitempty"`
	Achievements *[]Achievement     `json:"achievements,omitempty"`
	Languages    *[]Language        `json:"languages,omitempty"`
}

// Apply merges the patch onto doc. Derived counts are not touched.
func (p DocumentPatch) Apply(doc Document) Document {
	if p.PersonalInfo != nil {
		doc.PersonalInfo = p.PersonalInfo.Apply(doc.PersonalInfo)
	}
	if p.Skills != nil {
		doc.Skills = cloneSlice(*p.Skills)
	}
	if p.Projects != nil {
		doc.Projects = cloneEach(*p.Projects, Project.Clone)
	}
	if p.Experiences != nil {
		doc.Experiences = cloneEach(*p.Experiences, Experience.Clone)
	}
	if p.Education != nil {
		doc.Education = cloneEach(*p.Education, Education.Clone)
	}
	if p.Achievements != nil {
		doc.Achievements = cloneSlice(*p.Achievements)
	}
	if p.Languages != nil {
		doc.Languages = cloneSlice(*p.Languages)
	}
	return doc
}

// TouchesDerived reports whether applying the patch can change skill counts
func (p DocumentPatch) TouchesDerived() bool {
	return p.Skills != nil || p.Projects != nil
}

// ProjectPatch is a partial Project
type ProjectPatch struct {
	Title        *string   `json:"title,omitempty"`
	Role         *string   `json:"role,omitempty"`
	Organization *string   `json:"organization,omitempty"`
	Duration     *string   `json:"duration,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Technologies *[]string `json:"technologies,omitempty"`
	Achievements *[]string `json:"achievements,omitempty"`
	Link         *string   `json:"link,omitempty"`
	GitHub       *string   `json:"github,omitempty"`
	Images       *[]string `json:"images,omitempty"`
	Featured     *bool     `json:"featured,omitempty"`
}

// Apply merges the patch onto p. The id is never changed.
func (pp ProjectPatch) Apply(p Project) Project {
	p = p.Clone()
	set(&p.Title, pp.Title)
	set(&p.Role, pp.Role)
	set(&p.Organization, pp.Organization)
	set(&p.Duration, pp.Duration)
	set(&p.Description, pp.Description)
	setList(&p.Technologies, pp.Technologies)
	setList(&p.Achievements, pp.Achievements)
	set(&p.Link, pp.Link)
	set(&p.GitHub, pp.GitHub)
	setList(&p.Images, pp.Images)
	set(&p.Featured, pp.Featured)
	return p
}

// ExperiencePatch is a partial Experience
type ExperiencePatch struct {
	Title            *string         `json:"title,omitempty"`
	Organization     *string         `json:"organization,omitempty"`
	Duration         *string         `json:"duration,omitempty"`
	Description      *string         `json:"description,omitempty"`
	Responsibilities *[]string       `json:"responsibilities,omitempty"`
	Type             *ExperienceType `json:"type,omitempty"`
	Image            *string         `json:"image,omitempty"`
}

// Apply merges the patch onto e
func (ep ExperiencePatch) Apply(e Experience) Experience {
	e = e.Clone()
	set(&e.Title, ep.Title)
	set(&e.Organization, ep.Organization)
	set(&e.Duration, ep.Duration)
	set(&e.Description, ep.Description)
	setList(&e.Responsibilities, ep.Responsibilities)
	set(&e.Type, ep.Type)
	set(&e.Image, ep.Image)
	return e
}

// SkillPatch is a partial Skill. There is no ProjectCount: it is always derived.
type SkillPatch struct {
	Name     *string        `json:"name,omitempty"`
	Category *SkillCategory `json:"category,omitempty"`
}

// Apply merges the patch onto s
func (sp SkillPatch) Apply(s Skill) Skill {
	set(&s.Name, sp.Name)
	set(&s.Category, sp.Category)
	return s
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

func setList[T any](dst *[]T, v *[]T) {
	if v != nil {
		*dst = cloneSlice(*v)
	}
}
