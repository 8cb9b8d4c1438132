package domain

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pkg/errors"
)

// MaxProjectImages is the most images a project carousel shows
const MaxProjectImages = 5

// ErrInvalid marks input rejected by validation
var ErrInvalid = errors.New("invalid input")

// ValidationError wraps the field errors reported by a Validate method
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// Is lets callers match any validation failure with errors.Is(err, ErrInvalid)
func (e *ValidationError) Is(target error) bool { return target == ErrInvalid }

func invalid(err error) error {
	if err == nil {
		return nil
	}
	return &ValidationError{Err: err}
}

// Validate checks a project before it enters the document
func (p Project) Validate() error {
	return invalid(validation.ValidateStruct(&p,
		validation.Field(&p.Title, validation.Required.Error("title is required")),
		validation.Field(&p.Description, validation.Required.Error("description is required")),
		validation.Field(&p.Images, imageRules...),
		validation.Field(&p.Link, is.URL),
		validation.Field(&p.GitHub, is.URL),
	))
}

var imageRules = []validation.Rule{
	validation.Length(0, MaxProjectImages).Error("a project has at most 5 images"),
	validation.Each(validation.Required),
}

var experienceTypes = []interface{}{ExperienceEvent, ExperienceOrganization, ExperienceWork}

// Validate checks the fields the patch sets. Fields it leaves alone are not
// looked at, so records saved by older versions stay editable.
func (pp ProjectPatch) Validate() error {
	return invalid(validation.ValidateStruct(&pp,
		validation.Field(&pp.Title, validation.NilOrNotEmpty.Error("title is required")),
		validation.Field(&pp.Description, validation.NilOrNotEmpty.Error("description is required")),
		validation.Field(&pp.Images, validation.By(func(interface{}) error {
			if pp.Images == nil {
				return nil
			}
			return validation.Validate(*pp.Images, imageRules...)
		})),
		validation.Field(&pp.Link, is.URL),
		validation.Field(&pp.GitHub, is.URL),
	))
}

// Validate checks a skill before it enters the document
func (s Skill) Validate() error {
	return invalid(validation.ValidateStruct(&s,
		validation.Field(&s.Name, validation.Required.Error("name is required")),
		validation.Field(&s.Category, validation.Required, validation.In(toAny(SkillCategories)...)),
	))
}

// Validate checks an experience before it enters the document
func (e Experience) Validate() error {
	return invalid(validation.ValidateStruct(&e,
		validation.Field(&e.Title, validation.Required.Error("title is required")),
		validation.Field(&e.Organization, validation.Required.Error("organization is required")),
		validation.Field(&e.Type, validation.Required, validation.In(experienceTypes...)),
	))
}

// Validate checks the fields the patch sets
func (sp SkillPatch) Validate() error {
	return invalid(validation.ValidateStruct(&sp,
		validation.Field(&sp.Name, validation.NilOrNotEmpty.Error("name is required")),
		validation.Field(&sp.Category, validation.NilOrNotEmpty, validation.In(toAny(SkillCategories)...)),
	))
}

// Validate checks the fields the patch sets
func (ep ExperiencePatch) Validate() error {
	return invalid(validation.ValidateStruct(&ep,
		validation.Field(&ep.Title, validation.NilOrNotEmpty.Error("title is required")),
		validation.Field(&ep.Organization, validation.NilOrNotEmpty.Error("organization is required")),
		validation.Field(&ep.Type, validation.NilOrNotEmpty, validation.In(experienceTypes...)),
	))
}

// Normalize trims text lists and drops blank entries, the way the editors
// clean their drafts before saving.
func (p Project) Normalize() Project {
	p = p.Clone()
	p.Title = strings.TrimSpace(p.Title)
	p.Technologies = compact(p.Technologies)
	p.Achievements = compact(p.Achievements)
	p.Images = optional(compact(p.Images))
	p.Link = strings.TrimSpace(p.Link)
	p.GitHub = strings.TrimSpace(p.GitHub)
	return p
}

// Normalize trims the skill name
func (s Skill) Normalize() Skill {
	s.Name = strings.TrimSpace(s.Name)
	return s
}

// Normalize drops blank responsibilities
func (e Experience) Normalize() Experience {
	e.Title = strings.TrimSpace(e.Title)
	e.Responsibilities = compact(e.Responsibilities)
	return e
}

// Normalize drops blank honors
func (e Education) Normalize() Education {
	e = e.Clone()
	e.Institution = strings.TrimSpace(e.Institution)
	e.Honors = optional(compact(e.Honors))
	return e
}

// Normalize trims the fields the patch sets and drops blank list entries
func (pp ProjectPatch) Normalize() ProjectPatch {
	pp.Title = trimmed(pp.Title)
	pp.Technologies = compacted(pp.Technologies)
	pp.Achievements = compacted(pp.Achievements)
	if pp.Images != nil {
		images := optional(compact(*pp.Images))
		pp.Images = &images
	}
	pp.Link = trimmed(pp.Link)
	pp.GitHub = trimmed(pp.GitHub)
	return pp
}

// Normalize trims the name if set
func (sp SkillPatch) Normalize() SkillPatch {
	sp.Name = trimmed(sp.Name)
	return sp
}

// Normalize trims the title and drops blank responsibilities
func (ep ExperiencePatch) Normalize() ExperiencePatch {
	ep.Title = trimmed(ep.Title)
	ep.Responsibilities = compacted(ep.Responsibilities)
	return ep
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func compacted(items *[]string) *[]string {
	if items == nil {
		return nil
	}
	v := compact(*items)
	return &v
}

// optional maps an empty list to nil. Optional lists are omitted when
// persisted and would otherwise not survive a reload.
func optional(items []string) []string {
	if len(items) == 0 {
		return nil
	}
	return items
}

// compact trims each entry and drops empty ones. The result is never nil.
func compact(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func toAny[T any](items []T) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
