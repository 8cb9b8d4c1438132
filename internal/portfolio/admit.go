package portfolio

import (
	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pkg/errors"
)

// admitLocked checks the collections of doc that patch replaces: records are
// normalized and validated the way single additions are, and records with an
// empty or repeated id get a fresh one. Callers hold s.mu.
func (s *Store) admitLocked(doc domain.Document, patch domain.DocumentPatch) (domain.Document, error) {
	var err error
	if patch.Skills != nil {
		doc.Skills, err = admit(doc.Skills, "skill", domain.Skill.Normalize, domain.Skill.Validate,
			func(r *domain.Skill) *string { return &r.ID }, s.newID)
		if err != nil {
			return doc, err
		}
	}
	if patch.Projects != nil {
		doc.Projects, err = admit(doc.Projects, "project", domain.Project.Normalize, domain.Project.Validate,
			func(r *domain.Project) *string { return &r.ID }, s.newID)
		if err != nil {
			return doc, err
		}
	}
	if patch.Experiences != nil {
		doc.Experiences, err = admit(doc.Experiences, "experience", domain.Experience.Normalize, domain.Experience.Validate,
			func(r *domain.Experience) *string { return &r.ID }, s.newID)
		if err != nil {
			return doc, err
		}
	}
	if patch.Education != nil {
		doc.Education, _ = admit(doc.Education, "education", domain.Education.Normalize, nil,
			func(r *domain.Education) *string { return &r.ID }, s.newID)
	}
	if patch.Achievements != nil {
		doc.Achievements, _ = admit(doc.Achievements, "achievement", nil, nil,
			func(r *domain.Achievement) *string { return &r.ID }, s.newID)
	}
	if patch.Languages != nil {
		doc.Languages, _ = admit(doc.Languages, "language", nil, nil,
			func(r *domain.Language) *string { return &r.ID }, s.newID)
	}
	return doc, nil
}

func admit[T any](
	items []T,
	kind string,
	normalize func(T) T,
	validate func(T) error,
	idOf func(*T) *string,
	newID func() string,
) ([]T, error) {
	if items == nil {
		return nil, nil
	}

	given := make(map[string]bool, len(items))
	for i := range items {
		given[*idOf(&items[i])] = true
	}

	out := make([]T, len(items))
	seen := make(map[string]bool, len(items))
	for i, item := range items {
		if normalize != nil {
			item = normalize(item)
		}
		if validate != nil {
			if err := validate(item); err != nil {
				return nil, errors.Wrapf(err, "%s %d", kind, i+1)
			}
		}

		id := idOf(&item)
		if *id == "" || seen[*id] {
			for *id == "" || given[*id] || seen[*id] {
				*id = newID()
			}
		}
		seen[*id] = true
		out[i] = item
	}
	return out, nil
}
