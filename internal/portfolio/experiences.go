package portfolio

import "github.com/pbaille/portfolio/internal/domain"

func experienceID(e domain.Experience) string { return e.ID }

// Experience returns the experience with id
func (s *Store) Experience(id string) (domain.Experience, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.doc.Experiences, id, experienceID)
	if i < 0 {
		return domain.Experience{}, false
	}
	return s.doc.Experiences[i].Clone(), true
}

// AddExperience appends an experience and returns its id
func (s *Store) AddExperience(e domain.Experience) (string, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	e.ID = s.idLocked(func(id string) bool { return indexOf(s.doc.Experiences, id, experienceID) >= 0 })
	s.doc.Experiences = append(s.doc.Experiences, e)
	return e.ID, s.persistLocked()
}

// UpdateExperience merges patch into the experience with id. An unknown id is
// a no-op.
func (s *Store) UpdateExperience(id string, patch domain.ExperiencePatch) error {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doc.Experiences, id, experienceID)
	if i < 0 {
		return nil
	}

	experiences := append([]domain.Experience(nil), s.doc.Experiences...)
	experiences[i] = patch.Apply(s.doc.Experiences[i])
	s.doc.Experiences = experiences
	return s.persistLocked()
}

// DeleteExperience removes the experience with id. An unknown id is a no-op.
func (s *Store) DeleteExperience(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doc.Experiences, id, experienceID)
	if i < 0 {
		return nil
	}
	s.doc.Experiences = removeAt(s.doc.Experiences, i)
	return s.persistLocked()
}
