package portfolio

import "github.com/pbaille/portfolio/internal/domain"

func projectID(p domain.Project) string { return p.ID }

// Project returns the project with id
func (s *Store) Project(id string) (domain.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.doc.Projects, id, projectID)
	if i < 0 {
		return domain.Project{}, false
	}
	return s.doc.Projects[i].Clone(), true
}

// AddProject appends a project and returns its new id. Any id on p is ignored.
func (s *Store) AddProject(p domain.Project) (string, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.idLocked(func(id string) bool { return indexOf(s.doc.Projects, id, projectID) >= 0 })
	s.doc.Projects = append(s.doc.Projects, p)
	return p.ID, s.projectsChangedLocked()
}

// UpdateProject merges patch into the project with id. Only the fields the
// patch sets are validated. An unknown id is a no-op.
func (s *Store) UpdateProject(id string, patch domain.ProjectPatch) error {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doc.Projects, id, projectID)
	if i < 0 {
		return nil
	}

	projects := append([]domain.Project(nil), s.doc.Projects...)
	projects[i] = patch.Apply(s.doc.Projects[i])
	s.doc.Projects = projects
	return s.projectsChangedLocked()
}

// DeleteProject removes the project with id. An unknown id is a no-op.
func (s *Store) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doc.Projects, id, projectID)
	if i < 0 {
		return nil
	}
	s.doc.Projects = removeAt(s.doc.Projects, i)
	return s.projectsChangedLocked()
}

func (s *Store) projectsChangedLocked() error {
	s.doc.Skills = domain.RecomputeSkillCounts(s.doc.Skills, s.doc.Projects)
	return s.persistLocked()
}
