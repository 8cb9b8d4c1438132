package portfolio

import "github.com/pbaille/portfolio/internal/domain"

func skillID(s domain.Skill) string { return s.ID }

// Skill returns the skill with id
func (s *Store) Skill(id string) (domain.Skill, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := indexOf(s.doc.Skills, id, skillID)
	if i < 0 {
		return domain.Skill{}, false
	}
	return s.doc.Skills[i], true
}

// AddSkill appends a skill with its project count computed and returns its
// id. Other skills are left as they are.
func (s *Store) AddSkill(sk domain.Skill) (string, error) {
	sk = sk.Normalize()
	if err := sk.Validate(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sk.ID = s.idLocked(func(id string) bool { return indexOf(s.doc.Skills, id, skillID) >= 0 })
	sk.ProjectCount = domain.ProjectCountForSkill(sk.Name, s.doc.Projects)
	s.doc.Skills = append(s.doc.Skills, sk)
	return sk.ID, s.persistLocked()
}

// UpdateSkill merges patch into the skill with id and recomputes its count.
// An unknown id is a no-op.
func (s *Store) UpdateSkill(id string, patch domain.SkillPatch) error {
	patch = patch.Normalize()
	if err := patch.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doc.Skills, id, skillID)
	if i < 0 {
		return nil
	}

	updated := patch.Apply(s.doc.Skills[i])
	updated.ProjectCount = domain.ProjectCountForSkill(updated.Name, s.doc.Projects)

	skills := append([]domain.Skill(nil), s.doc.Skills...)
	skills[i] = updated
	s.doc.Skills = skills
	return s.persistLocked()
}

// DeleteSkill removes the skill with id. An unknown id is a no-op.
func (s *Store) DeleteSkill(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.doc.Skills, id, skillID)
	if i < 0 {
		return nil
	}
	s.doc.Skills = removeAt(s.doc.Skills, i)
	return s.persistLocked()
}
