package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/pbaille/portfolio/internal/domain"
)

const defaultShowcaseLimit = 3

func (s *Server) getPortfolio(c *gin.Context) {
	writeJSON(c, http.StatusOK, s.store.Document())
}

func (s *Server) patchPortfolio(c *gin.Context) {
	var patch domain.DocumentPatch
	if !bindJSON(c, &patch) {
		return
	}
	err := s.store.UpdateFields(patch)
	if mutationFailed(c, err) {
		return
	}
	writeMutation(c, http.StatusOK, s.store.Document(), err)
}

// Projects

func (s *Server) listProjects(c *gin.Context) {
	filter := domain.ProjectFilter{
		Query:      c.Query("q"),
		Technology: c.Query("tech"),
	}
	if v := c.Query("featured"); v != "" {
		featured, err := strconv.ParseBool(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, codeBadRequest, "featured must be a boolean")
			return
		}
		filter.FeaturedOnly = featured
	}
	writeJSON(c, http.StatusOK, domain.FilterProjects(s.store.Document().Projects, filter))
}

func (s *Server) showcase(c *gin.Context) {
	limit := defaultShowcaseLimit
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeError(c, http.StatusBadRequest, codeBadRequest, "limit must be an integer")
			return
		}
		limit = n
	}
	writeJSON(c, http.StatusOK, domain.Showcase(s.store.Document().Projects, limit))
}

func (s *Server) technologies(c *gin.Context) {
	techs := domain.Technologies(s.store.Document().Projects)
	if techs == nil {
		techs = []string{}
	}
	writeJSON(c, http.StatusOK, techs)
}

func (s *Server) getProject(c *gin.Context) {
	p, ok := s.store.Project(c.Param("id"))
	if !ok {
		writeError(c, http.StatusNotFound, codeNotFound, "project not found")
		return
	}
	writeJSON(c, http.StatusOK, p)
}

func (s *Server) addProject(c *gin.Context) {
	var p domain.Project
	if !bindJSON(c, &p) {
		return
	}
	id, err := s.store.AddProject(p)
	if mutationFailed(c, err) {
		return
	}
	created, _ := s.store.Project(id)
	writeMutation(c, http.StatusCreated, created, err)
}

func (s *Server) updateProject(c *gin.Context) {
	var patch domain.ProjectPatch
	if !bindJSON(c, &patch) {
		return
	}
	id := c.Param("id")
	err := s.store.UpdateProject(id, patch)
	if mutationFailed(c, err) {
		return
	}
	// unknown ids are a no-op, reported with empty data
	var data interface{}
	if p, ok := s.store.Project(id); ok {
		data = p
	}
	writeMutation(c, http.StatusOK, data, err)
}

func (s *Server) deleteProject(c *gin.Context) {
	err := s.store.DeleteProject(c.Param("id"))
	if mutationFailed(c, err) {
		return
	}
	writeMutation(c, http.StatusOK, nil, err)
}

// Skills

func (s *Server) listSkills(c *gin.Context) {
	category := domain.SkillCategory(c.Query("category"))
	skills := domain.FilterSkills(s.store.Document().Skills, category)
	if c.Query("grouped") == "true" {
		writeJSON(c, http.StatusOK, domain.SkillsByCategory(skills))
		return
	}
	writeJSON(c, http.StatusOK, skills)
}

func (s *Server) skillStats(c *gin.Context) {
	doc := s.store.Document()
	writeJSON(c, http.StatusOK, domain.ComputeSkillStats(doc.Skills, doc.Projects))
}

func (s *Server) addSkill(c *gin.Context) {
	var sk domain.Skill
	if !bindJSON(c, &sk) {
		return
	}
	id, err := s.store.AddSkill(sk)
	if mutationFailed(c, err) {
		return
	}
	created, _ := s.store.Skill(id)
	writeMutation(c, http.StatusCreated, created, err)
}

func (s *Server) updateSkill(c *gin.Context) {
	var patch domain.SkillPatch
	if !bindJSON(c, &patch) {
		return
	}
	id := c.Param("id")
	err := s.store.UpdateSkill(id, patch)
	if mutationFailed(c, err) {
		return
	}
	var data interface{}
	if sk, ok := s.store.Skill(id); ok {
		data = sk
	}
	writeMutation(c, http.StatusOK, data, err)
}

func (s *Server) deleteSkill(c *gin.Context) {
	err := s.store.DeleteSkill(c.Param("id"))
	if mutationFailed(c, err) {
		return
	}
	writeMutation(c, http.StatusOK, nil, err)
}

// Experiences

func (s *Server) listExperiences(c *gin.Context) {
	t := domain.ExperienceType(c.Query("type"))
	writeJSON(c, http.StatusOK, domain.FilterExperiences(s.store.Document().Experiences, t))
}

func (s *Server) addExperience(c *gin.Context) {
	var e domain.Experience
	if !bindJSON(c, &e) {
		return
	}
	id, err := s.store.AddExperience(e)
	if mutationFailed(c, err) {
		return
	}
	created, _ := s.store.Experience(id)
	writeMutation(c, http.StatusCreated, created, err)
}

func (s *Server) updateExperience(c *gin.Context) {
	var patch domain.ExperiencePatch
	if !bindJSON(c, &patch) {
		return
	}
	id := c.Param("id")
	err := s.store.UpdateExperience(id, patch)
	if mutationFailed(c, err) {
		return
	}
	var data interface{}
	if e, ok := s.store.Experience(id); ok {
		data = e
	}
	writeMutation(c, http.StatusOK, data, err)
}

func (s *Server) deleteExperience(c *gin.Context) {
	err := s.store.DeleteExperience(c.Param("id"))
	if mutationFailed(c, err) {
		return
	}
	writeMutation(c, http.StatusOK, nil, err)
}

// Session

// LoginRequest is the request body for unlocking edit mode
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate checks the login form
func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// SessionResponse reports whether edit mode is unlocked
type SessionResponse struct {
	Authenticated bool `json:"authenticated"`
}

func (s *Server) getSession(c *gin.Context) {
	writeJSON(c, http.StatusOK, SessionResponse{Authenticated: s.gate.IsAuthenticated()})
}

func (s *Server) login(c *gin.Context) {
	var req LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := req.Validate(); err != nil {
		writeError(c, http.StatusBadRequest, codeInvalid, err.Error())
		return
	}
	if !s.gate.Login(c.Request.Context(), req.Email, req.Password) {
		writeError(c, http.StatusUnauthorized, codeUnauthorized, "invalid email or password")
		return
	}
	writeJSON(c, http.StatusOK, SessionResponse{Authenticated: true})
}

func (s *Server) logout(c *gin.Context) {
	s.gate.Logout(c.Request.Context())
	writeJSON(c, http.StatusOK, SessionResponse{Authenticated: false})
}
