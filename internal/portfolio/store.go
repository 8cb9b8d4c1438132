// Package portfolio owns the portfolio document: it loads it from a key-value
// store, applies every mutation, keeps derived skill counts consistent, and
// writes the whole document back after each change.
package portfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pbaille/portfolio/internal/domain"
	"github.com/pbaille/portfolio/internal/kv"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultDocumentKey is the key the document is stored under
const DefaultDocumentKey = "portfolioData"

const defaultWriteTimeout = 5 * time.Second

// ErrNotSaved matches errors returned by mutations that were applied in
// memory but could not be written through
var ErrNotSaved = errors.New("change kept in memory but not saved")

// SaveError is returned by a mutation whose write-through failed. The
// mutation itself stands.
type SaveError struct {
	Err error
}

func (e *SaveError) Error() string { return "not saved: " + e.Err.Error() }

func (e *SaveError) Unwrap() error { return e.Err }

// Is lets callers match any save failure with errors.Is(err, ErrNotSaved)
func (e *SaveError) Is(target error) bool { return target == ErrNotSaved }

// Store is the only mutator of the portfolio document.
//
// The in-memory document is the source of truth. A failed write-through is
// reported to the notifier, remembered in PersistError and returned to the
// caller as a *SaveError; the mutation is kept regardless.
type Store struct {
	mu           sync.RWMutex
	kv           kv.Store
	key          string
	doc          domain.Document
	log          zerolog.Logger
	notify       func(error)
	newID        func() string
	writeTimeout time.Duration
	persistErr   error
}

// Option configures a Store
type Option func(*Store)

// WithKey sets the key the document is persisted under
func WithKey(key string) Option {
	return func(s *Store) { s.key = key }
}

// WithLogger sets the logger
func WithLogger(log zerolog.Logger) Option {
	return func(s *Store) { s.log = log }
}

// WithNotifier sets the callback receiving write-through failures. It runs
// with the store locked and must not call back into the store.
func WithNotifier(fn func(error)) Option {
	return func(s *Store) { s.notify = fn }
}

// WithIDGenerator replaces the uuid generator
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithWriteTimeout bounds each write-through
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Store) { s.writeTimeout = d }
}

// New creates a Store holding the default document until Load is called
func New(store kv.Store, opts ...Option) *Store {
	s := &Store{
		kv:           store,
		key:          DefaultDocumentKey,
		doc:          domain.Default(),
		log:          zerolog.Nop(),
		newID:        uuid.NewString,
		writeTimeout: defaultWriteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.notify == nil {
		s.notify = func(err error) {
			s.log.Warn().Err(err).Str("key", s.key).Msg("portfolio not saved")
		}
	}
	return s
}

// Load reads the persisted document. A missing document is seeded with the
// default one and written through. An unreadable or malformed one is
// replaced in memory by the default and logged; Load never fails.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		s.log.Info().Str("key", s.key).Msg("no saved portfolio, using default")
		s.doc = domain.Default()
		s.persistLocked()
		return
	}
	if err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("read portfolio, using default")
		s.doc = domain.Default()
		return
	}

	doc, err := Decode(data)
	if err != nil {
		s.log.Error().Err(err).Str("key", s.key).Msg("parse portfolio, using default")
		s.doc = domain.Default()
		return
	}
	s.doc = doc
}

// Document returns a copy of the current document
func (s *Store) Document() domain.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc.Clone()
}

// PersistError returns the error of the latest write-through, nil after a
// successful one
func (s *Store) PersistError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persistErr
}

// UpdateFields merges patch into the document. Replaced collections are
// normalized, validated and given unique ids; nothing changes if one is
// invalid. Replacing projects or skills recomputes every skill count.
func (s *Store) UpdateFields(patch domain.DocumentPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.admitLocked(patch.Apply(s.doc), patch)
	if err != nil {
		return err
	}

	s.doc = doc
	if patch.TouchesDerived() {
		s.doc.Skills = domain.RecomputeSkillCounts(s.doc.Skills, s.doc.Projects)
	}
	return s.persistLocked()
}

// Replace swaps in a whole document, for imports. It is checked like every
// collection given to UpdateFields.
func (s *Store) Replace(doc domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := domain.DocumentPatch{
		Skills:       &doc.Skills,
		Projects:     &doc.Projects,
		Experiences:  &doc.Experiences,
		Education:    &doc.Education,
		Achievements: &doc.Achievements,
		Languages:    &doc.Languages,
	}
	admitted, err := s.admitLocked(doc.Clone(), all)
	if err != nil {
		return err
	}

	s.doc = admitted
	s.doc.Skills = domain.RecomputeSkillCounts(s.doc.Skills, s.doc.Projects)
	return s.persistLocked()
}

// Reset restores the default document
func (s *Store) Reset() error {
	return s.Replace(domain.Default())
}

// Encode serializes a document the way it is persisted
func Encode(doc domain.Document) ([]byte, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "encode portfolio")
	}
	return data, nil
}

// Decode parses a persisted document. The payload must be a JSON object.
func Decode(data []byte) (domain.Document, error) {
	var doc domain.Document
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return doc, errors.New("decode portfolio: not a JSON object")
	}
	if err := json.Unmarshal(trimmed, &doc); err != nil {
		return doc, errors.Wrap(err, "decode portfolio")
	}
	return doc, nil
}

// persistLocked writes the whole document through. Callers hold s.mu.
func (s *Store) persistLocked() error {
	data, err := Encode(s.doc)
	if err == nil {
		ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
		err = s.kv.Set(ctx, s.key, data)
		cancel()
	}

	s.persistErr = err
	if err != nil {
		s.notify(err)
		return &SaveError{Err: err}
	}
	return nil
}

// idLocked returns a fresh id not yet used by taken
func (s *Store) idLocked(taken func(id string) bool) string {
	for {
		if id := s.newID(); !taken(id) {
			return id
		}
	}
}

func indexOf[T any](items []T, id string, idOf func(T) string) int {
	for i, item := range items {
		if idOf(item) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:i]...)
	return append(out, items[i+1:]...)
}
