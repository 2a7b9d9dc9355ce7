package contacts

import (
	"cmp"
	"context"
	"encoding/json"
	"log/slog"
	"slices"
	"sync"

	"github.com/oaiiae/contacts-api/datastores"
)

// DefaultName is the blob the collection is persisted under.
const DefaultName = "contacts.json"

// Service owns the contact collection and writes it back to a
// [datastores.TextStore] after every mutation.
type Service struct {
	mu       sync.Mutex
	store    datastores.TextStore
	name     string
	logger   *slog.Logger
	contacts []Contact
}

// NewService loads the collection named name from store.
//
// Loading is best-effort: an absent blob, a read failure or content that
// does not decode as a list of contacts all start an empty collection.
// The failure is logged, never returned.
func NewService(ctx context.Context, store datastores.TextStore, name string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Service{store: store, name: name, logger: logger}
	s.contacts = s.load(ctx)
	return s
}

func (s *Service) load(ctx context.Context) []Contact {
	if !s.store.Exists(ctx, s.name) {
		s.logger.InfoContext(ctx, "no persisted contacts, starting empty", "name", s.name)
		return []Contact{}
	}

	text, err := s.store.ReadAllText(ctx, s.name)
	if err != nil {
		s.logger.WarnContext(ctx, "could not read persisted contacts, starting empty", "name", s.name, "err", err)
		return []Contact{}
	}

	var contacts []Contact
	err = json.Unmarshal([]byte(text), &contacts)
	if err != nil {
		s.logger.WarnContext(ctx, "could not decode persisted contacts, starting empty", "name", s.name, "err", err)
		return []Contact{}
	}
	if contacts == nil {
		contacts = []Contact{}
	}

	s.logger.InfoContext(ctx, "loaded persisted contacts", "name", s.name, "count", len(contacts))
	return contacts
}

// save must be called with s.mu held.
func (s *Service) save(ctx context.Context) error {
	b, err := json.MarshalIndent(s.contacts, "", "  ")
	if err != nil {
		return &Error{kind: ErrIO, msg: err.Error(), cause: err}
	}

	err = s.store.WriteAllText(ctx, s.name, string(b))
	if err != nil {
		s.logger.ErrorContext(ctx, "could not persist contacts", "name", s.name, "err", err)
		return &Error{kind: ErrIO, msg: err.Error(), cause: err}
	}
	return nil
}

// GetContacts returns a copy of the collection in insertion order.
func (s *Service) GetContacts() []Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.contacts)
}

// GetContactByID returns the first contact with that id.
func (s *Service) GetContactByID(id ContactID) (Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.index(id)
	if i < 0 {
		return Contact{}, false
	}
	return s.contacts[i], true
}

func (s *Service) index(id ContactID) int {
	return slices.IndexFunc(s.contacts, func(c Contact) bool { return c.ID == id })
}

// emailTaken reports whether a contact other than except uses email.
func (s *Service) emailTaken(email string, except func(Contact) bool) bool {
	return slices.ContainsFunc(s.contacts, func(c Contact) bool {
		return c.Email == email && (except == nil || !except(c))
	})
}

// ValidateContact reports true for a contact fit to be persisted, or
// fails with an [ErrInvalidArgument] error.
func (s *Service) ValidateContact(c *Contact) (bool, error) {
	err := Validate(c)
	if err != nil {
		return false, err
	}
	return true, nil
}

// CreateContact appends c with the next id and persists the collection.
// It sets c.ID. Field validity is left to [Service.ValidateContact].
//
// The id is one more than the largest id, or 1 for an empty collection.
// A persist failure is returned with the contact already appended.
func (s *Service) CreateContact(ctx context.Context, c *Contact) (ContactID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(c.Email, nil) {
		return 0, errEmailTaken
	}

	id := 1
	if len(s.contacts) > 0 {
		id = slices.MaxFunc(s.contacts, func(a, b Contact) int { return cmp.Compare(a.ID, b.ID) }).ID + 1
	}
	c.ID = id
	s.contacts = append(s.contacts, *c)

	return id, s.save(ctx)
}

// UpdateContact overwrites the names and email of the contact with that id
// and persists the collection. The id is kept.
func (s *Service) UpdateContact(ctx context.Context, id ContactID, updated *Contact) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return errNotFound
	}
	if s.emailTaken(updated.Email, func(c Contact) bool { return c.ID == id }) {
		return errEmailTaken
	}

	s.contacts[i].FirstName = updated.FirstName
	s.contacts[i].LastName = updated.LastName
	s.contacts[i].Email = updated.Email

	return s.save(ctx)
}

// DeleteContact removes the contact with that id and persists the collection.
func (s *Service) DeleteContact(ctx context.Context, id ContactID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return errNotFound
	}
	s.contacts = slices.Delete(s.contacts, i, i+1)

	return s.save(ctx)
}
