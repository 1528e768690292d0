package sandbox

import (
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/medhistory/medhistory/core"
	"github.com/medhistory/medhistory/core/consultation"
	"github.com/medhistory/medhistory/core/notification"
	"github.com/medhistory/medhistory/core/user"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("a user with this email already exists")
	ErrDocumentNotFound     = errors.New("document not found")
	ErrNotificationNotFound = errors.New("notification not found")
)

// Store is the sandbox's whole world: plain in-memory tables guarded by one
// lock. Nothing survives a restart, which is the point.
type Store struct {
	mu sync.RWMutex

	userPK int
	users  map[int]*user.User

	docs     map[string]*consultation.Document
	docOrder []string

	notes map[string][]consultation.GradingNote

	notifs     map[string]*notification.Notification
	notifOrder []string
}

func NewStore() *Store {
	return &Store{
		users:  make(map[int]*user.User),
		docs:   make(map[string]*consultation.Document),
		notes:  make(map[string][]consultation.GradingNote),
		notifs: make(map[string]*notification.Notification),
	}
}

// Users

func (s *Store) CreateUser(nu user.NewUser) (user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, usr := range s.users {
		if usr.Email == nu.Email {
			return user.User{}, core.NewValidationError(ErrEmailExists,
				core.FieldError{Field: "email", Error: ErrEmailExists.Error()})
		}
	}

	s.userPK++
	now := time.Now().UTC()
	usr := user.User{
		ID:        s.userPK,
		Name:      nu.Name,
		Email:     nu.Email,
		Role:      nu.Role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := usr.SetPassword(nu.Password); err != nil {
		return user.User{}, err
	}
	s.users[usr.ID] = &usr
	return usr, nil
}

func (s *Store) Users() []user.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := make([]user.User, 0, len(s.users))
	for _, usr := range s.users {
		users = append(users, *usr)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users
}

func (s *Store) Doctors() []user.User {
	doctors := make([]user.User, 0)
	for _, usr := range s.Users() {
		if usr.IsDoctor() {
			doctors = append(doctors, usr)
		}
	}
	return doctors
}

func (s *Store) GetUserByID(id int) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if usr, ok := s.users[id]; ok {
		return *usr, nil
	}
	return user.User{}, ErrUserNotFound
}

func (s *Store) GetUserByEmail(email string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	email = core.CleanString(email, true /* lower */)
	for _, usr := range s.users {
		if usr.Email == email {
			return *usr, nil
		}
	}
	return user.User{}, ErrUserNotFound
}

func (s *Store) DeleteUser(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// Documents

func (s *Store) CreateDocument(studentID, doctorID int, content json.RawMessage) consultation.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	doc := consultation.Document{
		ID:        uuid.New().String(),
		StudentID: studentID,
		DoctorID:  doctorID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.docs[doc.ID] = &doc
	s.docOrder = append(s.docOrder, doc.ID)
	return doc
}

func (s *Store) Document(id string) (consultation.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if doc, ok := s.docs[id]; ok {
		return *doc, nil
	}
	return consultation.Document{}, ErrDocumentNotFound
}

// DocumentsByDoctor lists a doctor's assigned documents in submission order.
func (s *Store) DocumentsByDoctor(doctorID int) []consultation.Document {
	return s.filterDocs(func(doc *consultation.Document) bool { return doc.DoctorID == doctorID })
}

// DocumentsByStudent lists a student's submissions in submission order.
func (s *Store) DocumentsByStudent(studentID int) []consultation.Document {
	return s.filterDocs(func(doc *consultation.Document) bool { return doc.StudentID == studentID })
}

func (s *Store) filterDocs(keep func(*consultation.Document) bool) []consultation.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]consultation.Document, 0)
	for _, id := range s.docOrder {
		if doc := s.docs[id]; keep(doc) {
			docs = append(docs, *doc)
		}
	}
	return docs
}

// Notes

// AddNote appends a grading note and bumps the document's updatedAt, which
// the client surfaces as the evaluation date.
func (s *Store) AddNote(docID string, note consultation.GradingNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.docs[docID]
	if !ok {
		return ErrDocumentNotFound
	}
	note.CreatedAt = time.Now().UTC()
	s.notes[docID] = append(s.notes[docID], note)
	doc.UpdatedAt = note.CreatedAt
	return nil
}

// Notes returns a document's grading notes in append (chronological) order.
func (s *Store) Notes(docID string) []consultation.GradingNote {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]consultation.GradingNote, len(s.notes[docID]))
	copy(notes, s.notes[docID])
	return notes
}

// Notifications

func (s *Store) AddNotification(userID int, docID, message string) notification.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := notification.Notification{
		ID:         uuid.New().String(),
		UserID:     userID,
		DocumentID: docID,
		Message:    message,
		CreatedAt:  time.Now().UTC(),
	}
	s.notifs[n.ID] = &n
	s.notifOrder = append(s.notifOrder, n.ID)
	return n
}

func (s *Store) NotificationsFor(userID int) []notification.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]notification.Notification, 0)
	for _, id := range s.notifOrder {
		if n := s.notifs[id]; n.UserID == userID {
			items = append(items, *n)
		}
	}
	return items
}

// MarkNotificationRead flips one of userID's notifications to read.
// Another user's notification is simply not found.
func (s *Store) MarkNotificationRead(id string, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifs[id]
	if !ok || n.UserID != userID {
		return ErrNotificationNotFound
	}
	n.Read = true
	return nil
}
