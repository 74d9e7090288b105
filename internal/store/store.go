package store

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"nvlaw-backend/internal/models"
	"nvlaw-backend/internal/utils"
)

var ErrNotFound = errors.New("record not found")

type ContactInput struct {
	FirstName    string
	LastName     string
	Email        string
	Phone        string
	PracticeArea string
	Subject      string
	Message      string
}

type AppointmentInput struct {
	FirstName     string
	LastName      string
	Email         string
	Phone         string
	PracticeArea  string
	PreferredDate string
	PreferredTime string
	Description   string
}

type BlogPostInput struct {
	Title     string
	Slug      string
	Excerpt   string
	Content   string
	Category  string
	Tags      []string
	Published bool
}

// Store holds every mutable record for the lifetime of the process. Records
// are create-and-read only; nothing updates or deletes them. The store is an
// explicit instance handed to its callers, never a package-level singleton.
type Store struct {
	mu           sync.RWMutex
	now          func() time.Time
	contacts     map[string]models.Contact
	appointments map[string]models.Appointment
	posts        map[string]models.BlogPost
}

type Option func(*Store)

// WithClock overrides the creation-timestamp source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		now:          time.Now,
		contacts:     make(map[string]models.Contact),
		appointments: make(map[string]models.Appointment),
		posts:        make(map[string]models.BlogPost),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) CreateContact(ctx context.Context, in ContactInput) models.Contact {
	contact := models.Contact{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Phone:        in.Phone,
		PracticeArea: in.PracticeArea,
		Subject:      in.Subject,
		Message:      in.Message,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	s.contacts[contact.ID] = contact
	s.mu.Unlock()

	return contact
}

func (s *Store) CreateAppointment(ctx context.Context, in AppointmentInput) models.Appointment {
	appointment := models.Appointment{
		ID:            uuid.NewString(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Email:         in.Email,
		Phone:         in.Phone,
		PracticeArea:  in.PracticeArea,
		PreferredDate: in.PreferredDate,
		PreferredTime: in.PreferredTime,
		Description:   in.Description,
		CreatedAt:     s.now(),
	}

	s.mu.Lock()
	s.appointments[appointment.ID] = appointment
	s.mu.Unlock()

	return appointment
}

// CreateBlogPost is used by seeding and tests; no HTTP route exposes it.
// An empty slug is derived from the title.
func (s *Store) CreateBlogPost(ctx context.Context, in BlogPostInput) models.BlogPost {
	slug := in.Slug
	if slug == "" {
		slug = utils.Slugify(in.Title)
	}

	now := s.now()
	post := models.BlogPost{
		ID:        uuid.NewString(),
		Title:     in.Title,
		Slug:      slug,
		Excerpt:   in.Excerpt,
		Content:   in.Content,
		Category:  in.Category,
		Tags:      in.Tags,
		Published: in.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.posts[post.ID] = post
	s.mu.Unlock()

	return post
}

// BlogPosts returns published posts only, most recent first.
func (s *Store) BlogPosts(ctx context.Context) []models.BlogPost {
	s.mu.RLock()
	items := make([]models.BlogPost, 0, len(s.posts))
	for _, post := range s.posts {
		if post.Published {
			items = append(items, post)
		}
	}
	s.mu.RUnlock()

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	return items
}

// BlogPostBySlug returns the published post with the given slug. Slug
// uniqueness is a seed-data invariant; on a violation the first match wins.
func (s *Store) BlogPostBySlug(ctx context.Context, slug string) (models.BlogPost, error) {
	for _, post := range s.BlogPosts(ctx) {
		if post.Slug == slug {
			return post, nil
		}
	}
	return models.BlogPost{}, ErrNotFound
}

// Contacts lists stored contacts, insertion-order-independent. Not routed;
// submissions are write-only through the public API.
func (s *Store) Contacts(ctx context.Context) []models.Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		items = append(items, c)
	}
	return items
}

func (s *Store) Appointments(ctx context.Context) []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]models.Appointment, 0, len(s.appointments))
	for _, a := range s.appointments {
		items = append(items, a)
	}
	return items
}
