package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/campusmesh/portal-api/internal/dto"
	"github.com/campusmesh/portal-api/internal/models"
	"github.com/campusmesh/portal-api/internal/repository"
)

// LibraryService manages the book catalog and reservations. A reservation
// flips the book's global availability and records the id against exactly
// one user; there is no release operation.
type LibraryService interface {
	Books(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, query string) ([]models.Book, error)
	AddBook(ctx context.Context, title, author string) (models.Book, error)
	DeleteBook(ctx context.Context, id int) error
	Reserve(ctx context.Context, username string, bookID int) error
	Reserved(ctx context.Context, username string) ([]dto.ReservedBookView, error)
}

type libraryService struct {
	catalogRepo repository.CatalogRepository
	userRepo    repository.UserRepository
	logger      zerolog.Logger
}

// NewLibraryService constructs the library service.
func NewLibraryService(catalogRepo repository.CatalogRepository, userRepo repository.UserRepository, logger zerolog.Logger) LibraryService {
	return &libraryService{
		catalogRepo: catalogRepo,
		userRepo:    userRepo,
		logger:      logger.With().Str("component", "library_service").Logger(),
	}
}

func (s *libraryService) Books(ctx context.Context) ([]models.Book, error) {
	books, _, err := s.catalogRepo.Books(ctx)
	return books, err
}

func (s *libraryService) Search(ctx context.Context, query string) ([]models.Book, error) {
	books, _, err := s.catalogRepo.Books(ctx)
	if err != nil {
		return nil, err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return books, nil
	}

	matches := make([]models.Book, 0)
	for _, book := range books {
		if strings.Contains(strings.ToLower(book.Title), query) || strings.Contains(strings.ToLower(book.Author), query) {
			matches = append(matches, book)
		}
	}

	return matches, nil
}

func (s *libraryService) AddBook(ctx context.Context, title, author string) (models.Book, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	if title == "" || author == "" {
		return models.Book{}, ErrMissingFields
	}

	books, _, err := s.catalogRepo.Books(ctx)
	if err != nil {
		return models.Book{}, err
	}

	book := models.Book{ID: nextBookID(books), Title: title, Author: author, Available: true}

	if err := s.catalogRepo.SaveBooks(ctx, append(books, book)); err != nil {
		return models.Book{}, err
	}

	s.logger.Info().Int("id", book.ID).Str("title", book.Title).Msg("book added")

	return book, nil
}

// DeleteBook removes the book from the catalog. Reserved lists are left
// untouched; stale ids simply stop resolving.
func (s *libraryService) DeleteBook(ctx context.Context, id int) error {
	books, _, err := s.catalogRepo.Books(ctx)
	if err != nil {
		return err
	}

	kept := books[:0]
	for _, book := range books {
		if book.ID != id {
			kept = append(kept, book)
		}
	}

	return s.catalogRepo.SaveBooks(ctx, kept)
}

// Reserve is a silent no-op when the book is missing or already unavailable.
func (s *libraryService) Reserve(ctx context.Context, username string, bookID int) error {
	books, _, err := s.catalogRepo.Books(ctx)
	if err != nil {
		return err
	}

	reserved := false
	for i := range books {
		if books[i].ID == bookID && books[i].Available {
			books[i].Available = false
			reserved = true
			break
		}
	}
	if !reserved {
		s.logger.Debug().Int("book_id", bookID).Msg("reserve skipped: book missing or unavailable")
		return nil
	}

	if err := s.catalogRepo.SaveBooks(ctx, books); err != nil {
		return err
	}

	ids, err := s.userRepo.ReservedBooks(ctx, username)
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == bookID {
			return nil
		}
	}

	return s.userRepo.SaveReservedBooks(ctx, username, append(ids, bookID))
}

func (s *libraryService) Reserved(ctx context.Context, username string) ([]dto.ReservedBookView, error) {
	ids, err := s.userRepo.ReservedBooks(ctx, username)
	if err != nil {
		return nil, err
	}

	books, _, err := s.catalogRepo.Books(ctx)
	if err != nil {
		return nil, err
	}

	byID := make(map[int]models.Book, len(books))
	for _, book := range books {
		byID[book.ID] = book
	}

	views := make([]dto.ReservedBookView, 0, len(ids))
	for _, id := range ids {
		if book, ok := byID[id]; ok {
			views = append(views, dto.ReservedBookView{ID: book.ID, Title: book.Title, Author: book.Author})
		}
	}

	return views, nil
}

// nextBookID allocates max(existing ids)+1, or 1 for an empty catalog.
func nextBookID(books []models.Book) int {
	next := 1
	for _, book := range books {
		if book.ID >= next {
			next = book.ID + 1
		}
	}
	return next
}
