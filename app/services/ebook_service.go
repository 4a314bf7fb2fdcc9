package services

import (
	"errors"

	"ebook-share/app/models"
	"ebook-share/app/repo"

	"gorm.io/gorm"
)

type EbookService struct {
	books *repo.EbookRepository
	users *repo.UserRepository
}

func NewEbookService(books *repo.EbookRepository, users *repo.UserRepository) *EbookService {
	return &EbookService{books: books, users: users}
}

// Add stores the entry, then resolves the authenticated username into the
// uploader snapshot and patches the entry. If resolution fails the entry
// is removed again so no orphaned half-filled record is left behind.
func (s *EbookService) Add(uploaderUsername string, entry *models.Ebook) (*models.Ebook, error) {
	if entry.Title == "" || entry.Author == "" || entry.Genre == "" || entry.Content == "" {
		return nil, ErrMissingFields
	}
	if err := s.books.Create(entry); err != nil {
		return nil, err
	}
	u, err := s.users.FindByUsername(uploaderUsername)
	if err != nil {
		_ = s.books.Delete(entry.ID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownUser
		}
		return nil, err
	}
	entry.UploaderID = u.ID
	entry.UploaderName = u.Username
	entry.UploaderEmail = u.Email
	if err := s.books.Save(entry); err != nil {
		_ = s.books.Delete(entry.ID)
		return nil, err
	}
	return entry, nil
}

func (s *EbookService) ListAll() ([]models.Ebook, error) { return s.books.ListAll() }

func (s *EbookService) SearchByTitle(title string) ([]models.Ebook, error) {
	return s.books.FindByTitle(title)
}

func (s *EbookService) SearchByAuthor(author string) ([]models.Ebook, error) {
	return s.books.FindByAuthor(author)
}

func (s *EbookService) SearchByGenre(genre string) ([]models.Ebook, error) {
	return s.books.FindByGenre(genre)
}

func (s *EbookService) SearchByYear(year int) ([]models.Ebook, error) {
	return s.books.FindByYear(year)
}

// SearchByUploader matches the snapshot username recorded at upload time,
// not the uploader's current username.
func (s *EbookService) SearchByUploader(username string) ([]models.Ebook, error) {
	return s.books.FindByUploaderName(username)
}

func (s *EbookService) ListByUploaderID(uploaderID uint) ([]models.Ebook, error) {
	return s.books.FindByUploaderID(uploaderID)
}

// Edit changes metadata only; content is immutable through this surface.
// Only the recorded uploader or an admin may edit.
func (s *EbookService) Edit(callerID uint, callerIsAdmin bool, bookID uint, newTitle, newAuthor, newGenre string, newYear int) error {
	b, err := s.findByID(bookID)
	if err != nil {
		return err
	}
	if b.UploaderID != callerID && !callerIsAdmin {
		return ErrForbidden
	}
	fields := map[string]any{}
	if newTitle != "" {
		fields["title"] = newTitle
	}
	if newAuthor != "" {
		fields["author"] = newAuthor
	}
	if newGenre != "" {
		fields["genre"] = newGenre
	}
	if newYear != 0 {
		fields["publication_year"] = newYear
	}
	if len(fields) == 0 {
		return ErrMissingFields
	}
	return s.books.UpdateFields(bookID, fields)
}

// Delete permits only the recorded uploader or an admin.
func (s *EbookService) Delete(callerID uint, callerIsAdmin bool, bookID uint) error {
	b, err := s.findByID(bookID)
	if err != nil {
		return err
	}
	if b.UploaderID != callerID && !callerIsAdmin {
		return ErrForbidden
	}
	return s.books.Delete(bookID)
}

func (s *EbookService) findByID(id uint) (*models.Ebook, error) {
	b, err := s.books.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
