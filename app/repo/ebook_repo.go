package repo

import (
	"ebook-share/app/models"

	"gorm.io/gorm"
)

type EbookRepository struct{ db *gorm.DB }

func NewEbookRepository(db *gorm.DB) *EbookRepository { return &EbookRepository{db: db} }

func (r *EbookRepository) Create(b *models.Ebook) error { return r.db.Create(b).Error }

func (r *EbookRepository) Save(b *models.Ebook) error { return r.db.Save(b).Error }

func (r *EbookRepository) FindByID(id uint) (*models.Ebook, error) {
	var b models.Ebook
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *EbookRepository) ListAll() ([]models.Ebook, error) {
	books := make([]models.Ebook, 0)
	return books, r.db.Find(&books).Error
}

func (r *EbookRepository) FindByTitle(title string) ([]models.Ebook, error) {
	var books []models.Ebook
	return books, r.db.Where("title = ?", title).Find(&books).Error
}

func (r *EbookRepository) FindByAuthor(author string) ([]models.Ebook, error) {
	var books []models.Ebook
	return books, r.db.Where("author = ?", author).Find(&books).Error
}

func (r *EbookRepository) FindByGenre(genre string) ([]models.Ebook, error) {
	var books []models.Ebook
	return books, r.db.Where("genre = ?", genre).Find(&books).Error
}

func (r *EbookRepository) FindByYear(year int) ([]models.Ebook, error) {
	var books []models.Ebook
	return books, r.db.Where("publication_year = ?", year).Find(&books).Error
}

func (r *EbookRepository) FindByUploaderName(username string) ([]models.Ebook, error) {
	var books []models.Ebook
	return books, r.db.Where("uploader_name = ?", username).Find(&books).Error
}

func (r *EbookRepository) FindByUploaderID(uploaderID uint) ([]models.Ebook, error) {
	var books []models.Ebook
	return books, r.db.Where("uploader_id = ?", uploaderID).Find(&books).Error
}

func (r *EbookRepository) UpdateFields(id uint, fields map[string]any) error {
	return r.db.Model(&models.Ebook{}).Where("id = ?", id).Updates(fields).Error
}

func (r *EbookRepository) Delete(id uint) error {
	return r.db.Delete(&models.Ebook{}, id).Error
}

func (r *EbookRepository) DeleteByUploaderID(uploaderID uint) error {
	return r.db.Where("uploader_id = ?", uploaderID).Delete(&models.Ebook{}).Error
}
