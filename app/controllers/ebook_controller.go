package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"ebook-share/app/dto"
	"ebook-share/app/middleware"
	"ebook-share/app/models"
	"ebook-share/app/services"
)

const noMatchesMessage = "Sorry, no matches found."

type EbookController struct{ Books *services.EbookService }

func NewEbookController(books *services.EbookService) *EbookController {
	return &EbookController{Books: books}
}

func (c *EbookController) GetAll(w http.ResponseWriter, r *http.Request) {
	books, err := c.Books.ListAll()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ebooks": books})
}

// writeSearchResult keeps the original convention: zero matches is not an
// error, it is a 200 with an explanatory payload.
func writeSearchResult(w http.ResponseWriter, books []models.Ebook, err error) {
	if err != nil {
		writeError(w, err)
		return
	}
	if len(books) == 0 {
		writeJSON(w, http.StatusOK, map[string]any{"ebooks": noMatchesMessage})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ebooks": books})
}

func (c *EbookController) GetByTitle(w http.ResponseWriter, r *http.Request) {
	books, err := c.Books.SearchByTitle(r.PathValue("title"))
	writeSearchResult(w, books, err)
}

func (c *EbookController) GetByAuthor(w http.ResponseWriter, r *http.Request) {
	books, err := c.Books.SearchByAuthor(r.PathValue("author"))
	writeSearchResult(w, books, err)
}

func (c *EbookController) GetByGenre(w http.ResponseWriter, r *http.Request) {
	books, err := c.Books.SearchByGenre(r.PathValue("genre"))
	writeSearchResult(w, books, err)
}

func (c *EbookController) GetByYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(r.PathValue("year"))
	if err != nil {
		// a non-numeric year can never match anything
		writeJSON(w, http.StatusOK, map[string]any{"ebooks": noMatchesMessage})
		return
	}
	books, err := c.Books.SearchByYear(year)
	writeSearchResult(w, books, err)
}

func (c *EbookController) GetByUploader(w http.ResponseWriter, r *http.Request) {
	books, err := c.Books.SearchByUploader(r.PathValue("uploader"))
	writeSearchResult(w, books, err)
}

func (c *EbookController) GetYourUploads(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	books, err := c.Books.ListByUploaderID(claims.UserID)
	writeSearchResult(w, books, err)
}

// Add uploads a book; the uploader snapshot comes from the token identity,
// never from the request body.
func (c *EbookController) Add(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.AddEbookRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	entry := &models.Ebook{
		Title:           req.Title,
		Author:          req.Author,
		Genre:           req.Genre,
		PublicationYear: req.PublicationYear,
		Content:         req.Content,
	}
	created, err := c.Books.Add(claims.Username, entry)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "eBook added to DB successfully", "info": created})
}

func (c *EbookController) Edit(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.EditEbookRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.BookID == 0 {
		writeMessage(w, http.StatusBadRequest, "bookID is required")
		return
	}
	if err := c.Books.Edit(claims.UserID, claims.Role == "admin", req.BookID, req.NewTitle, req.NewAuthor, req.NewGenre, req.NewYear); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "eBook information editted successfully")
}

func (c *EbookController) Delete(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		writeMessage(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req dto.DeleteEbookRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		writeMessage(w, http.StatusBadRequest, "_id is required")
		return
	}
	if err := c.Books.Delete(claims.UserID, claims.Role == "admin", req.ID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "eBook deleted successfully")
}
