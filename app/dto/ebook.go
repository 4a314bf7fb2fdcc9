package dto

type AddEbookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	Genre           string `json:"genre"`
	PublicationYear int    `json:"publicationYear"`
	Content         string `json:"content"`
}

type EditEbookRequest struct {
	BookID    uint   `json:"bookID"`
	NewTitle  string `json:"newTitle"`
	NewAuthor string `json:"newAuthor"`
	NewGenre  string `json:"newGenre"`
	NewYear   int    `json:"newYear"`
}

type DeleteEbookRequest struct {
	ID uint `json:"_id"`
}
