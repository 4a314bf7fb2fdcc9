package ui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"ebook-share/app/dto"
	"ebook-share/app/models"
)

// Session holds the API endpoint and the bearer token for the current login.
type Session struct {
	BaseURL string
	Token   string
	User    dto.PublicUser
	HTTP    *http.Client
}

func NewSession() *Session {
	return &Session{HTTP: &http.Client{Timeout: 10 * time.Second}}
}

func (s *Session) Login(host string, port int, username, password string) error {
	s.BaseURL = fmt.Sprintf("http://%s:%d", host, port)
	body, _ := json.Marshal(dto.LoginRequest{Username: username, Password: password})
	resp, err := s.HTTP.Post(s.BaseURL+"/api/login", "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = resp.Status
		}
		return fmt.Errorf("login failed: %s", e.Message)
	}
	var lr dto.LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return err
	}
	s.Token = lr.Token
	s.User = lr.User
	return nil
}

func (s *Session) do(method, path string, payload any, out any) error {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, s.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.Token)
	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		var e struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&e)
		if e.Message == "" {
			e.Message = resp.Status
		}
		return fmt.Errorf("%s", e.Message)
	}
	if out != nil {
		return json.NewDecoder(resp.Body).Decode(out)
	}
	return nil
}

// bookList tolerates the "Sorry, no matches found." string the API returns
// in place of an empty array.
type bookList struct {
	Ebooks json.RawMessage `json:"ebooks"`
}

func (l bookList) books() []models.Ebook {
	var books []models.Ebook
	if err := json.Unmarshal(l.Ebooks, &books); err != nil {
		return nil
	}
	return books
}

func (s *Session) ListBooks() ([]models.Ebook, error) {
	var l bookList
	if err := s.do(http.MethodGet, "/api/ebooks", nil, &l); err != nil {
		return nil, err
	}
	return l.books(), nil
}

func (s *Session) SearchBooks(field, term string) ([]models.Ebook, error) {
	var l bookList
	path := fmt.Sprintf("/api/ebooks/%s/%s", field, url.PathEscape(term))
	if err := s.do(http.MethodGet, path, nil, &l); err != nil {
		return nil, err
	}
	return l.books(), nil
}

func (s *Session) YourUploads() ([]models.Ebook, error) {
	var l bookList
	if err := s.do(http.MethodGet, "/api/ebooks/youruploads", nil, &l); err != nil {
		return nil, err
	}
	return l.books(), nil
}

func (s *Session) Upload(req dto.AddEbookRequest) error {
	return s.do(http.MethodPost, "/api/add/ebook", req, nil)
}

func (s *Session) DeleteBook(id uint) error {
	return s.do(http.MethodDelete, "/api/delete/ebook", dto.DeleteEbookRequest{ID: id}, nil)
}
