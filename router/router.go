package router

import (
	"net/http"

	"ebook-share/app/controllers"
	"ebook-share/app/middleware"
)

func NewRouter(httpCtrl *controllers.HTTPController, authCtrl *controllers.AuthController, userCtrl *controllers.UserController, bookCtrl *controllers.EbookController, mw *middleware.Auth) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("GET /{$}", httpCtrl.Welcome)
	mux.HandleFunc("POST /api/signup", authCtrl.Signup)
	mux.HandleFunc("POST /api/login", authCtrl.Login)

	// authenticated
	auth := func(h http.HandlerFunc) http.Handler { return mw.RequireAuth(h) }
	mux.Handle("GET /api/ebooks", auth(bookCtrl.GetAll))
	mux.Handle("GET /api/ebooks/title/{title}", auth(bookCtrl.GetByTitle))
	mux.Handle("GET /api/ebooks/author/{author}", auth(bookCtrl.GetByAuthor))
	mux.Handle("GET /api/ebooks/genre/{genre}", auth(bookCtrl.GetByGenre))
	mux.Handle("GET /api/ebooks/year/{year}", auth(bookCtrl.GetByYear))
	mux.Handle("GET /api/ebooks/uploader/{uploader}", auth(bookCtrl.GetByUploader))
	mux.Handle("GET /api/ebooks/youruploads", auth(bookCtrl.GetYourUploads))
	mux.Handle("POST /api/add/ebook", auth(bookCtrl.Add))
	mux.Handle("PUT /api/edit/user", auth(userCtrl.EditOwn))
	mux.Handle("PUT /api/edit/ebook", auth(bookCtrl.Edit))
	mux.Handle("DELETE /api/delete/ebook", auth(bookCtrl.Delete))
	mux.Handle("DELETE /api/delete/user", auth(userCtrl.DeleteOwn))

	// admin-only
	mux.Handle("GET /api/admin/users", mw.RequireAdmin(http.HandlerFunc(userCtrl.AdminList)))
	mux.Handle("PUT /api/admin/edit/user", mw.RequireAdmin(http.HandlerFunc(userCtrl.AdminEdit)))
	mux.Handle("DELETE /api/delete/user/{userID}", mw.RequireAdmin(http.HandlerFunc(userCtrl.AdminDelete)))

	return mux
}
