package router_test

import (
	"fmt"
	"net/http"
	"testing"

	jwtutil "ebook-share/app/jwt"
	"ebook-share/app/models"
	"ebook-share/config"
	"ebook-share/initialize"

	"github.com/rs/zerolog"
	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "router-test-secret"

func buildTestApp(t *testing.T) *initialize.App {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&models.User{}, &models.Ebook{}))

	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.Issuer = "ebook-share"
	cfg.JWT.ExpMin = 60

	app, err := initialize.BuildWithDB(cfg, gdb, zerolog.Nop())
	require.NoError(t, err)
	return app
}

func tokenFor(t *testing.T, app *initialize.App, username string) string {
	t.Helper()
	u, err := app.Users.FindByUsername(username)
	require.NoError(t, err)
	signer := &jwtutil.Signer{Secret: []byte(testSecret), Issuer: "ebook-share", ExpMin: 60}
	token, err := signer.Sign(u.ID, u.Username, u.Role)
	require.NoError(t, err)
	return token
}

func signup(t *testing.T, app *initialize.App, username string) {
	t.Helper()
	require.NoError(t, app.Users.Signup(username, username+"@example.com", "password1", "password1"))
}

func bearer(token string) string { return "Bearer " + token }

func TestWelcome(t *testing.T) {
	app := buildTestApp(t)
	apitest.Handler(app.Router).
		Get("/").
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present(`$.message`)).
		End()
}

func TestSignupValidation(t *testing.T) {
	app := buildTestApp(t)

	apitest.Handler(app.Router).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"alice@example.com","password":"password1","password_repeat":"password2"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	apitest.Handler(app.Router).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"alice@example.com","password":"short","password_repeat":"short"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	apitest.Handler(app.Router).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"alice@example.com","password":"password1","password_repeat":"password1"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.Handler(app.Router).
		Post("/api/signup").
		JSON(`{"username":"alice","email":"other@example.com","password":"password1","password_repeat":"password1"}`).
		Expect(t).
		Status(http.StatusConflict).
		End()
}

func TestLogin(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")

	apitest.Handler(app.Router).
		Post("/api/login").
		JSON(`{"username":"nobody","password":"password1"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()

	apitest.Handler(app.Router).
		Post("/api/login").
		JSON(`{"username":"alice","password":"wrong"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(jsonpath.Equal(`$.message`, "Username or password is incorrect")).
		End()

	apitest.Handler(app.Router).
		Post("/api/login").
		JSON(`{"username":"alice","password":"password1"}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present(`$.token`)).
		Assert(jsonpath.Equal(`$.user.username`, "alice")).
		Assert(jsonpath.NotPresent(`$.user.password`)).
		Assert(jsonpath.NotPresent(`$.user.passwordHash`)).
		End()
}

func TestProtectedRoutesRejectBadTokens(t *testing.T) {
	app := buildTestApp(t)

	// no token at all
	apitest.Handler(app.Router).
		Get("/api/ebooks").
		Expect(t).
		Status(http.StatusForbidden).
		Assert(jsonpath.Equal(`$.message`, "No token provided")).
		End()

	// malformed token
	apitest.Handler(app.Router).
		Get("/api/ebooks").
		Header("Authorization", "Bearer not-a-token").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	// wrong signing key
	badSigner := &jwtutil.Signer{Secret: []byte("other-secret"), Issuer: "ebook-share", ExpMin: 60}
	forged, err := badSigner.Sign(1, "alice", "admin")
	require.NoError(t, err)
	apitest.Handler(app.Router).
		Get("/api/ebooks").
		Header("Authorization", bearer(forged)).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestUploadAndSearch(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")
	token := tokenFor(t, app, "alice")

	apitest.Handler(app.Router).
		Post("/api/add/ebook").
		Header("Authorization", bearer(token)).
		JSON(`{"title":"Dune","author":"Herbert","genre":"SF","publicationYear":1965,"content":"..."}`).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.info.uploaderName`, "alice")).
		End()

	apitest.Handler(app.Router).
		Get("/api/ebooks").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$.ebooks`, 1)).
		End()

	apitest.Handler(app.Router).
		Get("/api/ebooks/title/Dune").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.ebooks[0].author`, "Herbert")).
		End()

	apitest.Handler(app.Router).
		Get("/api/ebooks/youruploads").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len(`$.ebooks`, 1)).
		End()

	// zero matches is a 200 with an explanatory payload, not an error
	apitest.Handler(app.Router).
		Get("/api/ebooks/genre/Poetry").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.ebooks`, "Sorry, no matches found.")).
		End()

	apitest.Handler(app.Router).
		Get("/api/ebooks/year/not-a-year").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal(`$.ebooks`, "Sorry, no matches found.")).
		End()
}

func TestEditUserRequiresCurrentPassword(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")
	token := tokenFor(t, app, "alice")

	apitest.Handler(app.Router).
		Put("/api/edit/user").
		Header("Authorization", bearer(token)).
		JSON(`{"oldPassword":"wrong","newEmail":"new@example.com"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()

	apitest.Handler(app.Router).
		Put("/api/edit/user").
		Header("Authorization", bearer(token)).
		JSON(`{"oldPassword":"password1","newEmail":"new@example.com"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	u, err := app.Users.FindByUsername("alice")
	require.NoError(t, err)
	require.Equal(t, "new@example.com", u.Email)
}

func TestDeleteEbookOwnership(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")
	signup(t, app, "bob")
	aliceToken := tokenFor(t, app, "alice")
	bobToken := tokenFor(t, app, "bob")

	apitest.Handler(app.Router).
		Post("/api/add/ebook").
		Header("Authorization", bearer(aliceToken)).
		JSON(`{"title":"Dune","author":"Herbert","genre":"SF","publicationYear":1965,"content":"..."}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	books, err := app.Books.SearchByTitle("Dune")
	require.NoError(t, err)
	require.Len(t, books, 1)
	body := fmt.Sprintf(`{"_id":%d}`, books[0].ID)

	apitest.Handler(app.Router).
		Delete("/api/delete/ebook").
		Header("Authorization", bearer(bobToken)).
		JSON(body).
		Expect(t).
		Status(http.StatusForbidden).
		End()

	apitest.Handler(app.Router).
		Delete("/api/delete/ebook").
		Header("Authorization", bearer(aliceToken)).
		JSON(body).
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestDeleteUserCascades(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")
	token := tokenFor(t, app, "alice")

	apitest.Handler(app.Router).
		Post("/api/add/ebook").
		Header("Authorization", bearer(token)).
		JSON(`{"title":"Dune","author":"Herbert","genre":"SF","publicationYear":1965,"content":"..."}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.Handler(app.Router).
		Delete("/api/delete/user").
		Header("Authorization", bearer(token)).
		JSON(`{"password":"password1"}`).
		Expect(t).
		Status(http.StatusOK).
		End()

	books, err := app.Books.SearchByUploader("alice")
	require.NoError(t, err)
	require.Empty(t, books)

	apitest.Handler(app.Router).
		Post("/api/login").
		JSON(`{"username":"alice","password":"password1"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")
	require.NoError(t, app.Users.EnsureAdmin("root", "root@example.com", "admin-password"))
	userToken := tokenFor(t, app, "alice")
	adminToken := tokenFor(t, app, "root")

	apitest.Handler(app.Router).
		Get("/api/admin/users").
		Header("Authorization", bearer(userToken)).
		Expect(t).
		Status(http.StatusForbidden).
		End()

	apitest.Handler(app.Router).
		Get("/api/admin/users").
		Header("Authorization", bearer(adminToken)).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Present(`$.users`)).
		End()

	u, err := app.Users.FindByUsername("alice")
	require.NoError(t, err)

	apitest.Handler(app.Router).
		Put("/api/admin/edit/user").
		Header("Authorization", bearer(adminToken)).
		JSON(fmt.Sprintf(`{"userID":%d,"newUsername":"alice-admin-edit"}`, u.ID)).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.Handler(app.Router).
		Delete(fmt.Sprintf("/api/delete/user/%d", u.ID)).
		Header("Authorization", bearer(adminToken)).
		Expect(t).
		Status(http.StatusOK).
		End()

	_, err = app.Users.FindByID(u.ID)
	require.Error(t, err)
}

// A deleted user's token keeps verifying until expiry; the middleware never
// consults the credential store.
func TestTokenOutlivesDeletedUser(t *testing.T) {
	app := buildTestApp(t)
	signup(t, app, "alice")
	token := tokenFor(t, app, "alice")

	u, err := app.Users.FindByUsername("alice")
	require.NoError(t, err)
	require.NoError(t, app.Users.AdminDelete(u.ID))

	apitest.Handler(app.Router).
		Get("/api/ebooks").
		Header("Authorization", bearer(token)).
		Expect(t).
		Status(http.StatusOK).
		End()
}
