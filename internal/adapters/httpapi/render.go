package httpapi

import (
	"embed"
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/config"
	groupEntity "yatube/internal/core/group"
	postEntity "yatube/internal/core/post"
	userEntity "yatube/internal/core/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

//go:embed templates
var templatesFS embed.FS

var templateFuncs = template.FuncMap{
	"profileURL":  profileURL,
	"postURL":     postURL,
	"postEditURL": func(id uuid.UUID) string { return postURL(id) + "edit/" },
	"groupURL":    func(slug string) string { return "/group/" + url.PathEscape(slug) + "/" },
	"mediaURL":    func(name string) string { return "/media/" + name },
	"pageURL":     func(n int) string { return "?page=" + strconv.Itoa(n) },
	"date":        func(t time.Time) string { return t.Format("2 January 2006") },
}

func loadTemplates() (*template.Template, error) {
	return template.New("").Funcs(templateFuncs).ParseFS(templatesFS, "templates/*/*.html")
}

func profileURL(username string) string {
	return "/profile/" + url.PathEscape(username) + "/"
}

func postURL(id uuid.UUID) string {
	return "/posts/" + id.String() + "/"
}

// Actor is what templates know about the current visitor.
type Actor struct {
	Authenticated bool
	ID            uuid.UUID
	Username      string
}

func currentActor(c *gin.Context) Actor {
	id, ok := middleware.ActorID(c)
	if !ok {
		return Actor{}
	}
	return Actor{Authenticated: true, ID: id, Username: middleware.ActorUsername(c)}
}

func render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["Actor"] = currentActor(c)
	data["Path"] = c.Request.URL.Path
	c.HTML(status, name, data)
}

func notFound(c *gin.Context) {
	render(c, http.StatusNotFound, "core/404.html", gin.H{"Title": "Page not found"})
}

// handleError answers with 404 for missing entities and 500 for everything else.
func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, postEntity.ErrNotFound),
		errors.Is(err, groupEntity.ErrNotFound),
		errors.Is(err, userEntity.ErrNotFound):
		notFound(c)
	default:
		config.Logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err),
		)
		_ = c.Error(err)
		render(c, http.StatusInternalServerError, "core/500.html", gin.H{"Title": "Server error"})
	}
}
