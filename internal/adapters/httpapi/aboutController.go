package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AboutController struct{}

func NewAboutController() *AboutController { return &AboutController{} }

func (ctl *AboutController) Author(c *gin.Context) {
	render(c, http.StatusOK, "about/author.html", gin.H{"Title": "Об авторе"})
}

func (ctl *AboutController) Tech(c *gin.Context) {
	render(c, http.StatusOK, "about/tech.html", gin.H{"Title": "Технологии"})
}
