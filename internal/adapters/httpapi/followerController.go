package httpapi

import (
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
)

type FollowerController struct {
	fc    FollowerUseCase
	users UserUseCase
}

func NewFollowerController(fc FollowerUseCase, users UserUseCase) *FollowerController {
	return &FollowerController{fc: fc, users: users}
}

func (ctl *FollowerController) FollowUser(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := ctl.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	actorID, _ := middleware.ActorID(c)
	if _, err := ctl.fc.FollowUser(ctx, actorID, author.ID); err != nil {
		handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}

func (ctl *FollowerController) UnfollowUser(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := ctl.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	actorID, _ := middleware.ActorID(c)
	if _, err := ctl.fc.UnfollowUser(ctx, actorID, author.ID); err != nil {
		handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, profileURL(author.Username))
}
