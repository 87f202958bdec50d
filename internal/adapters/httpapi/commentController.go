package httpapi

import (
	"errors"
	"net/http"

	"yatube/internal/adapters/httpapi/forms"
	"yatube/internal/adapters/httpapi/middleware"
	"yatube/internal/config"
	commentEntity "yatube/internal/core/comment"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CommentController struct {
	cc    CommentUseCase
	posts PostUseCase
}

func NewCommentController(cc CommentUseCase, posts PostUseCase) *CommentController {
	return &CommentController{cc: cc, posts: posts}
}

// AddComment always ends on the post page. Invalid text is dropped
// without showing errors.
func (ctl *CommentController) AddComment(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := ctl.posts.GetPost(ctx, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	actorID, _ := middleware.ActorID(c)

	var form forms.CommentForm
	if err := c.ShouldBind(&form); err != nil {
		config.Logger.Warn("Discarding invalid comment",
			zap.String("postID", p.ID.String()),
			zap.String("userID", actorID.String()),
			zap.Error(err),
		)
		c.Redirect(http.StatusFound, postURL(p.ID))
		return
	}

	if _, err := ctl.cc.AddComment(ctx, actorID, p.ID, form.Text); err != nil {
		if !errors.Is(err, commentEntity.ErrEmptyText) {
			handleError(c, err)
			return
		}
		config.Logger.Warn("Discarding empty comment",
			zap.String("postID", p.ID.String()),
			zap.String("userID", actorID.String()),
		)
	}
	c.Redirect(http.StatusFound, postURL(p.ID))
}
