package httpapi

import (
	"net/http"

	"yatube/internal/adapters/httpapi/middleware"

	"github.com/gin-gonic/gin"
)

type TimelineController struct{ tc TimelineUseCase }

func NewTimelineController(tc TimelineUseCase) *TimelineController {
	return &TimelineController{tc: tc}
}

// GetTimelineByUserID renders the posts of everyone the actor follows.
func (ctl *TimelineController) GetTimelineByUserID(c *gin.Context) {
	actorID, _ := middleware.ActorID(c)
	feed, err := ctl.tc.GetTimelineByUserID(c.Request.Context(), actorID, c.Query("page"))
	if err != nil {
		handleError(c, err)
		return
	}
	render(c, http.StatusOK, "posts/follow.html", gin.H{
		"Title":      "Подписки",
		"Page":       feed.Page,
		"Posts":      feed.Posts,
		"PostExists": feed.PostExists,
	})
}
