package httpapi

import (
	"errors"
	"net/http"

	"yatube/internal/adapters/httpapi/forms"
	"yatube/internal/adapters/httpapi/middleware"
	groupEntity "yatube/internal/core/group"
	postEntity "yatube/internal/core/post"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	pc        PostUseCase
	groups    GroupUseCase
	users     UserUseCase
	comments  CommentUseCase
	followers FollowerUseCase
}

func NewPostController(pc PostUseCase, groups GroupUseCase, users UserUseCase, comments CommentUseCase, followers FollowerUseCase) *PostController {
	return &PostController{pc: pc, groups: groups, users: users, comments: comments, followers: followers}
}

func (ctl *PostController) Index(c *gin.Context) {
	listing, err := ctl.pc.Index(c.Request.Context(), c.Query("page"))
	if err != nil {
		handleError(c, err)
		return
	}
	render(c, http.StatusOK, "posts/index.html", gin.H{
		"Title": "Последние обновления на сайте",
		"Page":  listing.Page,
		"Posts": listing.Posts,
	})
}

func (ctl *PostController) GroupPosts(c *gin.Context) {
	group, listing, err := ctl.pc.GroupPosts(c.Request.Context(), c.Param("slug"), c.Query("page"))
	if err != nil {
		handleError(c, err)
		return
	}
	render(c, http.StatusOK, "posts/group_list.html", gin.H{
		"Title": "Записи сообщества " + group.String(),
		"Group": group,
		"Page":  listing.Page,
		"Posts": listing.Posts,
	})
}

func (ctl *PostController) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	author, err := ctl.users.GetByUsername(ctx, c.Param("username"))
	if err != nil {
		handleError(c, err)
		return
	}
	listing, err := ctl.pc.AuthorPosts(ctx, author.ID, c.Query("page"))
	if err != nil {
		handleError(c, err)
		return
	}
	stats, err := ctl.followers.Stats(ctx, author.ID)
	if err != nil {
		handleError(c, err)
		return
	}

	actorID, authenticated := middleware.ActorID(c)
	following := false
	if authenticated && actorID != author.ID {
		if following, err = ctl.followers.IsFollowing(ctx, actorID, author.ID); err != nil {
			handleError(c, err)
			return
		}
	}

	render(c, http.StatusOK, "posts/profile.html", gin.H{
		"Title":         "Профайл пользователя " + author.FullName(),
		"Author":        author,
		"Count":         listing.Page.Count,
		"Stats":         stats,
		"Following":     following,
		"IsOtherAuthor": !authenticated || actorID != author.ID,
		"Page":          listing.Page,
		"Posts":         listing.Posts,
	})
}

// PostDetail answers GET and POST alike.
func (ctl *PostController) PostDetail(c *gin.Context) {
	ctx := c.Request.Context()
	p, err := ctl.pc.GetPost(ctx, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	comments, err := ctl.comments.ListComments(ctx, p.ID)
	if err != nil {
		handleError(c, err)
		return
	}
	authorPosts, err := ctl.pc.AuthorPosts(ctx, p.UserID, "1")
	if err != nil {
		handleError(c, err)
		return
	}

	render(c, http.StatusOK, "posts/post_detail.html", gin.H{
		"Title":       "Пост " + p.String(),
		"Post":        p,
		"AuthorCount": authorPosts.Page.Count,
		"Comments":    comments,
		"Form":        &forms.CommentForm{},
	})
}

func (ctl *PostController) CreatePost(c *gin.Context) {
	ctx := c.Request.Context()
	groups, err := ctl.groups.List(ctx)
	if err != nil {
		handleError(c, err)
		return
	}

	form := &forms.PostForm{Errors: forms.Errors{}}
	if c.Request.Method == http.MethodPost {
		form = bindPostForm(c)
		in := form.Validate(groups)
		if form.Errors.Valid() {
			actorID, _ := middleware.ActorID(c)
			_, err := ctl.pc.CreatePost(ctx, actorID, in)
			if err == nil {
				c.Redirect(http.StatusFound, profileURL(middleware.ActorUsername(c)))
				return
			}
			if !addPostError(form, err) {
				handleError(c, err)
				return
			}
		}
	}

	render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "Новый пост",
		"Form":   form,
		"Groups": groups,
		"IsEdit": false,
	})
}

// EditPost lets the author change text, group and image. Anyone else is
// sent back to the post.
func (ctl *PostController) EditPost(c *gin.Context) {
	ctx := c.Request.Context()
	actorID, _ := middleware.ActorID(c)

	p, decision, err := ctl.pc.Authorize(ctx, actorID, c.Param("id"))
	if err != nil {
		handleError(c, err)
		return
	}
	if decision == postEntity.Denied {
		c.Redirect(http.StatusFound, postURL(p.ID))
		return
	}

	groups, err := ctl.groups.List(ctx)
	if err != nil {
		handleError(c, err)
		return
	}

	form := forms.PostFormFrom(p)
	if c.Request.Method == http.MethodPost {
		form = bindPostForm(c)
		in := form.Validate(groups)
		if form.Errors.Valid() {
			_, err := ctl.pc.UpdatePost(ctx, actorID, p, in)
			if err == nil {
				c.Redirect(http.StatusFound, postURL(p.ID))
				return
			}
			if errors.Is(err, postEntity.ErrForbidden) {
				c.Redirect(http.StatusFound, postURL(p.ID))
				return
			}
			if !addPostError(form, err) {
				handleError(c, err)
				return
			}
		}
	}

	render(c, http.StatusOK, "posts/create_post.html", gin.H{
		"Title":  "Редактировать пост",
		"Form":   form,
		"Groups": groups,
		"Post":   p,
		"IsEdit": true,
	})
}

func bindPostForm(c *gin.Context) *forms.PostForm {
	form := &forms.PostForm{}
	if err := c.ShouldBind(form); err != nil {
		form.Errors = forms.FromBinding(err)
	}
	return form
}

// addPostError reports service-level validation failures on the form.
// It returns false for errors that are not the submitter's fault.
func addPostError(form *forms.PostForm, err error) bool {
	switch {
	case errors.Is(err, postEntity.ErrEmptyText):
		form.Errors.Add("text", "This field is required.")
	case errors.Is(err, groupEntity.ErrNotFound):
		form.Errors.Add("group", "Select a valid choice. That choice is not one of the available choices.")
	default:
		return false
	}
	return true
}
