package httpapi

import (
	"context"
	"net/http"
	"time"

	"yatube/internal/adapters/httpapi/middleware"
	commentEntity "yatube/internal/core/comment"
	groupEntity "yatube/internal/core/group"
	postEntity "yatube/internal/core/post"
	userEntity "yatube/internal/core/user"
	followerPort "yatube/internal/ports/follower"
	"yatube/internal/ports/pagecache"
	postPort "yatube/internal/ports/post"
	timelinePort "yatube/internal/ports/timeline"
	userPort "yatube/internal/ports/user"

	"github.com/gin-gonic/gin"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
)

// Inbound ports used by the controllers.

type UserUseCase interface {
	LoginUser(ctx context.Context, username, password string) (*userPort.LoginResponse, error)
	RegisterUser(ctx context.Context, name, family, username, email, password string) (*userEntity.User, error)
	IssueToken(user *userEntity.User) (*userPort.LoginResponse, error)
	GetByUsername(ctx context.Context, username string) (*userEntity.User, error)
}

type GroupUseCase interface {
	List(ctx context.Context) ([]*groupEntity.Group, error)
}

type PostUseCase interface {
	Index(ctx context.Context, rawPage string) (*postPort.Listing, error)
	GroupPosts(ctx context.Context, slug, rawPage string) (*groupEntity.Group, *postPort.Listing, error)
	AuthorPosts(ctx context.Context, authorID uuid.UUID, rawPage string) (*postPort.Listing, error)
	GetPost(ctx context.Context, rawID string) (*postEntity.Post, error)
	CreatePost(ctx context.Context, authorID uuid.UUID, in postPort.PostInput) (*postEntity.Post, error)
	Authorize(ctx context.Context, actorID uuid.UUID, rawID string) (*postEntity.Post, postEntity.Decision, error)
	UpdatePost(ctx context.Context, actorID uuid.UUID, p *postEntity.Post, in postPort.PostInput) (*postEntity.Post, error)
}

type CommentUseCase interface {
	AddComment(ctx context.Context, authorID, postID uuid.UUID, text string) (*commentEntity.Comment, error)
	ListComments(ctx context.Context, postID uuid.UUID) ([]*commentEntity.Comment, error)
}

type FollowerUseCase interface {
	FollowUser(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	UnfollowUser(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	IsFollowing(ctx context.Context, userID, authorID uuid.UUID) (bool, error)
	Stats(ctx context.Context, userID uuid.UUID) (*followerPort.FollowStats, error)
}

type TimelineUseCase interface {
	GetTimelineByUserID(ctx context.Context, userID uuid.UUID, rawPage string) (*timelinePort.Feed, error)
}

// Dependencies is everything the router needs from the outside.
type Dependencies struct {
	Users     UserUseCase
	Tokens    middleware.TokenParser
	Groups    GroupUseCase
	Posts     PostUseCase
	Comments  CommentUseCase
	Followers FollowerUseCase
	Timeline  TimelineUseCase

	PageCache     pagecache.PageCache
	IndexCacheTTL time.Duration
	MediaRoot     string
	SecureCookies bool
	Logger        *zap.Logger
}

func SetupRoutes(deps Dependencies) (*gin.Engine, error) {
	templates, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.SetHTMLTemplate(templates)
	r.Use(middleware.Logger(deps.Logger), gin.Recovery(), middleware.JWTAuthMiddleware(deps.Tokens))
	r.NoRoute(notFound)
	r.NoMethod(func(c *gin.Context) {
		c.String(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})
	if deps.MediaRoot != "" {
		r.Static("/media", deps.MediaRoot)
	}

	uc := NewUserController(deps.Users, deps.SecureCookies)
	pc := NewPostController(deps.Posts, deps.Groups, deps.Users, deps.Comments, deps.Followers)
	cc := NewCommentController(deps.Comments, deps.Posts)
	fc := NewFollowerController(deps.Followers, deps.Users)
	tc := NewTimelineController(deps.Timeline)
	ac := NewAboutController()

	loginRequired := middleware.LoginRequired()

	r.GET("/", middleware.CachePage(deps.PageCache, deps.IndexCacheTTL, "index"), pc.Index)
	r.GET("/group/:slug/", pc.GroupPosts)
	r.GET("/profile/:username/", pc.Profile)
	r.GET("/profile/:username/follow/", loginRequired, fc.FollowUser)
	r.GET("/profile/:username/unfollow/", loginRequired, fc.UnfollowUser)
	r.GET("/follow/", loginRequired, tc.GetTimelineByUserID)

	r.GET("/create/", loginRequired, pc.CreatePost)
	r.POST("/create/", loginRequired, pc.CreatePost)
	r.GET("/posts/:id/", pc.PostDetail)
	r.POST("/posts/:id/", pc.PostDetail)
	r.GET("/posts/:id/edit/", loginRequired, pc.EditPost)
	r.POST("/posts/:id/edit/", loginRequired, pc.EditPost)
	r.POST("/posts/:id/comment/", loginRequired, cc.AddComment)

	auth := r.Group("/auth")
	auth.GET("/signup/", uc.RegisterUser)
	auth.POST("/signup/", uc.RegisterUser)
	auth.GET("/login/", uc.LoginUser)
	auth.POST("/login/", uc.LoginUser)
	auth.GET("/logout/", uc.LogoutUser)
	auth.POST("/logout/", uc.LogoutUser)

	about := r.Group("/about")
	about.GET("/author/", ac.Author)
	about.GET("/tech/", ac.Tech)

	return r, nil
}
