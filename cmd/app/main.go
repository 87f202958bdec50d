package main

import (
	"context"
	"os"

	dbadapter "yatube/internal/adapters/database"
	"yatube/internal/adapters/httpapi"
	mediaadapter "yatube/internal/adapters/media"
	natsadapter "yatube/internal/adapters/nats"
	redisadapter "yatube/internal/adapters/redis"
	"yatube/internal/config"
	commentapp "yatube/internal/core/comment/service"
	followerapp "yatube/internal/core/follower/service"
	groupapp "yatube/internal/core/group/service"
	postapp "yatube/internal/core/post/service"
	timelineapp "yatube/internal/core/timeline/service"
	userapp "yatube/internal/core/user/service"
	"yatube/internal/ports/events"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const pageCachePrefix = "yatube:page:"

func main() {
	config.InitLogger(os.Getenv("APP_ENV"))
	settings := config.Init()

	if settings.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	config.InitDB(settings)
	if err := dbadapter.Migrate(config.DB); err != nil {
		config.Logger.Fatal("Error during migrations", zap.Error(err))
	}
	config.Logger.Info("Database migrations completed")

	ctx := context.Background()
	config.InitRedis(ctx, settings)
	config.InitNATS(settings)
	defer closeResources(config.Logger)

	var publisher events.Publisher = events.NopPublisher{}
	if config.NATSConn != nil {
		publisher = natsadapter.NewEventPublisherNATS(config.NATSConn)
	}

	userRepo := dbadapter.NewUserRepositoryDatabase(config.DB)
	groupRepo := dbadapter.NewGroupRepositoryDatabase(config.DB)
	postRepo := dbadapter.NewPostRepositoryDatabase(config.DB)
	commentRepo := dbadapter.NewCommentRepositoryDatabase(config.DB)
	followerRepo := dbadapter.NewFollowerRepositoryDatabase(config.DB)
	timelineRepo := dbadapter.NewTimelineRepositoryDatabase(config.DB)
	pageCache := redisadapter.NewPageCacheRepositoryRedis(config.RedisClient, pageCachePrefix)
	storage := mediaadapter.NewLocalStorage(settings.MediaRoot)

	userSvc := userapp.NewUserService(userRepo, []byte(settings.JWTSecret))
	groupSvc := groupapp.NewGroupService(groupRepo)
	postSvc := postapp.NewPostService(postRepo, groupRepo, storage, publisher)
	commentSvc := commentapp.NewCommentService(commentRepo, postRepo, publisher)
	followerSvc := followerapp.NewFollowerService(followerRepo, publisher)
	timelineSvc := timelineapp.NewTimelineService(timelineRepo)

	seedGroups(ctx, groupSvc, settings.SeedGroups)

	r, err := httpapi.SetupRoutes(httpapi.Dependencies{
		Users:         userSvc,
		Tokens:        userSvc,
		Groups:        groupSvc,
		Posts:         postSvc,
		Comments:      commentSvc,
		Followers:     followerSvc,
		Timeline:      timelineSvc,
		PageCache:     pageCache,
		IndexCacheTTL: settings.IndexCacheTTL,
		MediaRoot:     settings.MediaRoot,
		SecureCookies: settings.Env == "production",
		Logger:        config.Logger,
	})
	if err != nil {
		config.Logger.Fatal("Error building router", zap.Error(err))
	}

	config.Logger.Info("App is running...", zap.String("port", settings.Port))
	if err := r.Run(":" + settings.Port); err != nil {
		config.Logger.Fatal("Server failed to start", zap.Error(err))
	}
}

// seedGroups creates the configured groups that do not exist yet.
func seedGroups(ctx context.Context, svc *groupapp.GroupService, seeds []config.GroupSeed) {
	for _, seed := range seeds {
		_, created, err := svc.EnsureGroup(ctx, seed.Slug, seed.Title, "")
		if err != nil {
			config.Logger.Error("Error seeding group", zap.String("slug", seed.Slug), zap.Error(err))
			continue
		}
		if created {
			config.Logger.Info("Group seeded", zap.String("slug", seed.Slug))
		}
	}
}

func closeResources(logger *zap.Logger) {
	if config.NATSConn != nil {
		if err := config.NATSConn.Drain(); err != nil {
			logger.Error("Error draining NATS connection", zap.Error(err))
		}
	}

	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection", zap.Error(err))
	}

	sqlDB, err := config.DB.DB()
	if err != nil {
		logger.Error("Error getting raw DB", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
	}
}
