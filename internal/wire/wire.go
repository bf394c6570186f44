package wire

import (
	"Masthead/internal/api"
	"Masthead/internal/api/config"
	"Masthead/internal/api/handler"
	"Masthead/internal/job"
	"Masthead/internal/pkg/cron"
	"Masthead/internal/pkg/es"
	"Masthead/internal/pkg/kafka"
	mongopkg "Masthead/internal/pkg/mongo"
	"Masthead/internal/repository"
	"Masthead/internal/rollup"
	"Masthead/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// ApplicationContainer 封装了应用运行所需的所有顶级组件
type ApplicationContainer struct {
	Router       *gin.Engine
	DB           *gorm.DB
	CronMgr      *cron.Manager
	KafkaManager *kafka.ConsumerManager
}

func BuildApplication(db *gorm.DB, mongoDB *mongo.Database, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	articleRepo := repository.NewArticleRepository(db)
	snapshotRepo := repository.NewSnapshotRepository(db)
	commentRepo := repository.NewCommentRepo(db)
	pollRepo := repository.NewPollRepo(db)
	savedRepo := repository.NewSavedRepo(db)
	rollupStore := repository.NewRollupStore(db)
	rollupRunRepo := mongopkg.NewRollupRunRepo(mongoDB)
	articleESRepo := es.NewArticleRepo(es.Client)

	rollupEngine := rollup.NewEngine(
		rollupStore, rollupStore, rollupStore,
		cfg.Rollup.BatchThreshold, cfg.Rollup.PageSize,
	)

	userService := service.NewUserService(userRepo)
	articleService := service.NewArticleService(articleRepo, articleESRepo)
	commentService := service.NewCommentService(commentRepo, articleRepo)
	pollService := service.NewPollService(pollRepo, articleRepo)
	savedService := service.NewSavedService(savedRepo, articleRepo)
	rollupService := service.NewRollupService(rollupEngine, snapshotRepo, rollupRunRepo, cfg.Rollup.RetentionDays)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		ArticleHandler: handler.NewArticleHandler(articleService),
		CommentHandler: handler.NewCommentHandler(commentService),
		PollHandler:    handler.NewPollHandler(pollService),
		SavedHandler:   handler.NewSavedHandler(savedService),
		MediaHandler:   handler.NewMediaHandler(),
		RollupHandler:  handler.NewRollupHandler(rollupService),
	}

	router := api.SetupRouter(handlers)

	cronMgr := cron.NewCronManager(
		job.NewRollupJob(rollupService),
		job.NewCounterFlushJob(articleRepo),
	)

	kafkaMgr, err := kafka.NewConsumerManager(cfg, articleService)
	if err != nil {
		return nil, err
	}

	return &ApplicationContainer{
		Router:       router,
		DB:           db,
		CronMgr:      cronMgr,
		KafkaManager: kafkaMgr,
	}, nil
}
