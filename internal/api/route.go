package api

import (
	"Masthead/internal/api/middleware"
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(group *HandlersGroup) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	// 内部调度器走的裸触发路径，部署层面只对内网开放
	r.POST("/rollup", group.RollupHandler.Run)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"Code":    200,
				"Message": "pong",
				"Data":    nil,
			})
		})

		userGroup := apiGroup.Group("/user")
		{
			userGroup.POST("/login", group.UserHandler.Login)
			userGroup.POST("/register", group.UserHandler.Register)

			authGroup := userGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/logout", group.UserHandler.Logout)
				authGroup.GET("/info", group.UserHandler.GetUserInfo)
			}
		}

		articleGroup := apiGroup.Group("/articles")
		{
			articleGroup.GET("/home", group.ArticleHandler.ListHome)
			articleGroup.GET("/search", group.ArticleHandler.SearchArticles)
			articleGroup.GET("/edition/:edition_no", group.ArticleHandler.GetArticleByEditionNo)
			articleGroup.POST("/:article_id/view", group.ArticleHandler.TrackView)
			articleGroup.POST("/:article_id/like", group.ArticleHandler.TrackLike)

			// 撰稿与发布需要编辑或管理员角色
			editorGroup := articleGroup.Group("")
			editorGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleEditor, consts.RoleAdmin))
			{
				editorGroup.POST("", group.ArticleHandler.CreateArticle)
				editorGroup.PUT("/:article_id", group.ArticleHandler.UpdateArticle)
				editorGroup.POST("/:article_id/publish", group.ArticleHandler.PublishArticle)
			}
		}

		commentGroup := apiGroup.Group("/comments")
		{
			commentGroup.GET("/:article_id", group.CommentHandler.ListComments)

			authGroup := commentGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("", group.CommentHandler.CreateComment)
				authGroup.DELETE("/:comment_id", group.CommentHandler.DeleteComment)
			}
		}

		pollGroup := apiGroup.Group("/polls")
		{
			authOptGroup := pollGroup.Group("")
			authOptGroup.Use(middleware.AuthOptionalMiddleware())
			{
				authOptGroup.GET("/:article_id/:block_id", group.PollHandler.GetResults)
			}

			authGroup := pollGroup.Group("")
			authGroup.Use(middleware.AuthMiddleware())
			{
				authGroup.POST("/vote", group.PollHandler.Vote)
			}
		}

		savedGroup := apiGroup.Group("/saved")
		savedGroup.Use(middleware.AuthMiddleware())
		{
			savedGroup.GET("", group.SavedHandler.ListSaved)
			savedGroup.POST("/:article_id", group.SavedHandler.SaveArticle)
			savedGroup.DELETE("/:article_id", group.SavedHandler.UnsaveArticle)
		}

		mediaGroup := apiGroup.Group("/media")
		{
			mediaGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleEditor, consts.RoleAdmin))
			mediaGroup.POST("/upload", group.MediaHandler.Upload)
		}

		opsGroup := apiGroup.Group("/ops")
		opsGroup.Use(middleware.AuthMiddleware(), middleware.CheckRoles(consts.RoleAdmin))
		{
			opsGroup.POST("/rollup", group.RollupHandler.Run)
			opsGroup.GET("/rollup/runs", group.RollupHandler.ListRuns)
		}
	}

	return r
}
