package api

import "Masthead/internal/api/handler"

// HandlersGroup 封装了所有已初始化的 Handler 实例
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	ArticleHandler *handler.ArticleHandler
	CommentHandler *handler.CommentHandler
	PollHandler    *handler.PollHandler
	SavedHandler   *handler.SavedHandler
	MediaHandler   *handler.MediaHandler
	RollupHandler  *handler.RollupHandler
}
