package consts

const (
	ArticleViewKey  = "article:view:"
	ArticleLikeKey  = "article:like:"
	ArticleDirtyKey = "article:dirty"
)

const (
	RollupRunLock   = "lock:rollup:run"
	TokenRevokedKey = "token:revoked:"
)
