package consts

const (
	MimePrefixImage = "image"
)

const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

const (
	RoleAdmin  = "ADMIN"
	RoleEditor = "EDITOR"
)
