package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	NotFound            = 404
	Conflict            = 409
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserBan             = errors.New("用户已被封禁")
	ErrUserUsernameExist   = errors.New("用户名已存在")
	ErrPasswordIncorrect   = errors.New("密码错误")
	ErrArticleNotFound     = errors.New("文章不存在")
	ErrEditionNoExist      = errors.New("期号已存在")
	ErrArticleNotPublished = errors.New("文章未发布")
	ErrCommentNotFound     = errors.New("评论不存在")
	ErrActionDuplicate     = errors.New("重复操作")
	ErrFileNotSupported    = errors.New("不支持的文件类型")
	ErrRollupInProgress    = errors.New("统计汇总正在运行中")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:        BadRequest,
	ErrUserNotFound:        NotFound,
	ErrUserBan:             Unauthorized,
	ErrUserUsernameExist:   BadRequest,
	ErrPasswordIncorrect:   Unauthorized,
	ErrArticleNotFound:     NotFound,
	ErrEditionNoExist:      BadRequest,
	ErrArticleNotPublished: NotFound,
	ErrCommentNotFound:     NotFound,
	ErrActionDuplicate:     BadRequest,
	ErrFileNotSupported:    BadRequest,
	ErrRollupInProgress:    Conflict,
	UnauthorizedError:      Unauthorized,
	UnExpectedError:        InternalServerError,
}
