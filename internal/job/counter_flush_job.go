package job

import (
	"Masthead/internal/pkg/consts"
	"Masthead/internal/pkg/logger"
	"Masthead/internal/pkg/redis"
	"Masthead/internal/pkg/util"
	"Masthead/internal/repository"
	"context"
	log "log/slog"
	"strconv"

	"github.com/google/uuid"
)

// CounterFlushJob 将 Redis 中暂存的浏览/点赞增量刷回数据库累计字段。
// 脏集合先改名为 processing 快照，刷库期间新产生的增量落在新集合里，
// 下一轮再处理。
type CounterFlushJob struct {
	articleRepo repository.ArticleRepo
}

func NewCounterFlushJob(articleRepo repository.ArticleRepo) *CounterFlushJob {
	return &CounterFlushJob{
		articleRepo: articleRepo,
	}
}

func (s *CounterFlushJob) Run() {
	traceID := "job-counter-" + uuid.NewString()
	ctx := context.WithValue(context.Background(), logger.TraceIDKey, traceID)

	processingKey := consts.ArticleDirtyKey + ":processing"
	err := redis.Rename(ctx, consts.ArticleDirtyKey, processingKey)
	if err != nil {
		return
	}

	tempSet, err := redis.GetSet(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "get article dirty set error", "err", err)
		return
	}

	articleIDs, err := util.StrSliceToUint64Slice(tempSet)
	if err != nil {
		log.ErrorContext(ctx, "convert article set to int slice error", "err", err)
		return
	}

	flushed := 0
	for _, aid := range articleIDs {
		idStr := strconv.FormatUint(aid, 10)

		views := getDelCounter(ctx, consts.ArticleViewKey+idStr)
		likes := getDelCounter(ctx, consts.ArticleLikeKey+idStr)
		if views == 0 && likes == 0 {
			continue
		}

		err = s.articleRepo.IncrementCounters(ctx, aid, views, likes)
		if err != nil {
			// 刷库失败则把增量补写回去，留待下一轮
			log.ErrorContext(ctx, "flush article counters error", "aid", aid, "err", err)
			if views > 0 {
				_ = redis.IncrBy(ctx, consts.ArticleViewKey+idStr, views)
			}
			if likes > 0 {
				_ = redis.IncrBy(ctx, consts.ArticleLikeKey+idStr, likes)
			}
			_ = redis.SAdd(ctx, consts.ArticleDirtyKey, aid)
			continue
		}
		flushed++
	}

	err = redis.DeleteKey(ctx, processingKey)
	if err != nil {
		log.ErrorContext(ctx, "delete article processing set error", "err", err)
	}

	log.InfoContext(ctx, "flush article counters success",
		"dirty_count", len(articleIDs),
		"flushed_count", flushed)
}

func getDelCounter(ctx context.Context, key string) int64 {
	val, err := redis.GetDelValue(ctx, key)
	if err != nil || val == "" {
		return 0
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
