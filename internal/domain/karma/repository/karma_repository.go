package repository

import (
	"context"
	"threadboard/internal/domain/karma/model"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// KarmaRepository 积分流水读侧，按时间窗口聚合
type KarmaRepository interface {
	// TopSince 统计 since 之后（含）的积分，只返回净积分为正的用户，
	// 按积分降序、用户名字节序升序排列，与 service 层排名一致
	TopSince(ctx context.Context, since time.Time, limit int) ([]model.Entry, error)
	// SumForUser 统计单个用户 since 之后（含）的净积分
	SumForUser(ctx context.Context, user string, since time.Time) (int64, error)
}

const topSinceQuery = `
SELECT user_name, SUM(points) AS karma
FROM karma_transactions
WHERE created_at >= $1
GROUP BY user_name
HAVING SUM(points) > 0
ORDER BY karma DESC, user_name COLLATE "C" ASC
LIMIT $2`

const sumForUserQuery = `
SELECT COALESCE(SUM(points), 0)
FROM karma_transactions
WHERE user_name = $1 AND created_at >= $2`

type karmaRepository struct {
	db *sqlx.DB
}

func NewKarmaRepository(db *sqlx.DB) KarmaRepository {
	return &karmaRepository{db: db}
}

func (r *karmaRepository) TopSince(ctx context.Context, since time.Time, limit int) ([]model.Entry, error) {
	entries := make([]model.Entry, 0, limit)
	if err := r.db.SelectContext(ctx, &entries, topSinceQuery, since, limit); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *karmaRepository) SumForUser(ctx context.Context, user string, since time.Time) (int64, error) {
	var sum int64
	if err := r.db.GetContext(ctx, &sum, sumForUserQuery, user, since); err != nil {
		return 0, err
	}
	return sum, nil
}

// Writer 积分流水写侧，只在调用方的事务内追加
type Writer interface {
	Append(tx *gorm.DB, entry *model.Transaction) error
}

type writer struct{}

func NewWriter() Writer {
	return writer{}
}

func (writer) Append(tx *gorm.DB, entry *model.Transaction) error {
	return tx.Create(entry).Error
}
