package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound 记录不存在
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateLike 唯一索引冲突，同一用户重复点赞同一目标
	ErrDuplicateLike = errors.New("duplicate like")
	// ErrLikeMissing 取消点赞时点赞记录不存在
	ErrLikeMissing = errors.New("like not found")
)

// uniqueViolation postgres SQLSTATE unique_violation
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
