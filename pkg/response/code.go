package response

// 业务状态码
const (
	CodeSuccess = 0
	CodeError   = 1

	// 社区模块错误 300xx
	ErrPostNotFound    = 30001
	ErrCommentNotFound = 30002
	ErrTargetNotFound  = 30003
	ErrAlreadyLiked    = 30004
	ErrNotLiked        = 30005
	ErrValidation      = 30006

	// 积分模块错误 400xx
	ErrLeaderboardUnavailable = 40001

	// 系统错误 500xx
	ErrServerInternal  = 50001
	ErrInvalidParam    = 50002
	ErrTooManyRequests = 50003
)
