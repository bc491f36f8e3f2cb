package consts

const (
	// TokenRevokedKey 已注销 Token 签名的黑名单前缀
	TokenRevokedKey = "token:revoked:"

	// AdminStatsKey 管理端统计快照缓存
	AdminStatsKey = "admin:stats:snapshot"
)
