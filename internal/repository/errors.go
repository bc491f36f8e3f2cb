package repository

import "errors"

// ErrDuplicateKey 唯一索引冲突（E11000），由各仓储统一转换后抛出，
// 业务层据此识别并发竞争下的重复写入
var ErrDuplicateKey = errors.New("duplicate key")
