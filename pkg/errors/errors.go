package errors

import "errors"

// ErrOptimisticLock 乐观锁冲突：记录已被其他操作修改
var ErrOptimisticLock = errors.New("数据已被其他操作修改，请刷新后重试")

// ErrDuplicateCode 唯一编号冲突：并发生成了相同的预订/订单编号
// 作为每日序号互斥锁之外的最后防线（依赖数据库唯一约束）
var ErrDuplicateCode = errors.New("编号已存在，请重试")
