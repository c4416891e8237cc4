package service

import (
	"Plume/internal/model"
)

// checkOwnership 写操作的归属校验：仅归属用户可以修改或删除实体。
// 无法判定归属时一律拒绝。
func checkOwnership(entity model.Owned, userID uint64) error {
	if entity == nil || userID == 0 {
		return ErrPermissionDenied
	}
	if entity.OwnerID() != userID {
		return ErrPermissionDenied
	}
	return nil
}
