package model

// Owned 可归属实体。写操作（更新/删除）仅允许归属用户执行，
// 各实体自行声明归属解析规则。
type Owned interface {
	OwnerID() uint64
}
