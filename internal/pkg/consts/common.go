package consts

const (
	MimePrefixImage = "image"
)

const (
	CtxUserIDKey = "user_id"
)
