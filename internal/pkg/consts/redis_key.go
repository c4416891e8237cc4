package consts

const (
	TokenDenyKey = "token:deny:"
)
