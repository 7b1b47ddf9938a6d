package wsmodels

type ServerMessage struct {
	ToUserID string `json:"-"`
	Time     string `json:"time"`
	Code     string `json:"code"`
	Msg      string `json:"msg"`
}

const (
	CodeUnreadCount = "UNREAD_COUNT"
	CodeNewResponse = "NEW_RESPONSE"
)
