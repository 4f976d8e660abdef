package domain

type Response struct {
	ChatID int64
	Text   string
	Media  *MediaResult
}
