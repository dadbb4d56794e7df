package textlk

// sendResponse ответ Text.lk на отправку SMS
type sendResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
