package responses

import "time"

// Response is the uniform success envelope.
type Response[T any] struct {
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	Data      T         `json:"data,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

func Ok[T any](data T) *Response[T] {
	return &Response[T]{
		Status:    "success",
		Data:      data,
		Timestamp: time.Now().UTC(),
	}
}

func OkMsg[T any](data T, message string) *Response[T] {
	res := Ok(data)
	res.Message = message
	return res
}
