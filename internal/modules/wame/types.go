package wame

import "errors"

// ErrBadPhone rejects phone numbers that do not carry at least ten digits.
var ErrBadPhone = errors.New("phone number must contain at least 10 digits")

type createRequest struct {
	Phone string `form:"phone" json:"phone"`
	Text  string `form:"text" json:"text"`
	Name  string `form:"name" json:"name"`
}
