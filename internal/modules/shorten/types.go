package shorten

import "errors"

// CreateInput carries the fields of a shorten request. Short, Nmbr and Descr
// are optional; whatever is missing gets generated or derived.
type CreateInput struct {
	Long  string
	Short string
	Nmbr  string
	Descr string
}

var (
	// ErrMissingURL means no long URL was supplied.
	ErrMissingURL = errors.New("missing long url")
	// ErrURLTooLong means the long URL exceeds the configured cap.
	ErrURLTooLong = errors.New("long url exceeds configured maximum")
	// ErrBadAlias means a requested custom alias is not alphanumeric or too long.
	ErrBadAlias = errors.New("invalid custom alias")
	// ErrConflict is a uniqueness violation surfaced by the store during
	// insert, i.e. a concurrent request won the alias or tag between our
	// check and the write.
	ErrConflict = errors.New("mapping conflicts with an existing one")
	// ErrNotFound means no mapping exists for the alias.
	ErrNotFound = errors.New("mapping not found")
)

// createRequest binds the shorten form/JSON body.
type createRequest struct {
	LongURL     string `form:"long-url"    json:"long-url"`
	Description string `form:"description" json:"description"`
	Nmbr        string `form:"nmbr"        json:"nmbr"`
	ShortURL    string `form:"short-url"   json:"short-url"`
}

// editRequest binds the edit form body.
type editRequest struct {
	LongURL     string `form:"long-url"    json:"long-url"`
	Description string `form:"description" json:"description"`
}

// mappingResponse is the admin JSON projection of a mapping.
type mappingResponse struct {
	Long    string `json:"long"`
	Short   string `json:"short"`
	Nmbr    string `json:"nmbr,omitempty"`
	Descr   string `json:"descr,omitempty"`
	Created string `json:"created"`
}
