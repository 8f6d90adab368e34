package dto

// CreatedResponse is returned by every create endpoint.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
