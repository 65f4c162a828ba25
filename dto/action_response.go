package dto

// ActionResponse is the uniform envelope returned by every endpoint. Errors
// cross the API boundary inside it instead of as bare status text.
type ActionResponse[T any] struct {
	Success bool      `json:"success"`
	Data    *T        `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func SuccessResponse[T any](data T) ActionResponse[T] {
	return ActionResponse[T]{Success: true, Data: &data}
}

// PaginatedResponse is the listing payload: one page of rows plus the
// next-page indicator the pagination links are built from.
type PaginatedResponse[T any] struct {
	Items      []T  `json:"items"`
	IsNext     bool `json:"isNext"`
	TotalCount int  `json:"totalCount"`
}
