package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createTaskRequest struct {
	Title       string     `json:"title"       validate:"required"`
	Description string     `json:"description"`
	Status      string     `json:"status"      validate:"omitempty,oneof=todo in-progress review completed"`
	Priority    string     `json:"priority"    validate:"omitempty,oneof=low medium high"`
	AssignedTo  string     `json:"assigned_to"`
	DueDate     *time.Time `json:"due_date"`
	Tags        []string   `json:"tags"`
}

// updateTaskRequest is a partial update: absent fields leave the stored value
// untouched. clear_due_date removes the due date, since a JSON null is not
// distinguishable from an absent field here.
type updateTaskRequest struct {
	Title        *string    `json:"title"       validate:"omitempty,min=1"`
	Description  *string    `json:"description"`
	Status       *string    `json:"status"      validate:"omitempty,oneof=todo in-progress review completed"`
	Priority     *string    `json:"priority"    validate:"omitempty,oneof=low medium high"`
	AssignedTo   *string    `json:"assigned_to"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
	Tags         []string   `json:"tags"`
}

// --- Response types ---
// These are intentionally separate from domain types so the JSON contract is
// not coupled to internal model changes.

type taskResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	AssignedTo  string     `json:"assigned_to,omitempty"`
	CreatedBy   string     `json:"created_by"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Tags        []string   `json:"tags,omitempty"`
}

type taskListResponse struct {
	Data  []taskResponse `json:"data"`
	Total int            `json:"total"`
}

type deletedResponse struct {
	Deleted bool `json:"deleted"`
}
