// Package api defines the JSON request and response bodies of the HTTP API.
package api

// ErrorResponse is returned for every rejected request.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is a plain confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthResponse reports store connectivity.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// AuthSelfTestResponse reports whether password hashing works on this host.
type AuthSelfTestResponse struct {
	HashWorks   bool   `json:"hash_works"`
	VerifyWorks *bool  `json:"verify_works,omitempty"`
	HashPreview string `json:"hash_preview,omitempty"`
	Error       string `json:"error,omitempty"`
}

// SignupRequest is the body of POST /signup.
// Fields are pointers so that a missing field can be told apart from an empty string.
type SignupRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// SignupResponse is returned after a user has been created.
type SignupResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    *string `json:"email" binding:"required"`
	Password *string `json:"password" binding:"required"`
}

// LoginResponse is returned after a successful login.
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// User is the public view of an account. It never carries the password hash.
type User struct {
	Email string `json:"email"`
}

// Task is the public view of a task.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CreateTaskRequest is the body of POST /tasks.
type CreateTaskRequest struct {
	Title     *string `json:"title" binding:"required"`
	Completed *bool   `json:"completed"`
	UserEmail *string `json:"user_email" binding:"required"`
}

// CreateTaskResponse is returned after a task has been created.
type CreateTaskResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// UpdateTaskParams holds the optional query parameters of PUT /tasks/{task_id}.
type UpdateTaskParams struct {
	Completed *bool   `form:"completed,omitempty" json:"completed,omitempty"`
	Title     *string `form:"title,omitempty" json:"title,omitempty"`
}
