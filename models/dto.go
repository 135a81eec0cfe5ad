package models

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type SetRoleRequest struct {
	Role UserRole `json:"role" validate:"required,oneof=Reader Writer Coordinator Moderator"`
}

type UserListParams struct {
	Role UserRole `form:"role"`
}

type CreateColumnRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	WriterIDs    []uint `json:"writers"`
	ModeratorIDs []uint `json:"moderators"`
}

type ColumnListParams struct {
	Page  int `form:"page,default=1"`
	Limit int `form:"limit,default=10"`
}

type ColumnDetailResponse struct {
	Column     Column `json:"column"`
	Subscribed bool   `json:"subscribed"`
}

type CreatePostRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=100"`
	Text     string `json:"text" validate:"required"`
	ColumnID uint   `json:"column"`
}

type PostDetailResponse struct {
	Post Post   `json:"post"`
	HTML string `json:"html"`
}
