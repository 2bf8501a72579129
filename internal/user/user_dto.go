package user

import "time"

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=ADMIN SALES CUSTOMER_SUPPORT MARKETING OWNER"`
}

type DepartmentRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type UserResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	UserType    string          `json:"user_type"`
	IsVerified  bool            `json:"is_verified"`
	IsActivated bool            `json:"is_activated"`
	Role        string          `json:"role"`
	Departments []DepartmentRef `json:"departments"`
	CreatedAt   time.Time       `json:"created_at"`
}
