package auth

type SignupRequest struct {
	Name     string   `json:"name" binding:"required,min=2,max=150"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required"`
	Roles    []string `json:"roles" binding:"omitempty,dive,self_service_role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type EmailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" binding:"required"`
	NewPassword string `json:"new_password" binding:"required"`
}

type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required"`
}

type InviteUserRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=150"`
	Email        string `json:"email" binding:"required,email"`
	UserType     string `json:"user_type" binding:"required"`
	DepartmentID string `json:"department_id" binding:"required,uuid"`
	Role         string `json:"role"`
}

type SelectOrganizationRequest struct {
	OrganizationID string `json:"organization_id" binding:"required,uuid"`
}

type UserResponse struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Email          string   `json:"email"`
	UserType       string   `json:"user_type"`
	IsVerified     bool     `json:"is_verified"`
	IsActivated    bool     `json:"is_activated"`
	RequestedRoles []string `json:"requested_roles,omitempty"`
}

type MembershipResponse struct {
	OrganizationID   string `json:"organization_id"`
	OrganizationName string `json:"organization_name"`
	Role             string `json:"role"`
}

type LoginResponse struct {
	AccessToken    string               `json:"access_token"`
	TokenType      string               `json:"token_type"`
	ExpiresIn      int64                `json:"expires_in"`
	OrganizationID string               `json:"organization_id,omitempty"`
	User           UserResponse         `json:"user"`
	Organizations  []MembershipResponse `json:"organizations"`
}

type MeResponse struct {
	User           UserResponse         `json:"user"`
	OrganizationID string               `json:"organization_id,omitempty"`
	Organizations  []MembershipResponse `json:"organizations"`
}

type InviteUserResponse struct {
	UserID         string `json:"user_id"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	DepartmentID   string `json:"department_id"`
	Role           string `json:"role"`
	ExistingUser   bool   `json:"existing_user"`
}
