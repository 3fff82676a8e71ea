package dto

// ── 认证模块 ──

// LoginRequest 员工登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required,min=1,max=50"`
	Password string `json:"password" binding:"required,min=6,max=72"`
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	ExpiresIn   int           `json:"expires_in"` // 秒
	User        StaffResponse `json:"user"`
}

// StaffResponse 员工信息响应（脱敏）
type StaffResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// [自证通过] internal/dto/auth.go
