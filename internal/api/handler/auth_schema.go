package handler

import "encoding/json"

// Auth requests arrive as a JSON envelope whose action field selects one of
// the schemas below. Each schema is bound and checked before dispatch; the
// field names are the wire contract of the original front-end.

const (
	actionRegister         = "register"
	actionLogin            = "login"
	actionSaveProfile      = "save_profile"
	actionChangePassword   = "change_password"
	actionSetAdmin         = "set_admin"
	actionGetAllUsers      = "get_all_users"
	actionAdminSetPassword = "admin_set_password"
	actionResetPassword    = "reset_password"
)

type authEnvelope struct {
	Action string `json:"action"`
}

type registerRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type saveProfileRequest struct {
	Username string          `json:"username"`
	Profile  json.RawMessage `json:"profile"`
}

type changePasswordRequest struct {
	Username    string `json:"username"`
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type setAdminRequest struct {
	AdminUsername  string `json:"admin_username"`
	TargetUsername string `json:"target_username"`
	MakeAdmin      bool   `json:"make_admin"`
}

type getAllUsersRequest struct {
	AdminUsername string `json:"admin_username"`
}

type adminSetPasswordRequest struct {
	AdminUsername  string `json:"admin_username"`
	TargetUsername string `json:"target_username"`
	NewPassword    string `json:"new_password"`
}

type resetPasswordRequest struct {
	Email string `json:"email"`
}

type registerResponse struct {
	Success  bool            `json:"success"`
	UserID   int64           `json:"userId"`
	Username string          `json:"username"`
	Profile  json.RawMessage `json:"profile"`
}

type loginResponse struct {
	Success  bool            `json:"success"`
	UserID   int64           `json:"userId"`
	Username string          `json:"username"`
	Profile  json.RawMessage `json:"profile"`
	IsAdmin  bool            `json:"isAdmin"`
	Token    string          `json:"token,omitempty"`
}

type successResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
