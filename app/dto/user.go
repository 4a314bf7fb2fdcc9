package dto

type EditUserRequest struct {
	OldPassword string `json:"oldPassword"`
	NewUsername string `json:"newUsername"`
	NewEmail    string `json:"newEmail"`
	NewPassword string `json:"newPassword"`
}

type AdminEditUserRequest struct {
	UserID      uint   `json:"userID"`
	NewUsername string `json:"newUsername"`
	NewEmail    string `json:"newEmail"`
	NewPassword string `json:"newPassword"`
}

type DeleteUserRequest struct {
	Password string `json:"password"`
}
