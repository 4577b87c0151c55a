package entity

type TokenClaims struct {
	UserId   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

func (c TokenClaims) Viewer() Viewer {
	return Viewer{Id: c.UserId, Role: c.Role}
}

type SelectConversationRequest struct {
	Key string `json:"key" validate:"required"`
}
