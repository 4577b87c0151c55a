package entity

type Role string

const (
	RoleOperator Role = "operator"
	RoleUser     Role = "user"
)

func (r Role) Valid() bool {
	return r == RoleOperator || r == RoleUser
}

type User struct {
	Id        int64  `bson:"_id" json:"id"`
	Username  string `bson:"username" json:"username"`
	Email     string `bson:"email" json:"email"`
	Role      Role   `bson:"role" json:"role"`
	AvatarUrl string `bson:"avatarurl,omitempty" json:"avatarurl,omitempty"`
}

type UserIndexFilter struct {
	Ids   []int64
	Limit int
	Page  int
}

// Viewer is the authenticated caller a request is served for.
type Viewer struct {
	Id   int64
	Role Role
}
