package domain

type UserRole string

const (
	RoleUser             UserRole = "USER"
	RoleCreator          UserRole = "CREATOR"
	RoleModerator        UserRole = "MODERATOR"
	RoleCommunityManager UserRole = "COMMUNITY_MANAGER"
	RoleAdmin            UserRole = "ADMIN"
)

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Username  string   `json:"username"`
	Email     string   `json:"email"`
	Avatar    string   `json:"avatar"`
	Role      UserRole `json:"role"`
	Bio       string   `json:"bio,omitempty"`
	Interests []string `json:"interests"`
	Followers int64    `json:"followers"`
	Following int64    `json:"following"`
	Badges    []string `json:"badges"`
}
