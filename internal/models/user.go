package models

// User represents a user in the system
type User struct {
	Username string `json:"username" db:"username"`
}

// UserSeed is a user record as it appears in seed fixtures
type UserSeed struct {
	Username  string `yaml:"username"`
	Name      string `yaml:"name"`
	AvatarURL string `yaml:"avatar_url"`
}
