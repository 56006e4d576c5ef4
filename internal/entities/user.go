package entities

import (
	"time"
)

// User is a registered account. Followers and Following hold user IDs and
// are stored as JSON arrays.
type User struct {
	ID           string    `gorm:"primaryKey;size:36" json:"_id"`
	FullName     string    `gorm:"size:255;not null" json:"fullname"`
	Username     string    `gorm:"uniqueIndex;size:100;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Followers    []string  `gorm:"serializer:json" json:"followers"`
	Following    []string  `gorm:"serializer:json" json:"following"`
	ProfileImg   string    `gorm:"size:512" json:"profileImg"`
	CoverImg     string    `gorm:"size:512" json:"coverImg"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// Profile is the identity payload returned after signup and login.
type Profile struct {
	ID         string   `json:"_id"`
	FullName   string   `json:"fullname"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	Followers  []string `json:"followers"`
	Following  []string `json:"following"`
	ProfileImg string   `json:"profileImg"`
	CoverImg   string   `json:"coverImg"`
}

// Profile returns the public view of the user. Nil id sets are rendered as
// empty arrays.
func (u *User) Profile() Profile {
	followers := u.Followers
	if followers == nil {
		followers = []string{}
	}
	following := u.Following
	if following == nil {
		following = []string{}
	}
	return Profile{
		ID:         u.ID,
		FullName:   u.FullName,
		Username:   u.Username,
		Email:      u.Email,
		Followers:  followers,
		Following:  following,
		ProfileImg: u.ProfileImg,
		CoverImg:   u.CoverImg,
	}
}
