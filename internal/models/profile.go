// internal/models/profile.go
package models

// Profile is a simulated local identity. There is no authentication; the
// session middleware switches between seeded profiles and Role gates the
// admin surface.
type Profile struct {
	BaseModel
	DisplayName string `json:"display_name" gorm:"size:100;not null"`
	AvatarURL   string `json:"avatar_url" gorm:"size:500"`
	Bio         string `json:"bio" gorm:"size:500"`
	Role        Role   `json:"role" gorm:"type:varchar(20);not null;default:'shopper'"`
}

func (p *Profile) IsOwner() bool {
	return p.Role == RoleOwner
}
