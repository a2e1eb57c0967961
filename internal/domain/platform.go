package domain

type Platform struct {
	ID             uint    `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"column:name;uniqueIndex;not null" json:"name"`
	PriorityRating float64 `gorm:"column:priority_rating;not null;default:0" json:"priority_rating"`
	RequiresHandle bool    `gorm:"column:requires_handle;not null;default:true" json:"requires_handle"`
	RequiresLink   bool    `gorm:"column:requires_link;not null;default:true" json:"requires_link"`

	SocialMediaAccounts []SocialMedia `gorm:"foreignKey:PlatformID" json:"social_media_accounts,omitempty"`
}

func (Platform) TableName() string { return "platforms" }
