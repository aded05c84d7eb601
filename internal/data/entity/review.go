package entity

type Review struct {
	MovieID     int64   `json:"-"`
	UserName    string  `json:"userName"`
	AvatarEmoji string  `json:"avatarEmoji"`
	Rating      float64 `json:"rating"`
	Comment     string  `json:"comment"`
}
