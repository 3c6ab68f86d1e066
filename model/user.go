package model

// User holds the local profile for a firebase identity. Private account
// columns (mail, confirmation state) live only in the person table and are
// never selected into this struct, so they cannot leak into a response.
type User struct {
	Id       string `db:"firebase_id" json:"id"`
	UserName string `db:"user_name" json:"userName"`
	Profile  string `db:"profile" json:"profile"`
	Avatar   string `db:"-" json:"avatar,omitempty"`
}
