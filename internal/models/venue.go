package models

import "github.com/uptrace/bun"

type Venue struct {
	bun.BaseModel `bun:"table:venues,alias:v"`

	ID                 int64    `bun:"id,pk,autoincrement" json:"id"`
	Name               string   `bun:"name,notnull,unique:venues_name_city_key" json:"name"`
	Genres             []string `bun:"genres,type:jsonb,notnull" json:"genres"`
	Address            string   `bun:"address" json:"address"`
	City               string   `bun:"city,unique:venues_name_city_key" json:"city"`
	State              string   `bun:"state" json:"state"`
	Phone              string   `bun:"phone" json:"phone"`
	Website            string   `bun:"website" json:"website"`
	FacebookLink       string   `bun:"facebook_link" json:"facebook_link"`
	ImageLink          string   `bun:"image_link" json:"image_link"`
	SeekingTalent      bool     `bun:"seeking_talent,notnull" json:"seeking_talent"`
	SeekingDescription string   `bun:"seeking_description" json:"seeking_description"`

	Shows []*Show `bun:"rel:has-many,join:id=venue_id" json:"-"`
}
