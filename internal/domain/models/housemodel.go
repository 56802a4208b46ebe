// internal/domain/models/housemodel.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HouseModel is a manufactured-home product listing shown on the public
// models page. Rows are authored out of band; this system only reads them.
type HouseModel struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Slug          string             `bson:"slug" json:"slug"`
	Name          string             `bson:"name" json:"name"`
	NameES        string             `bson:"name_es,omitempty" json:"name_es,omitempty"`
	Description   string             `bson:"description,omitempty" json:"description,omitempty"`
	DescriptionES string             `bson:"description_es,omitempty" json:"description_es,omitempty"`
	BasePrice     int64              `bson:"base_price,omitempty" json:"base_price,omitempty"`
	SquareFeet    int                `bson:"square_feet,omitempty" json:"square_feet,omitempty"`
	DisplayOrder  int                `bson:"display_order" json:"display_order"`
	Visible       bool               `bson:"visible" json:"visible"`
	PrimaryImage  string             `bson:"primary_image,omitempty" json:"primary_image,omitempty"`
	CreatedAt     time.Time          `bson:"created_at" json:"created_at"`
}
