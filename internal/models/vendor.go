package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

const DefaultVendorRating = 4.5

type Vendor struct {
	Name        string     `bson:"name" json:"name"`
	LogoURL     *string    `bson:"logoUrl,omitempty" json:"logoUrl"`
	Description *string    `bson:"description,omitempty" json:"description"`
	Rating      float64    `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
	Categories  StringList `bson:"categories" json:"categories"`
	IsVerified  bool       `bson:"isVerified" json:"isVerified"`
}

func DecodeVendor(raw bson.M) (Vendor, error) {
	doc := withoutInternalID(raw)

	if missing := missingKeys(doc, "name"); len(missing) > 0 {
		return Vendor{}, missingField(KindVendor, missing...)
	}

	setDefault(doc, "rating", DefaultVendorRating)
	setDefault(doc, "categories", []string{})
	setDefault(doc, "isVerified", false)

	var v Vendor
	if err := remarshal(doc, &v); err != nil {
		return Vendor{}, fmt.Errorf("decode vendor: %w", err)
	}

	if err := Validate(KindVendor, v); err != nil {
		return Vendor{}, err
	}

	return v, nil
}
