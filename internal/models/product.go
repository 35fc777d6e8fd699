package models

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultProductRating = 4.6

// Product is a marketplace listing. VendorID is a soft reference and is never
// resolved against the vendor collection. Unset optional text renders as null.
type Product struct {
	Title       string  `bson:"title" json:"title"`
	Description *string `bson:"description,omitempty" json:"description"`
	Price       float64 `bson:"price" json:"price" validate:"gte=0"`
	ImageURL    *string `bson:"imageUrl,omitempty" json:"imageUrl"`
	Category    string  `bson:"category" json:"category"`
	VendorID    *string `bson:"vendorId,omitempty" json:"vendorId"`
	InStock     bool    `bson:"inStock" json:"inStock"`
	Rating      float64 `bson:"rating" json:"rating" validate:"gte=0,lte=5"`
}

// DecodeProduct coerces a stored document into a Product. The store id is
// dropped, absent optional fields take their defaults and the result is
// validated.
func DecodeProduct(raw bson.M) (Product, error) {
	doc := withoutInternalID(raw)

	if missing := missingKeys(doc, "title", "price", "category"); len(missing) > 0 {
		return Product{}, missingField(KindProduct, missing...)
	}

	setDefault(doc, "inStock", true)
	setDefault(doc, "rating", DefaultProductRating)

	// legacy documents reference vendors by ObjectID
	if id, ok := doc["vendorId"].(primitive.ObjectID); ok {
		doc["vendorId"] = id.Hex()
	}

	var p Product
	if err := remarshal(doc, &p); err != nil {
		return Product{}, fmt.Errorf("decode product: %w", err)
	}

	if err := Validate(KindProduct, p); err != nil {
		return Product{}, err
	}

	return p, nil
}
