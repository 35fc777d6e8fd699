package models

import (
	"go.mongodb.org/mongo-driver/bson"
)

// InternalIDKey is the store-assigned identifier that never leaves the service.
const InternalIDKey = "_id"

func withoutInternalID(raw bson.M) bson.M {
	doc := make(bson.M, len(raw))
	for k, v := range raw {
		if k == InternalIDKey {
			continue
		}
		doc[k] = v
	}
	return doc
}

// missingKeys treats an explicit null the same as an absent key.
func missingKeys(doc bson.M, keys ...string) []string {
	var missing []string
	for _, k := range keys {
		if v, ok := doc[k]; !ok || v == nil {
			missing = append(missing, k)
		}
	}
	return missing
}

func setDefault(doc bson.M, key string, value any) {
	if v, ok := doc[key]; !ok || v == nil {
		doc[key] = value
	}
}

func remarshal(doc bson.M, out any) error {
	data, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(data, out)
}
