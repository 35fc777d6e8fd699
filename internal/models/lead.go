package models

// NewsletterSubscription is one newsletter sign-up. Duplicate emails are
// accepted.
type NewsletterSubscription struct {
	Email string `bson:"email" json:"email" validate:"required,email"`
}

func NewNewsletterSubscription(email string) (NewsletterSubscription, error) {
	sub := NewsletterSubscription{Email: email}
	if err := Validate(KindNewsletter, sub); err != nil {
		return NewsletterSubscription{}, err
	}
	return sub, nil
}

// VendorApplication text fields may be empty; presence is checked when the
// request is bound.
type VendorApplication struct {
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email" validate:"required,email"`
	StoreName string `bson:"storeName" json:"storeName"`
	Message   string `bson:"message,omitempty" json:"message,omitempty"`
}

func NewVendorApplication(name, email, storeName, message string) (VendorApplication, error) {
	app := VendorApplication{
		Name:      name,
		Email:     email,
		StoreName: storeName,
		Message:   message,
	}
	if err := Validate(KindVendorApplication, app); err != nil {
		return VendorApplication{}, err
	}
	return app, nil
}
