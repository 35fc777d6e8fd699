package models

// Kind identifies a record type independently of where it is stored.
type Kind int

const (
	KindProduct Kind = iota + 1
	KindVendor
	KindNewsletter
	KindVendorApplication
)

func (k Kind) String() string {
	switch k {
	case KindProduct:
		return "product"
	case KindVendor:
		return "vendor"
	case KindNewsletter:
		return "newsletter subscription"
	case KindVendorApplication:
		return "vendor application"
	default:
		return "unknown"
	}
}
