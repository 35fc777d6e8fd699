package store

// Handle is either a connected Store or the unavailable state. The zero value
// is unavailable; the only way to reach the Store is through Get.
type Handle struct {
	available bool
	store     Store
}

func Connected(s Store) Handle {
	if s == nil {
		return Unavailable()
	}
	return Handle{available: true, store: s}
}

func Unavailable() Handle { return Handle{} }

func (h Handle) Get() (Store, bool) {
	if !h.available {
		return nil, false
	}
	return h.store, true
}

func (h Handle) Available() bool { return h.available }
