package models

// Session is the single live in-memory state of the client. It is owned
// and mutated exclusively by the session controller; everyone else gets
// a copy.
type Session struct {
	Account *Account      `json:"account,omitempty"`
	Orders  []OrderRecord `json:"orders,omitempty"`
}

// IsAuthenticated reports whether a user is logged in.
func (s Session) IsAuthenticated() bool {
	return s.Account != nil
}

// Clone returns a deep-enough copy that callers can hold without
// observing later controller mutations.
func (s Session) Clone() Session {
	out := Session{}
	if s.Account != nil {
		acc := *s.Account
		out.Account = &acc
	}
	if s.Orders != nil {
		out.Orders = make([]OrderRecord, len(s.Orders))
		copy(out.Orders, s.Orders)
	}
	return out
}
