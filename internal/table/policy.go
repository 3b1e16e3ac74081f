package table

// Policy selects strict or lenient handling for the two operators that
// target an attribute by name and may find nothing. The zero value is
// fully lenient: Rename skips unknown Old names and Update returns the
// table unchanged. Strict mode turns either miss into
// ErrUnknownAttribute.
type Policy struct {
	StrictRename bool
	StrictUpdate bool
}

// WithPolicy returns a table whose Rename and Update follow p. Every
// table derived from it inherits the policy.
func (t Table) WithPolicy(p Policy) Table {
	out := t
	out.policy = p
	return out
}
