package application

// MemberDirectory is the read-only roster of people who can be bound to
// schedule roles. The roster is fixed at startup; there is no member CRUD.
type MemberDirectory struct {
	members []Member
}

// NewMemberDirectory returns the directory with the built-in roster.
func NewMemberDirectory() *MemberDirectory {
	return &MemberDirectory{members: defaultRoster()}
}

// List returns the full roster. The returned slice is a copy.
func (d *MemberDirectory) List() []Member {
	if d == nil {
		return nil
	}
	members := make([]Member, len(d.members))
	copy(members, d.members)
	return members
}

// Get returns the member with the given ID.
func (d *MemberDirectory) Get(id string) (Member, error) {
	if d == nil {
		return Member{}, ErrNotFound
	}
	for _, member := range d.members {
		if member.ID == id {
			return member, nil
		}
	}
	return Member{}, ErrNotFound
}

func defaultRoster() []Member {
	return []Member{
		{ID: "m-01", Name: "Mika Sato", Age: 31, Department: "Operations"},
		{ID: "m-02", Name: "Ren Ito", Age: 27, Department: "Finance"},
		{ID: "m-03", Name: "Alice Tanaka", Age: 34, Department: "Engineering"},
		{ID: "m-04", Name: "Ben Ortiz", Age: 29, Department: "Engineering"},
		{ID: "m-05", Name: "Yuki Mori", Age: 41, Department: "Facilities"},
		{ID: "m-06", Name: "Dana Kim", Age: 25, Department: "Design"},
		{ID: "m-07", Name: "Leo Haas", Age: 38, Department: "Operations"},
		{ID: "m-08", Name: "Sara Novak", Age: 33, Department: "People"},
	}
}
