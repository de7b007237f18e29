package user

// Account is a tagged union over the three identity shapes. Exactly one
// variant field is set, selected by Role: Record for an alumnus, Basic for
// the admin singleton or a student. Access-control checks switch on Role
// exhaustively instead of duck-typing the record shape.
type Account struct {
	Role   Role
	Record *AlumniRecord
	Basic  *User
}

func AdminAccount(u User) Account {
	u.Role = RoleAdmin
	return Account{Role: RoleAdmin, Basic: &u}
}

func AlumnusAccount(r AlumniRecord) Account {
	r.Role = RoleAlumnus
	return Account{Role: RoleAlumnus, Record: &r}
}

func StudentAccount(u User) Account {
	u.Role = RoleStudent
	return Account{Role: RoleStudent, Basic: &u}
}

// Identity flattens the variant into the shared User shape.
func (a Account) Identity() User {
	switch a.Role {
	case RoleAlumnus:
		if a.Record != nil {
			return a.Record.User
		}
	default:
		if a.Basic != nil {
			return *a.Basic
		}
	}
	return User{}
}

func (a Account) Valid() bool {
	switch a.Role {
	case RoleAlumnus:
		return a.Record != nil
	case RoleAdmin, RoleStudent:
		return a.Basic != nil
	}
	return false
}
