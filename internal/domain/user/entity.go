package user

type Role string

const (
	RoleAdmin   Role = "Admin"
	RoleAlumnus Role = "Alumnus"
	RoleStudent Role = "Student"
)

type Degree string

const (
	DegreeMSc  Degree = "MSc"
	DegreePhD  Degree = "PhD"
	DegreeNone Degree = ""
)

// User is the identity shared by every participant regardless of where the
// record lives (admin singleton, alumni collection, or student collection).
// IDs are allocated from a single numeric space across all three.
type User struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string
	Role      Role
}

func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// AlumniRecord carries the career profile of a graduated user.
type AlumniRecord struct {
	User

	Phone           string
	GraduationYear  string
	Degree          Degree
	Program         string
	CurrentPosition string
	Company         string
	Location        string
	Salary          string
	LinkedIn        string
	Achievements    []string
	Skills          []string
	IsActive        bool
	LastLogin       string
	JoinDate        string
	OpenToMentoring bool
}

// Clone returns a deep copy so store snapshots stay independent of later
// mutation.
func (r AlumniRecord) Clone() AlumniRecord {
	out := r
	out.Achievements = append([]string(nil), r.Achievements...)
	out.Skills = append([]string(nil), r.Skills...)
	return out
}
