package fixture

import "alumni-portal/internal/domain/user"

// AdminID is the reserved id of the system administrator. Exactly one admin
// exists process-wide.
const AdminID int64 = 0

const AdminEmail = "admin@uniport-cs.edu"

func Admin() user.User {
	return user.User{
		ID:        AdminID,
		FirstName: "Admin",
		LastName:  "User",
		Email:     AdminEmail,
		Role:      user.RoleAdmin,
	}
}

func Alumni() []user.AlumniRecord {
	return []user.AlumniRecord{
		{
			User: user.User{
				ID:        1,
				FirstName: "Adaora",
				LastName:  "Okafor",
				Email:     "adaora.okafor@gmail.com",
				Role:      user.RoleAlumnus,
			},
			Phone:           "+234-801-234-5678",
			GraduationYear:  "2020",
			Degree:          user.DegreeMSc,
			Program:         "Computer Science",
			CurrentPosition: "Senior Software Engineer",
			Company:         "Microsoft Nigeria",
			Location:        "Lagos, Nigeria",
			Salary:          "8500000",
			LinkedIn:        "linkedin.com/in/adaora-okafor",
			Achievements:    []string{"Best Student Award 2020", "Published 3 Research Papers", "Tech Innovation Award"},
			Skills:          []string{"Python", "Machine Learning", "Cloud Computing"},
			IsActive:        true,
			LastLogin:       "2 days ago",
			JoinDate:        "2020-06-15",
			OpenToMentoring: true,
		},
		{
			User: user.User{
				ID:        2,
				FirstName: "Emeka",
				LastName:  "Nnadi",
				Email:     "emeka.nnadi@research.org",
				Role:      user.RoleAlumnus,
			},
			Phone:           "+234-802-345-6789",
			GraduationYear:  "2019",
			Degree:          user.DegreePhD,
			Program:         "Computer Science",
			CurrentPosition: "Lead Research Scientist",
			Company:         "Google Research",
			Location:        "Abuja, Nigeria",
			Salary:          "12000000",
			LinkedIn:        "linkedin.com/in/emeka-nnadi",
			Achievements:    []string{"Published 15 Research Papers", "AI Innovation Award 2023", "Distinguished Alumni Award"},
			Skills:          []string{"Artificial Intelligence", "Deep Learning", "Research"},
			IsActive:        true,
			LastLogin:       "1 day ago",
			JoinDate:        "2019-08-22",
			OpenToMentoring: true,
		},
		{
			User: user.User{
				ID:        3,
				FirstName: "Chioma",
				LastName:  "Agbor",
				Email:     "chioma.agbor@startup.com",
				Role:      user.RoleAlumnus,
			},
			Phone:           "+234-803-456-7890",
			GraduationYear:  "2021",
			Degree:          user.DegreeMSc,
			Program:         "Computer Science",
			CurrentPosition: "Tech Entrepreneur & CEO",
			Company:         "TechFlow Solutions",
			Location:        "Port Harcourt, Nigeria",
			Salary:          "15000000",
			LinkedIn:        "linkedin.com/in/chioma-agbor",
			Achievements:    []string{"Started 2 Tech Companies", "Forbes 30 Under 30", "Entrepreneur of the Year 2023"},
			Skills:          []string{"Entrepreneurship", "Business Strategy", "Product Development"},
			IsActive:        true,
			LastLogin:       "5 hours ago",
			JoinDate:        "2021-07-10",
			OpenToMentoring: false,
		},
		{
			User: user.User{
				ID:        4,
				FirstName: "Kelechi",
				LastName:  "Okoro",
				Email:     "kelechi.okoro@bank.com",
				Role:      user.RoleAlumnus,
			},
			Phone:           "+234-804-567-8901",
			GraduationYear:  "2018",
			Degree:          user.DegreePhD,
			Program:         "Computer Science",
			CurrentPosition: "Chief Technology Officer",
			Company:         "First Bank Nigeria",
			Location:        "Lagos, Nigeria",
			Salary:          "20000000",
			LinkedIn:        "linkedin.com/in/kelechi-okoro",
			Achievements:    []string{"Digital Banking Innovation", "Fintech Pioneer Award", "CTO of the Year 2022"},
			Skills:          []string{"Fintech", "Digital Banking", "Leadership"},
			IsActive:        false,
			LastLogin:       "2 weeks ago",
			JoinDate:        "2018-05-20",
			OpenToMentoring: false,
		},
		{
			User: user.User{
				ID:        5,
				FirstName: "Ngozi",
				LastName:  "Eze",
				Email:     "ngozi.eze@university.edu",
				Role:      user.RoleAlumnus,
			},
			Phone:           "+234-805-678-9012",
			GraduationYear:  "2022",
			Degree:          user.DegreeMSc,
			Program:         "Computer Science",
			CurrentPosition: "Assistant Professor",
			Company:         "University of Lagos",
			Location:        "Lagos, Nigeria",
			Salary:          "4500000",
			LinkedIn:        "linkedin.com/in/ngozi-eze",
			Achievements:    []string{"Young Researcher Award", "Published 8 Research Papers", "Teaching Excellence Award"},
			Skills:          []string{"Academic Research", "Data Science", "Teaching"},
			IsActive:        true,
			LastLogin:       "3 hours ago",
			JoinDate:        "2022-09-01",
			OpenToMentoring: true,
		},
		{
			User: user.User{
				ID:        6,
				FirstName: "Chukwudi",
				LastName:  "Okonkwo",
				Email:     "chukwudi.okonkwo@tech.com",
				Role:      user.RoleAlumnus,
			},
			Phone:           "+234-806-789-0123",
			GraduationYear:  "2020",
			Degree:          user.DegreeMSc,
			Program:         "Computer Science",
			CurrentPosition: "Senior DevOps Engineer",
			Company:         "Andela",
			Location:        "Lagos, Nigeria",
			Salary:          "9200000",
			LinkedIn:        "linkedin.com/in/chukwudi-okonkwo",
			Achievements:    []string{"Cloud Architecture Certification", "DevOps Expert Award"},
			Skills:          []string{"DevOps", "Cloud Computing", "System Architecture"},
			IsActive:        true,
			LastLogin:       "1 hour ago",
			JoinDate:        "2020-11-30",
			OpenToMentoring: false,
		},
	}
}

func Students() []user.User {
	return []user.User{
		{
			ID:        101,
			FirstName: "Femi",
			LastName:  "Adebayo",
			Email:     "femi.adebayo@student.uniport.edu",
			Role:      user.RoleStudent,
		},
		{
			ID:        102,
			FirstName: "Bisi",
			LastName:  "Akande",
			Email:     "bisi.akande@student.uniport.edu",
			Role:      user.RoleStudent,
		},
	}
}
