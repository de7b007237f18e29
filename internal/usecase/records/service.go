// Package records is the alumni record store: CRUD with simulated latency
// plus the filter/sort read path.
package records

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"alumni-portal/internal/domain/user"
	"alumni-portal/internal/notify"
	"alumni-portal/internal/pkg/clock"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/usecase"
)

type Latencies struct {
	Create time.Duration
	Update time.Duration
	Delete time.Duration
}

type Service struct {
	alumni repository.AlumniRepository
	clk    clock.Clock
	lat    Latencies
	center *notify.Center
	log    *logging.Logger

	// busy rejects duplicate submission while a simulated save is in
	// flight. It is cleared on every exit path.
	busy atomic.Bool
}

func NewService(alumni repository.AlumniRepository, clk clock.Clock, lat Latencies, center *notify.Center, log *logging.Logger) *Service {
	return &Service{alumni: alumni, clk: clk, lat: lat, center: center, log: log}
}

func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Input carries the caller-editable fields of an alumni record. ID,
// IsActive, LastLogin and JoinDate are owned by the store.
type Input struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	GraduationYear  string
	Degree          user.Degree
	Program         string
	CurrentPosition string
	Company         string
	Location        string
	Salary          string
	LinkedIn        string
	Achievements    []string
	Skills          []string
	OpenToMentoring bool
}

// Create validates, then appends a new record with a fresh id and store
// defaults. Validation failure reports every missing field at once and
// mutates nothing.
func (s *Service) Create(ctx context.Context, in Input) (user.AlumniRecord, error) {
	if err := validate(in); err != nil {
		return user.AlumniRecord{}, err
	}

	if !s.busy.CompareAndSwap(false, true) {
		return user.AlumniRecord{}, usecase.ErrBusy
	}
	defer s.busy.Store(false)

	if err := s.clk.Sleep(ctx, s.lat.Create); err != nil {
		s.center.Push(notify.KindError, "An error occurred. Please try again.")
		return user.AlumniRecord{}, err
	}

	rec := user.AlumniRecord{
		User: user.User{
			ID:        s.alumni.MaxID() + 1,
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
			Email:     strings.TrimSpace(in.Email),
			Role:      user.RoleAlumnus,
		},
		Phone:           in.Phone,
		GraduationYear:  strings.TrimSpace(in.GraduationYear),
		Degree:          in.Degree,
		Program:         in.Program,
		CurrentPosition: in.CurrentPosition,
		Company:         in.Company,
		Location:        in.Location,
		Salary:          in.Salary,
		LinkedIn:        in.LinkedIn,
		Achievements:    in.Achievements,
		Skills:          in.Skills,
		IsActive:        true,
		LastLogin:       "Just now",
		JoinDate:        s.clk.Now().Format("2006-01-02"),
		OpenToMentoring: in.OpenToMentoring,
	}
	s.alumni.Insert(rec)

	s.center.Push(notify.KindSuccess, "Alumni added successfully!")
	s.log.CommandLog("create_alumni", rec.ID, nil)
	return rec.Clone(), nil
}

// Update merges the editable fields into the record matching id. A missing
// id is a silent no-op.
func (s *Service) Update(ctx context.Context, id int64, in Input) error {
	if !s.busy.CompareAndSwap(false, true) {
		return usecase.ErrBusy
	}
	defer s.busy.Store(false)

	if err := s.clk.Sleep(ctx, s.lat.Update); err != nil {
		s.center.Push(notify.KindError, "An error occurred. Please try again.")
		return err
	}

	rec, ok := s.alumni.Get(id)
	if !ok {
		s.log.Debug("update on absent alumni record", "id", id)
		return nil
	}

	rec.FirstName = in.FirstName
	rec.LastName = in.LastName
	rec.Email = in.Email
	rec.Phone = in.Phone
	rec.GraduationYear = in.GraduationYear
	rec.Degree = in.Degree
	rec.Program = in.Program
	rec.CurrentPosition = in.CurrentPosition
	rec.Company = in.Company
	rec.Location = in.Location
	rec.Salary = in.Salary
	rec.LinkedIn = in.LinkedIn
	rec.Achievements = in.Achievements
	rec.Skills = in.Skills
	rec.OpenToMentoring = in.OpenToMentoring
	s.alumni.Update(rec)

	s.center.Push(notify.KindSuccess, "Alumni updated successfully!")
	s.log.CommandLog("update_alumni", id, nil)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if !s.busy.CompareAndSwap(false, true) {
		return usecase.ErrBusy
	}
	defer s.busy.Store(false)

	if err := s.clk.Sleep(ctx, s.lat.Delete); err != nil {
		s.center.Push(notify.KindError, "Failed to delete alumni")
		return err
	}

	s.alumni.Delete(id)
	s.center.Push(notify.KindSuccess, "Alumni deleted successfully!")
	s.log.CommandLog("delete_alumni", id, nil)
	return nil
}

func (s *Service) Get(id int64) (user.AlumniRecord, bool) {
	return s.alumni.Get(id)
}

func validate(in Input) error {
	ve := usecase.NewValidationError()
	if strings.TrimSpace(in.FirstName) == "" {
		ve.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		ve.Add("lastName", "Last name is required")
	}
	if !usecase.ValidEmail(in.Email) {
		ve.Add("email", "Valid email is required")
	}
	if in.Degree == user.DegreeNone {
		ve.Add("degree", "Degree is required")
	}
	if strings.TrimSpace(in.GraduationYear) == "" {
		ve.Add("graduationYear", "Graduation year is required")
	}
	return ve.ErrOrNil()
}
