// Package newsletter composes and mock-sends newsletters to a filtered
// alumni audience. Sending is cosmetic: a simulated delay and a success
// notification, no delivery and no audience persistence.
package newsletter

import (
	"context"
	"fmt"
	"sort"
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

// Audience filters recipients; zero criteria are skipped.
type Audience struct {
	Degree         user.Degree
	GraduationYear string
	Active         *bool
}

type Draft struct {
	Subject string
	Body    string
}

type Service struct {
	alumni repository.AlumniRepository
	clk    clock.Clock
	delay  time.Duration
	center *notify.Center
	log    *logging.Logger
	busy   atomic.Bool
}

func NewService(alumni repository.AlumniRepository, clk clock.Clock, delay time.Duration, center *notify.Center, log *logging.Logger) *Service {
	return &Service{alumni: alumni, clk: clk, delay: delay, center: center, log: log}
}

// SelectAudience returns the recipients matching the filter.
func SelectAudience(alumni []user.AlumniRecord, f Audience) []user.AlumniRecord {
	out := make([]user.AlumniRecord, 0)
	for _, a := range alumni {
		if f.Degree != user.DegreeNone && a.Degree != f.Degree {
			continue
		}
		if f.GraduationYear != "" && a.GraduationYear != f.GraduationYear {
			continue
		}
		if f.Active != nil && a.IsActive != *f.Active {
			continue
		}
		out = append(out, a)
	}
	return out
}

// AvailableYears lists the distinct graduation years, newest first.
func AvailableYears(alumni []user.AlumniRecord) []string {
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, a := range alumni {
		if _, ok := seen[a.GraduationYear]; ok {
			continue
		}
		seen[a.GraduationYear] = struct{}{}
		out = append(out, a.GraduationYear)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(out)))
	return out
}

func (s *Service) Audience(f Audience) []user.AlumniRecord {
	return SelectAudience(s.alumni.List(), f)
}

// Send validates the draft, waits the simulated delay and reports success.
// It returns the recipient count that would have been mailed.
func (s *Service) Send(ctx context.Context, draft Draft, f Audience) (int, error) {
	recipients := s.Audience(f)

	ve := usecase.NewValidationError()
	if strings.TrimSpace(draft.Subject) == "" {
		ve.Add("subject", "Subject is required")
	}
	if strings.TrimSpace(draft.Body) == "" {
		ve.Add("body", "Body is required")
	}
	if len(recipients) == 0 {
		ve.Add("recipients", "Select at least one recipient")
	}
	if err := ve.ErrOrNil(); err != nil {
		s.center.Push(notify.KindWarning, "Please fill in subject, body, and select recipients.")
		return 0, err
	}

	if !s.busy.CompareAndSwap(false, true) {
		return 0, usecase.ErrBusy
	}
	defer s.busy.Store(false)

	if err := s.clk.Sleep(ctx, s.delay); err != nil {
		return 0, err
	}

	s.center.Push(notify.KindSuccess, fmt.Sprintf("Newsletter sent to %d alumni successfully!", len(recipients)))
	s.log.Info("newsletter sent", "recipients", len(recipients), "subject", draft.Subject)
	return len(recipients), nil
}
