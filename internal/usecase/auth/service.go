// Package auth is the session/role gate: a small state machine over
// loggedOut, authenticating and authenticated, plus the page policy.
//
// Passwords are collected and stored hashed, but login never verifies them;
// authentication is an email lookup across the three identity sources.
package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"alumni-portal/internal/domain/user"
	"alumni-portal/internal/notify"
	"alumni-portal/internal/pkg/clock"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/usecase"
)

type State string

const (
	StateLoggedOut      State = "loggedOut"
	StateAuthenticating State = "authenticating"
	StateAuthenticated  State = "authenticated"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotAuthenticated   = errors.New("no authenticated session")
)

// Session is the in-process handle the view layer holds after login.
type Session struct {
	ID        uuid.UUID
	Account   user.Account
	Page      Page
	StartedAt time.Time
}

type SignUpInput struct {
	FirstName       string
	LastName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            user.Role
	GraduationYear  string
	Degree          user.Degree
}

// Delays carries the simulated latencies of the auth commands.
type Delays struct {
	Auth     time.Duration
	Profile  time.Duration
	Password time.Duration
}

type Service struct {
	stores *repository.Stores
	clk    clock.Clock
	delays Delays
	center *notify.Center
	log    *logging.Logger

	mu      sync.Mutex
	state   State
	session *Session

	// creds holds bcrypt hashes keyed by user id. Nothing reads them back
	// during login; the map is the hook point for real verification later.
	credMu sync.Mutex
	creds  map[int64]string
}

func NewService(stores *repository.Stores, clk clock.Clock, delays Delays, center *notify.Center, log *logging.Logger) *Service {
	return &Service{
		stores: stores,
		clk:    clk,
		delays: delays,
		center: center,
		log:    log,
		state:  StateLoggedOut,
		creds:  make(map[int64]string),
	}
}

func (s *Service) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the active session.
func (s *Service) Current() (Session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return Session{}, false
	}
	return *s.session, true
}

// Login authenticates by email lookup: admin exact match first, then alumni,
// then students, both case-insensitive. The password is required but not
// checked against anything. On failure no state is mutated.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, ErrInvalidCredentials
	}

	if err := s.beginAuth(); err != nil {
		return Session{}, err
	}

	if err := s.clk.Sleep(ctx, s.delays.Auth); err != nil {
		s.endAuth(nil)
		return Session{}, err
	}

	acct, ok := s.lookup(email)
	if !ok {
		s.endAuth(nil)
		s.log.CommandLog("login", 0, ErrInvalidCredentials)
		return Session{}, ErrInvalidCredentials
	}

	sess := &Session{
		ID:        uuid.New(),
		Account:   acct,
		Page:      LandingPage(acct.Role),
		StartedAt: s.clk.Now(),
	}
	s.endAuth(sess)
	s.log.CommandLog("login", acct.Identity().ID, nil)
	return *sess, nil
}

// SignUp validates, allocates an id from the shared space and creates either
// an alumni record or a student, then transitions straight to authenticated.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (Session, error) {
	if err := validateSignUp(in); err != nil {
		return Session{}, err
	}

	email := strings.TrimSpace(in.Email)
	if s.emailTaken(email) {
		return Session{}, ErrEmailTaken
	}

	if err := s.beginAuth(); err != nil {
		return Session{}, err
	}

	if err := s.clk.Sleep(ctx, s.delays.Auth); err != nil {
		s.endAuth(nil)
		return Session{}, err
	}

	// Re-check after the simulated delay; the store may have moved.
	if s.emailTaken(email) {
		s.endAuth(nil)
		return Session{}, ErrEmailTaken
	}

	// The id must clear both alumni and student id spaces.
	id := s.stores.MaxUserID() + 1

	var acct user.Account
	switch in.Role {
	case user.RoleAlumnus:
		rec := user.AlumniRecord{
			User: user.User{
				ID:        id,
				FirstName: strings.TrimSpace(in.FirstName),
				LastName:  strings.TrimSpace(in.LastName),
				Email:     email,
				Role:      user.RoleAlumnus,
			},
			GraduationYear: strings.TrimSpace(in.GraduationYear),
			Degree:         in.Degree,
			Program:        "Computer Science",
			IsActive:       true,
			LastLogin:      "Just now",
			JoinDate:       s.clk.Now().Format("2006-01-02"),
		}
		s.stores.Alumni.Insert(rec)
		acct = user.AlumnusAccount(rec)
	default:
		u := user.User{
			ID:        id,
			FirstName: strings.TrimSpace(in.FirstName),
			LastName:  strings.TrimSpace(in.LastName),
			Email:     email,
			Role:      user.RoleStudent,
		}
		s.stores.Students.Insert(u)
		acct = user.StudentAccount(u)
	}

	s.storeCredential(id, in.Password)

	sess := &Session{
		ID:        uuid.New(),
		Account:   acct,
		Page:      LandingPage(acct.Role),
		StartedAt: s.clk.Now(),
	}
	s.endAuth(sess)
	s.center.Push(notify.KindSuccess, "Account created successfully!")
	s.log.CommandLog("signup", id, nil)
	return *sess, nil
}

// Logout clears the session; the view resets to the login form.
func (s *Service) Logout() {
	s.mu.Lock()
	var id int64
	if s.session != nil {
		id = s.session.Account.Identity().ID
	}
	s.session = nil
	s.state = StateLoggedOut
	s.mu.Unlock()
	s.log.CommandLog("logout", id, nil)
}

// Navigate applies the page policy to a navigation request: a disallowed
// page redirects to the role's landing page. Returns the page actually
// reached.
func (s *Service) Navigate(page Page) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session == nil {
		return "", ErrNotAuthenticated
	}
	resolved := ResolvePage(s.session.Account.Role, page)
	s.session.Page = resolved
	return resolved, nil
}

func (s *Service) beginAuth() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateAuthenticating {
		return usecase.ErrBusy
	}
	s.state = StateAuthenticating
	return nil
}

// endAuth leaves authenticating: with a session into authenticated, without
// one back to loggedOut. Runs on every exit path so the gate never sticks.
func (s *Service) endAuth(sess *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess != nil {
		s.session = sess
		s.state = StateAuthenticated
		return
	}
	if s.session != nil {
		// A failed re-auth attempt does not tear down an existing session.
		s.state = StateAuthenticated
		return
	}
	s.state = StateLoggedOut
}

func (s *Service) lookup(email string) (user.Account, bool) {
	// The admin match is intentionally exact, not case-folded.
	if admin := s.stores.Admin.Get(); email == admin.Email {
		return user.AdminAccount(admin), true
	}
	if rec, ok := s.stores.Alumni.FindByEmail(email); ok {
		return user.AlumnusAccount(rec), true
	}
	if u, ok := s.stores.Students.FindByEmail(email); ok {
		return user.StudentAccount(u), true
	}
	return user.Account{}, false
}

func (s *Service) emailTaken(email string) bool {
	if strings.EqualFold(email, s.stores.Admin.Get().Email) {
		return true
	}
	if _, ok := s.stores.Alumni.FindByEmail(email); ok {
		return true
	}
	if _, ok := s.stores.Students.FindByEmail(email); ok {
		return true
	}
	return false
}

func (s *Service) storeCredential(id int64, password string) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		s.log.WithError(err).Warn("credential hash failed", "user_id", id)
		return
	}
	s.credMu.Lock()
	s.creds[id] = string(hash)
	s.credMu.Unlock()
}

func validateSignUp(in SignUpInput) error {
	ve := usecase.NewValidationError()
	if strings.TrimSpace(in.FirstName) == "" {
		ve.Add("firstName", "First name is required")
	}
	if strings.TrimSpace(in.LastName) == "" {
		ve.Add("lastName", "Last name is required")
	}
	if strings.TrimSpace(in.Email) == "" {
		ve.Add("email", "Email is required")
	} else if !usecase.ValidEmail(in.Email) {
		ve.Add("email", "Email is invalid")
	}
	if in.Password == "" {
		ve.Add("password", "Password is required")
	} else if len(in.Password) < 8 {
		ve.Add("password", "Password must be at least 8 characters")
	}
	if in.Password != in.ConfirmPassword {
		ve.Add("confirmPassword", "Passwords do not match")
	}
	if in.Role == user.RoleAlumnus {
		if strings.TrimSpace(in.GraduationYear) == "" {
			ve.Add("graduationYear", "Graduation year is required")
		}
		if in.Degree == user.DegreeNone {
			ve.Add("degree", "Degree is required")
		}
	}
	return ve.ErrOrNil()
}
