// Package admin implements the login gate in front of the directory dashboard.
package admin

// State is the visible admin view.
type State int

const (
	LoggedOut State = iota
	LoggedIn
)

func (s State) String() string {
	if s == LoggedIn {
		return "logged_in"
	}

	return "logged_out"
}

// Session tracks which admin view is visible. It is never persisted.
type Session struct {
	verifier     Verifier
	state        State
	errorVisible bool
}

func NewSession(verifier Verifier) *Session {
	return &Session{verifier: verifier, state: LoggedOut}
}

// Open resets the session, it is called every time the admin panel is shown.
func (s *Session) Open() {
	s.state = LoggedOut
	s.errorVisible = false
}

// Login moves to LoggedIn when the verifier accepts the pair, otherwise the error banner is shown.
func (s *Session) Login(user string, password string) bool {
	if s.verifier != nil && s.verifier.Verify(user, password) {
		s.state = LoggedIn
		s.errorVisible = false

		return true
	}

	s.state = LoggedOut
	s.errorVisible = true

	return false
}

func (s *Session) Logout() {
	s.Open()
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) LoggedIn() bool {
	return s.state == LoggedIn
}

func (s *Session) ErrorVisible() bool {
	return s.errorVisible
}
