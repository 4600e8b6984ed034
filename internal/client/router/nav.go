package router

// Tab is one navigation entry.
type Tab struct {
	Label string
	Path  string
}

// NavState is what the navigation bar shows.
type NavState struct {
	LoggedIn   bool
	Tabs       []Tab
	Active     string // empty when the current path is not a tab
	ShowLogout bool
}

var (
	loggedInTabs  = []Tab{{"Home", PathHome}, {"Profile", PathProfile}}
	anonymousTabs = []Tab{{"Home", PathHome}, {"Login", PathLogin}, {"Sign Up", PathSignup}}
)

// DeriveNav computes the navigation bar for the given session state and
// current path.
func DeriveNav(loggedIn bool, path string) NavState {
	tabs := anonymousTabs
	if loggedIn {
		tabs = loggedInTabs
	}

	st := NavState{
		LoggedIn:   loggedIn,
		Tabs:       append([]Tab(nil), tabs...),
		ShowLogout: loggedIn,
	}
	path = Clean(path)
	for _, t := range tabs {
		if t.Path == path {
			st.Active = path
			break
		}
	}
	return st
}

// HomeView selects what the home screen shows.
type HomeView int

const (
	HomeWelcome HomeView = iota
	HomeBookList
)

func (v HomeView) String() string {
	if v == HomeBookList {
		return "book-list"
	}
	return "welcome"
}

// HomeVariant picks the home screen for the session state.
func HomeVariant(loggedIn bool) HomeView {
	if loggedIn {
		return HomeBookList
	}
	return HomeWelcome
}
