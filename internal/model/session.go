package model

// Session is an immutable snapshot of the authentication state for one
// request. Snapshots are produced only by the session manager's Check,
// Login and Logout entry points.
type Session struct {
	IsAuthenticated bool
	IsAuthLoading   bool
	IsError         bool
	User            *User
	Token           string
}
