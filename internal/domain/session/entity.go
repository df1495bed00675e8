package session

type (
	// Session binds an opaque random token to a username. The token is the
	// only credential the client holds; it carries no user data.
	Session struct {
		ID       uint64
		Token    string
		Username string
	}
)
