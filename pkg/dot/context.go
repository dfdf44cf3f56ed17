package dot

// Context carries the render-time state threaded through a single
// [Render] call. It holds exactly one fact: the color scheme most
// recently declared during this render. Last write wins, there is no
// stacking or rollback, and the zero value means no scheme is active.
//
// A Context belongs to one render invocation and one goroutine.
type Context struct {
	scheme string
}

// SetColorScheme records name as the active color scheme for the
// remainder of this render, until overwritten.
func (c *Context) SetColorScheme(name string) { c.scheme = name }

// ColorScheme returns the active color scheme, or "" when no scheme
// value has been rendered yet.
func (c *Context) ColorScheme() string { return c.scheme }
