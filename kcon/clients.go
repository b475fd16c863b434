package kcon

// NewClient returns a scoped handle: every line logged through it carries
// the given scope tag. The tag is cosmetic, rendered verbatim, never
// validated or interned.
func (c *Console) NewClient(scope string) *Client {
	return &Client{
		console:  c,
		scope:    scope,
		curLevel: LVL_INFO,
	}
}

func (lc *Client) Log(level LogLevel, template string, args ...Value) {
	lc.console.Log(level, lc.scope, template, args...)
}

func (lc *Client) Error(template string, args ...Value) {
	lc.Log(LVL_ERROR, template, args...)
}

func (lc *Client) Warn(template string, args ...Value) {
	lc.Log(LVL_WARN, template, args...)
}

func (lc *Client) Debug(template string, args ...Value) {
	lc.Log(LVL_DEBUG, template, args...)
}

func (lc *Client) Info(template string, args ...Value) {
	lc.Log(LVL_INFO, template, args...)
}
