package middleware

import "context"

// Action is the body of one menu entry. ctx carries the logged-in session.
type Action func(ctx context.Context) error

// Middleware wraps an Action; name identifies the menu entry in logs.
type Middleware func(name string, next Action) Action

// Chain applies mws so that the first one runs outermost.
func Chain(name string, action Action, mws ...Middleware) Action {
	for i := len(mws) - 1; i >= 0; i-- {
		action = mws[i](name, action)
	}
	return action
}
