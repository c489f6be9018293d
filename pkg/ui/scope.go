package ui

import "github.com/vango-dev/dataviewer/internal/errors"

// ChildAcceptor is implemented by components that own children: the
// containers and Page. Components created while an acceptor is the open
// scope are added to it.
type ChildAcceptor interface {
	Add(child Component)
}

// Enter pushes a onto the scope stack.
func (s *Session) Enter(a ChildAcceptor) {
	s.scope = append(s.scope, a)
}

// Exit pops the scope stack. If the top is not a, the whole stack is
// cleared and a consistency error is returned.
func (s *Session) Exit(a ChildAcceptor) error {
	n := len(s.scope)
	if n == 0 {
		s.observer.ScopeMismatch()
		s.logger.Warn("scope exit with empty stack")
		return errors.New("DV020").WithDetail("no scope is open")
	}

	top := s.scope[n-1]
	s.scope = s.scope[:n-1]
	if top != a {
		s.ClearScope()
		s.observer.ScopeMismatch()
		s.logger.Warn("scope exit mismatch, stack cleared")
		return errors.New("DV020").WithDetail("exited scope is not the innermost open scope")
	}
	return nil
}

// Current returns the innermost open scope, or nil at top level.
func (s *Session) Current() ChildAcceptor {
	if len(s.scope) == 0 {
		return nil
	}
	return s.scope[len(s.scope)-1]
}

// Depth returns the number of open scopes.
func (s *Session) Depth() int {
	return len(s.scope)
}

// ClearScope empties the scope stack.
func (s *Session) ClearScope() {
	s.scope = s.scope[:0]
}

// Within runs fn with a as the open scope. The scope is exited even if fn
// fails; the first error is returned.
func (s *Session) Within(a ChildAcceptor, fn func() error) (err error) {
	s.Enter(a)
	defer func() {
		if exitErr := s.Exit(a); err == nil {
			err = exitErr
		}
	}()
	return fn()
}
