// Package nav switches the active dashboard page.
// Every activation gets an epoch and a context; activating another page cancels the previous one.
package nav

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// Pages
const (
	PageDashboard  = "dashboard"
	PageCourses    = "courses"
	PageStudents   = "students"
	PageActivities = "activities"
	PageReports    = "reports"
	PageLogout     = "logout"
)

var (
	ErrUnknownPage = errors.New("unknown page")
	ErrSuperseded  = errors.New("page activation superseded")
)

// Pages returns the navigable pages, in menu order.
func Pages() []string {
	return []string{PageDashboard, PageCourses, PageStudents, PageActivities, PageReports}
}

type (
	// EnterFunc runs the loader of a page. It should check act.Current() before rendering.
	EnterFunc func(act *Activation) error
	LeaveFunc func()

	Page struct {
		OnEnter EnterFunc
		OnLeave LeaveFunc
	}

	Router struct {
		mu      sync.Mutex
		pages   map[string]Page
		epoch   uint64
		current string
		cancel  context.CancelFunc
	}

	// Activation is one visit of a page.
	Activation struct {
		Page   string
		Epoch  uint64
		ctx    context.Context
		router *Router
	}
)

func NewRouter() *Router {
	return &Router{pages: make(map[string]Page)}
}

// Register sets the hooks of `name`. Pages without hooks are still navigable.
func (r *Router) Register(name string, p Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pages[name] = p
}

func (r *Router) known(name string) bool {
	if name == PageLogout {
		return true
	}
	for _, p := range Pages() {
		if p == name {
			return true
		}
	}
	return false
}

// Current returns the active page and its epoch.
func (r *Router) Current() (string, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current, r.epoch
}

func (r *Router) isCurrent(epoch uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.epoch == epoch
}

// Activate makes `name` the active page. The previous activation's context is cancelled
// and, when the page changes, the previous page's OnLeave runs before the new page's OnEnter.
// `logout` is accepted and does nothing.
// ErrSuperseded is returned when another activation started while OnEnter was running.
func (r *Router) Activate(ctx context.Context, name string) (*Activation, error) {
	if !r.known(name) {
		return nil, errors.Wrapf(ErrUnknownPage, "%q", name)
	}
	if name == PageLogout {
		return nil, nil
	}

	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
	}
	var leave LeaveFunc
	if r.current != "" && r.current != name {
		leave = r.pages[r.current].OnLeave
	}
	enter := r.pages[name].OnEnter

	r.epoch++
	actx, cancel := context.WithCancel(ctx)
	act := &Activation{Page: name, Epoch: r.epoch, ctx: actx, router: r}
	r.current, r.cancel = name, cancel
	r.mu.Unlock()

	if leave != nil {
		leave()
	}
	if enter == nil {
		return act, nil
	}
	err := enter(act)
	if !act.Current() {
		return act, ErrSuperseded
	}
	return act, err
}

func (a *Activation) Context() context.Context { return a.ctx }

// Current reports whether no other activation started since this one.
func (a *Activation) Current() bool { return a.router.isCurrent(a.Epoch) }
