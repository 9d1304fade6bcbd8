// Package viewer holds the schedule viewer state and the transitions that drive it.
// A Controller is not safe for concurrent use; it is owned by a single event loop.
package viewer

import (
	"context"
	"strings"
	"time"

	"dersctl/pkg/schedule"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// SelectionDelay is how long the course list stays cleared after a class is chosen
const SelectionDelay = 50 * time.Millisecond

// Source provides the course rows of the schedule sheet
type Source interface {
	FetchCourses(ctx context.Context) ([]schedule.Course, error)
}

// Controller owns the viewer State
type Controller struct {
	state     State
	queue     *Queue
	logger    *zap.Logger
	collation language.Tag
}

// ControllerOption customizes a Controller
type ControllerOption func(*Controller)

// WithLogger sets the logger used for load failures
func WithLogger(logger *zap.Logger) ControllerOption {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithClock sets the time source of the deferred queue
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) {
		c.queue = NewQueue(now)
	}
}

// WithCollation sets the language used to order class identifiers
func WithCollation(tag language.Tag) ControllerOption {
	return func(c *Controller) {
		c.collation = tag
	}
}

// NewController creates a controller with nothing loaded, nothing selected and the modal closed
func NewController(opts ...ControllerOption) *Controller {
	c := &Controller{
		queue:     NewQueue(nil),
		logger:    zap.NewNop(),
		collation: language.Turkish,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// State returns a snapshot of the current state
func (c *Controller) State() State {
	return c.state
}

// OpenModal opens the class picker, the selection is left as is
func (c *Controller) OpenModal() {
	c.state.ModalOpen = true
}

// CloseModal dismisses the class picker without choosing
func (c *Controller) CloseModal() {
	c.state.ModalOpen = false
}

// ChooseClass clears the selection right away and sets it to id once
// SelectionDelay has passed, so the course list visibly resets in between.
// The picker closes immediately.
func (c *Controller) ChooseClass(id string) {
	c.state.Selected = ""
	normalized := strings.ToUpper(strings.TrimSpace(id))
	c.queue.After(SelectionDelay, func() {
		c.state.Selected = normalized
	})
	c.state.ModalOpen = false
}

// RunDue applies the deferred selections that are due at now
func (c *Controller) RunDue(now time.Time) int {
	return c.queue.RunDue(now)
}

// Pending returns the number of deferred selections not yet applied
func (c *Controller) Pending() int {
	return c.queue.Len()
}

// BeginLoad marks the start of a sheet download
func (c *Controller) BeginLoad() {
	c.state.Loading = true
}

// FinishLoad replaces the course rows with a fresh download. A failed load is
// logged and otherwise ignored: the previous rows stay in place.
func (c *Controller) FinishLoad(courses []schedule.Course, err error) {
	defer func() { c.state.Loading = false }()

	if err != nil {
		c.logger.Warn("Data load failure", zap.Error(err))
		return
	}

	c.state.Courses = courses
	c.state.Classes = schedule.ClassIDs(courses, c.collation)
	c.logger.Debug("Schedule loaded",
		zap.Int("courses", len(courses)),
		zap.Int("classes", len(c.state.Classes)))
}

// Load downloads the sheet from src and applies the result, blocking until done
func (c *Controller) Load(ctx context.Context, src Source) {
	c.BeginLoad()
	courses, err := src.FetchCourses(ctx)
	c.FinishLoad(courses, err)
}
