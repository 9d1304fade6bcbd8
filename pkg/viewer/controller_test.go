package viewer

import (
	"context"
	"errors"
	"testing"
	"time"

	"dersctl/pkg/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) time.Time {
	f.now = f.now.Add(d)
	return f.now
}

type stubSource struct {
	courses []schedule.Course
	err     error
	calls   int
}

func (s *stubSource) FetchCourses(ctx context.Context) ([]schedule.Course, error) {
	s.calls++
	return s.courses, s.err
}

var sampleCourses = []schedule.Course{
	{ClassName: "10B", CourseName: "Fizik", Instructor: "Mehmet Kaya", TimeSlot: "Salı 10:00-10:40"},
	{ClassName: "9A", CourseName: "Matematik", Instructor: "Ayşe Yılmaz", TimeSlot: "Pazartesi 09:00-09:40"},
	{ClassName: "9A", CourseName: "Türkçe", Instructor: "Can Demir", TimeSlot: "Pazartesi 09:50-10:30"},
	{ClassName: "7A", CourseName: "Müzik", Instructor: "Elif Şahin", TimeSlot: "Cuma 13:00-13:40"},
	{ClassName: "7B", CourseName: "Resim", Instructor: "Deniz Ak", TimeSlot: "Cuma 14:00-14:40"},
}

func newTestController(t *testing.T) (*Controller, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2026, 3, 9, 8, 0, 0, 0, time.UTC)}
	return NewController(WithClock(clock.Now)), clock
}

func TestController_InitialState(t *testing.T) {
	c, _ := newTestController(t)
	s := c.State()

	assert.False(t, s.HasSelection())
	assert.False(t, s.ModalOpen)
	assert.False(t, s.Loading)
	assert.Empty(t, s.Courses)
	assert.Empty(t, s.Classes)
}

func TestController_Load(t *testing.T) {
	c, _ := newTestController(t)
	src := &stubSource{courses: sampleCourses}

	c.Load(context.Background(), src)

	s := c.State()
	require.Equal(t, 1, src.calls)
	assert.False(t, s.Loading)
	assert.Len(t, s.Courses, len(sampleCourses))
	assert.Equal(t, []string{"7A", "7B", "9A", "10B"}, s.Classes)
}

func TestController_BeginLoadSetsBusy(t *testing.T) {
	c, _ := newTestController(t)

	c.BeginLoad()
	assert.True(t, c.State().Loading)

	c.FinishLoad(sampleCourses, nil)
	assert.False(t, c.State().Loading)
}

func TestController_LoadFailureIsSwallowed(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	clock := &fakeClock{now: time.Now()}
	c := NewController(WithClock(clock.Now), WithLogger(zap.New(core)))

	require.NotPanics(t, func() {
		c.Load(context.Background(), &stubSource{err: errors.New("dial tcp: no such host")})
	})

	s := c.State()
	assert.Empty(t, s.Classes)
	assert.Empty(t, s.Courses)
	assert.False(t, s.Loading)

	entries := logs.FilterMessage("Data load failure").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "dial tcp: no such host", entries[0].ContextMap()["error"])
}

func TestController_LoadFailureKeepsPreviousRows(t *testing.T) {
	c, _ := newTestController(t)
	c.Load(context.Background(), &stubSource{courses: sampleCourses})

	c.Load(context.Background(), &stubSource{err: errors.New("timeout")})

	s := c.State()
	assert.Len(t, s.Courses, len(sampleCourses))
	assert.Equal(t, []string{"7A", "7B", "9A", "10B"}, s.Classes)
	assert.False(t, s.Loading)
}

func TestController_LoadReplacesRows(t *testing.T) {
	c, _ := newTestController(t)
	c.Load(context.Background(), &stubSource{courses: sampleCourses})

	c.Load(context.Background(), &stubSource{courses: []schedule.Course{{ClassName: "12C", CourseName: "Felsefe"}}})

	s := c.State()
	assert.Len(t, s.Courses, 1)
	assert.Equal(t, []string{"12C"}, s.Classes)
}

func TestController_OpenAndCloseModal(t *testing.T) {
	c, clock := newTestController(t)

	c.OpenModal()
	assert.True(t, c.State().ModalOpen)

	c.CloseModal()
	assert.False(t, c.State().ModalOpen)
	assert.False(t, c.State().HasSelection())

	// Opening and dismissing keeps an existing selection
	c.ChooseClass("9A")
	c.RunDue(clock.Advance(SelectionDelay))
	c.OpenModal()
	assert.Equal(t, "9A", c.State().Selected)
	c.CloseModal()
	assert.Equal(t, "9A", c.State().Selected)
}

func TestController_ChooseClassClearsThenSets(t *testing.T) {
	c, clock := newTestController(t)
	c.Load(context.Background(), &stubSource{courses: sampleCourses})

	c.ChooseClass("9A")
	c.RunDue(clock.Advance(SelectionDelay))
	require.Equal(t, "9A", c.State().Selected)

	c.OpenModal()
	c.ChooseClass(" 10b ")

	// Cleared and closed synchronously
	s := c.State()
	assert.False(t, s.HasSelection())
	assert.False(t, s.ModalOpen)
	assert.Equal(t, 1, c.Pending())

	// Nothing happens before the delay has passed
	assert.Equal(t, 0, c.RunDue(clock.Advance(SelectionDelay/2)))
	assert.False(t, c.State().HasSelection())

	assert.Equal(t, 1, c.RunDue(clock.Advance(SelectionDelay/2)))
	assert.Equal(t, "10B", c.State().Selected)
	assert.Equal(t, 0, c.Pending())
}

func TestController_LastChoiceWins(t *testing.T) {
	c, clock := newTestController(t)
	c.Load(context.Background(), &stubSource{courses: sampleCourses})

	c.ChooseClass("7A")
	c.ChooseClass("7B")
	assert.Equal(t, 2, c.Pending())

	// Both deferred selections fire, the later one decides
	assert.Equal(t, 2, c.RunDue(clock.Advance(SelectionDelay)))
	assert.Equal(t, "7B", c.State().Selected)

	v := c.View()
	require.Len(t, v.Entries, 1)
	assert.Equal(t, "Resim", v.Entries[0].Name)
}

func TestController_LastChoiceWinsWhenTimersFireSeparately(t *testing.T) {
	c, clock := newTestController(t)

	c.ChooseClass("7A")
	clock.Advance(10 * time.Millisecond)
	c.ChooseClass("7B")

	assert.Equal(t, 1, c.RunDue(clock.Advance(SelectionDelay-10*time.Millisecond)))
	assert.Equal(t, "7A", c.State().Selected)

	assert.Equal(t, 1, c.RunDue(clock.Advance(10*time.Millisecond)))
	assert.Equal(t, "7B", c.State().Selected)
}

func TestController_ChooseBlankClass(t *testing.T) {
	c, clock := newTestController(t)

	c.ChooseClass("   ")
	c.RunDue(clock.Advance(SelectionDelay))

	assert.False(t, c.State().HasSelection())
	assert.False(t, c.View().ShowList)
}
