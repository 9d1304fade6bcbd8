package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	"dersctl/pkg/schedule"
	"dersctl/pkg/viewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	courses []schedule.Course
	err     error
}

func (s stubSource) FetchCourses(ctx context.Context) ([]schedule.Course, error) {
	return s.courses, s.err
}

var testCourses = []schedule.Course{
	{ClassName: "10B", CourseName: "Fizik", Instructor: "Mehmet Kaya", TimeSlot: "Salı 10:00-10:40"},
	{ClassName: "9A", CourseName: "Matematik", Instructor: "Ayşe Yılmaz", TimeSlot: "Pazartesi 09:00-09:40"},
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m viewerModel, msg tea.Msg) (viewerModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	vm, ok := next.(viewerModel)
	require.True(t, ok)
	return vm, cmd
}

func loadedModel(t *testing.T, src viewer.Source) viewerModel {
	t.Helper()
	m := newViewerModel(viewer.NewController(), src, "99")
	m.now = func() time.Time { return time.Now().Add(time.Second) }

	cmd := m.load()
	require.True(t, m.ctrl.State().Loading)
	assert.Contains(t, m.View(), viewer.LoadingText)

	m, _ = send(t, m, cmd())
	require.False(t, m.ctrl.State().Loading)
	return m
}

func TestViewerModel_ChooseClassFlow(t *testing.T) {
	m := loadedModel(t, stubSource{courses: testCourses})
	assert.Contains(t, m.View(), viewer.ChooseClassText)

	m, _ = send(t, m, runeKey("s"))
	require.True(t, m.ctrl.State().ModalOpen)
	assert.Contains(t, m.View(), "> 9A")

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Contains(t, m.View(), "> 10B")

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "expected a deferred selection tick")
	assert.False(t, m.ctrl.State().ModalOpen)
	assert.False(t, m.ctrl.State().HasSelection())

	m, _ = send(t, m, selectionDueMsg(time.Now()))
	assert.Equal(t, "10B", m.ctrl.State().Selected)

	out := m.View()
	assert.Contains(t, out, "10B Sınıfı")
	assert.Contains(t, out, "Fizik")
	assert.Contains(t, out, "Mehmet Kaya - Salı 10:00-10:40")
}

func TestViewerModel_EscClosesModal(t *testing.T) {
	m := loadedModel(t, stubSource{courses: testCourses})

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.ctrl.State().ModalOpen)

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.ctrl.State().ModalOpen)
	assert.False(t, m.ctrl.State().HasSelection())
}

func TestViewerModel_FailedLoadShowsNoClasses(t *testing.T) {
	m := loadedModel(t, stubSource{err: errors.New("offline")})

	m, _ = send(t, m, runeKey("s"))
	require.True(t, m.ctrl.State().ModalOpen)
	assert.Empty(t, m.ctrl.State().Classes)

	// Choosing from an empty list does nothing
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.True(t, m.ctrl.State().ModalOpen)
}

func TestViewerModel_Reload(t *testing.T) {
	m := loadedModel(t, stubSource{courses: testCourses})

	m, cmd := send(t, m, runeKey("r"))
	require.NotNil(t, cmd)
	assert.True(t, m.ctrl.State().Loading)

	m, _ = send(t, m, cmd())
	assert.False(t, m.ctrl.State().Loading)
	assert.Equal(t, []string{"9A", "10B"}, m.ctrl.State().Classes)
}

func TestViewerModel_Quit(t *testing.T) {
	m := loadedModel(t, stubSource{})

	_, cmd := send(t, m, runeKey("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
