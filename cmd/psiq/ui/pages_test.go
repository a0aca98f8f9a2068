package ui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"psiquitools/internal/catalog"
	"psiquitools/internal/clipboard"
	"psiquitools/internal/config"
	"psiquitools/internal/mentalstatus"
	"psiquitools/internal/scales"
	"psiquitools/internal/timeline"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func testEnv(t *testing.T) (*Env, *clipboard.Recorder) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Document.OutputDir = t.TempDir()
	rec := &clipboard.Recorder{}
	return &Env{
		Config:    cfg,
		Clipboard: rec,
		Styles:    NewStyles(LightTheme()),
		Now:       func() time.Time { return time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC) },
	}, rec
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var space = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}

// press feeds keys to a page and returns the last command.
func press(p Page, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = p.Update(msg)
	}
	return cmd
}

// typeText sends one rune at a time, as a terminal would.
func typeText(p Page, s string) {
	for _, r := range s {
		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestAppOpensToolAndReturnsHome(t *testing.T) {
	env, _ := testEnv(t)
	var m tea.Model = NewApp(env)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	app := m.(App)
	require.NotNil(t, app.Page())
	assert.Equal(t, "Clinical scales", app.Page().Title())
	assert.Contains(t, app.View(), "psiqui.tools › Clinical scales")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.(App).Page())
}

func TestAppQuitOnlyFromHome(t *testing.T) {
	env, _ := testEnv(t)
	var m tea.Model = NewApp(env)

	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok, "q on the home menu should quit")

	m = NewAppWithPage(env, NewTimelinePage(env, nil))
	m, _ = m.Update(runes("a"))
	m, _ = m.Update(runes("q"))
	require.NotNil(t, m.(App).Page(), "typing q into a form must not leave the tool")
	assert.True(t, m.(App).Page().Capturing())
}

func TestAppEscInsideSheetStaysOnTool(t *testing.T) {
	env, _ := testEnv(t)
	page := NewScalePage(env, scales.GAD7)
	var m tea.Model = NewAppWithPage(env, page)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, m.(App).Page(), "esc should close the sheet, not the tool")
	assert.Nil(t, page.Sheet())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, m.(App).Page())
}

func TestHomeViewShowsPrivacyNotice(t *testing.T) {
	env, _ := testEnv(t)
	view := NewHomePage(env).View()
	for _, want := range []string{"Clinical scales", "Antecedent organiser"} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}

func TestScalesPageOpensFromIndex(t *testing.T) {
	env, _ := testEnv(t)
	p := NewScalesPage(env)
	require.Nil(t, p.Sheet())

	press(p, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, p.Sheet())
	assert.Equal(t, scales.Default().List()[1].ID, p.Sheet().Scale.ID)
}

func TestScalePageSelectionAndTotal(t *testing.T) {
	env, _ := testEnv(t)
	p := NewScalePage(env, scales.CIWAAr)

	// nausea: third option scores 4
	press(p, runes("3"))
	// tremor: right from unanswered picks the first option, then steps to 1
	press(p, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})

	res := p.Sheet().Result()
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, "Mild", res.Band.Label)
	assert.Equal(t, 2, res.Answered)
	assert.Contains(t, p.View(), "Clinical observation")

	press(p, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	v, ok := p.Sheet().Value("tremor")
	require.True(t, ok)
	assert.Equal(t, 0, v, "left clamps at the first option")

	press(p, runes("r"))
	assert.Equal(t, 0, p.Sheet().Result().Answered)
}

func TestScalePageCopy(t *testing.T) {
	env, rec := testEnv(t)
	p := NewScalePage(env, scales.PHQ9)
	press(p, runes("2"))

	cmd := press(p, runes("c"))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, copyResultMsg{ok: true}, msg)
	assert.Contains(t, rec.Last(), "Total score: 1")

	tick := press(p, msg)
	assert.NotNil(t, tick, "a successful copy schedules the indicator reset")
	assert.True(t, p.Sheet().Copied.On())
	assert.Contains(t, p.View(), "Copied")

	press(p, copyExpiredMsg{generation: 1})
	assert.False(t, p.Sheet().Copied.On())
}

func TestScalePageStaleExpiryKeepsIndicator(t *testing.T) {
	env, _ := testEnv(t)
	p := NewScalePage(env, scales.GAD7)

	press(p, copyResultMsg{ok: true})
	press(p, copyResultMsg{ok: true})
	press(p, copyExpiredMsg{generation: 1})
	assert.True(t, p.Sheet().Copied.On(), "an older timer must not clear a newer copy")

	press(p, copyExpiredMsg{generation: 2})
	assert.False(t, p.Sheet().Copied.On())
}

func TestScalePageShowsAdvisory(t *testing.T) {
	env, _ := testEnv(t)
	p := NewScalePage(env, scales.PHQ9)
	for range scales.PHQ9.Items[:len(scales.PHQ9.Items)-1] {
		press(p, tea.KeyMsg{Type: tea.KeyDown})
	}
	press(p, runes("2"))

	require.NotNil(t, p.Sheet().Result().Advisory)
	assert.Contains(t, p.View(), scales.PHQ9.Advisory.Title)
}

func TestMSEPageToggleAndText(t *testing.T) {
	env, rec := testEnv(t)
	p := NewMSEPage(env, nil)

	press(p, space)
	assert.True(t, p.Exam().Selected("consciousness", "Conscious"))
	assert.Equal(t, "Conscious.", p.Exam().Narrative())

	press(p, space)
	assert.True(t, p.Exam().Empty())

	press(p, tea.KeyMsg{Type: tea.KeyTab})
	sec := mentalstatus.Sections[1]
	for range sec.Phrases {
		press(p, tea.KeyMsg{Type: tea.KeyDown})
	}
	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, p.Capturing())
	typeText(p, "Calm")
	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.Capturing())
	assert.Equal(t, "Calm", p.Exam().Text(sec.ID))
	assert.Equal(t, "Calm.", p.Exam().Narrative())

	cmd := press(p, runes("c"))
	require.NotNil(t, cmd)
	cmd()
	assert.Equal(t, "Calm.", rec.Last())

	press(p, runes("r"))
	assert.True(t, p.Exam().Empty())
}

func TestMSEPageSectionsWrap(t *testing.T) {
	env, _ := testEnv(t)
	p := NewMSEPage(env, nil)

	press(p, tea.KeyMsg{Type: tea.KeyShiftTab})
	last := mentalstatus.Sections[len(mentalstatus.Sections)-1]
	assert.Contains(t, p.View(), last.Title)
}

func TestMSEPagePreview(t *testing.T) {
	env, _ := testEnv(t)
	p := NewMSEPage(env, nil)
	p.SetSize(80, 20)

	press(p, space, runes("p"))
	require.True(t, p.Capturing())
	assert.Contains(t, p.View(), "Conscious")

	press(p, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.Capturing())
}

func TestHistoryPageStepsAndEditing(t *testing.T) {
	env, _ := testEnv(t)
	p := NewHistoryPage(env, nil)
	assert.Equal(t, "2024-03-01 10:30", p.Record().Identification.Timestamp)

	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, p.Capturing())
	typeText(p, "PT-01")
	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.Capturing())
	assert.Equal(t, "PT-01", p.Record().Identification.Identifier)

	// timestamp is read-only
	press(p, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.Capturing())

	press(p, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 1, p.Step())
	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	typeText(p, "Low mood")
	press(p, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "Low mood", p.Record().ChiefComplaint)

	press(p, tea.KeyMsg{Type: tea.KeyShiftTab}, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 0, p.Step(), "previous stops at the first step")
}

func TestHistoryPageExport(t *testing.T) {
	env, _ := testEnv(t)
	p := NewHistoryPage(env, nil)

	press(p, runes("e"))
	require.True(t, p.Capturing())
	cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd()
	exported, ok := msg.(exportedMsg)
	require.True(t, ok)
	require.NoError(t, exported.err)
	assert.Equal(t, filepath.Join(env.Config.Document.OutputDir, "history.pdf"), exported.path)

	info, err := os.Stat(exported.path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())

	press(p, msg)
	assert.Contains(t, p.View(), "Saved")
}

func TestTimelinePageAddEditDelete(t *testing.T) {
	env, _ := testEnv(t)
	p := NewTimelinePage(env, nil)

	add := func(date, description string) {
		press(p, runes("a"))
		typeText(p, date)
		press(p, tea.KeyMsg{Type: tea.KeyTab})
		typeText(p, description)
		press(p, tea.KeyMsg{Type: tea.KeyEnter})
	}
	add("2018-05-05", "First episode")
	add("2020-01-01", "Admission")
	require.Equal(t, 2, p.Manager().Len())
	assert.False(t, p.Capturing())

	// newest first: the cursor starts on the admission
	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	id, editing := p.Manager().Editing()
	require.True(t, editing)
	ev, _ := p.Manager().Get(id)
	assert.Equal(t, "Admission", ev.Description)
	press(p, tea.KeyMsg{Type: tea.KeyEsc})
	_, editing = p.Manager().Editing()
	assert.False(t, editing)

	press(p, runes("d"), runes("n"))
	assert.Equal(t, 2, p.Manager().Len(), "declining keeps the event")

	press(p, runes("d"))
	assert.Contains(t, p.View(), "(y/n)")
	press(p, runes("y"))
	require.Equal(t, 1, p.Manager().Len())
	assert.Equal(t, "First episode", p.Manager().Events()[0].Description)
}

func TestTimelinePageRejectsInvalidForm(t *testing.T) {
	env, _ := testEnv(t)
	p := NewTimelinePage(env, nil)

	press(p, runes("a"))
	typeText(p, "01/02/2020")
	press(p, tea.KeyMsg{Type: tea.KeyTab})
	typeText(p, "Something")
	press(p, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, p.Manager().Len())
	assert.True(t, p.Capturing(), "the form stays open after a failed submit")
	assert.Contains(t, p.View(), timeline.ErrInvalidDate.Error())
}

func TestTimelinePageEmptyFieldsAreSilent(t *testing.T) {
	env, _ := testEnv(t)
	p := NewTimelinePage(env, nil)

	press(p, runes("a"))
	typeText(p, "2020-02-01")
	press(p, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, 0, p.Manager().Len())
	assert.True(t, p.Capturing())
	view := p.View()
	assert.NotContains(t, view, timeline.ErrEmptyDescription.Error())
	assert.NotContains(t, view, timeline.ErrEmptyDate.Error())
}

func TestTimelinePageWorkbookExportUsesSnapshot(t *testing.T) {
	env, _ := testEnv(t)
	p := NewTimelinePage(env, nil)
	_, err := p.Manager().Add("2020-01-01", "Admission")
	require.NoError(t, err)

	cmd := p.exportCmd("race.xlsx")
	require.NotNil(t, cmd)

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	for i := 0; i < 200; i++ {
		_, err := p.Manager().Add("2021-01-01", "Follow-up")
		require.NoError(t, err)
	}
	msg := (<-done).(exportedMsg)
	require.NoError(t, msg.err)

	f, err := excelize.OpenFile(msg.path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Timeline")
	require.NoError(t, err)
	assert.Len(t, rows, 2, "workbook holds the events present when export started")
}

func TestTimelinePageExportNeedsEvents(t *testing.T) {
	env, _ := testEnv(t)
	p := NewTimelinePage(env, nil)

	press(p, runes("e"))
	assert.False(t, p.Capturing())
	assert.Contains(t, p.View(), "Add at least one event")
}

func TestTimelinePageWorkbookExport(t *testing.T) {
	env, _ := testEnv(t)
	m := timeline.NewManager()
	_, err := m.Add("2019-02-03", "Outpatient follow-up")
	require.NoError(t, err)
	p := NewTimelinePage(env, m)

	press(p, runes("e"))
	for range "timeline.pdf" {
		press(p, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	typeText(p, "timeline.xlsx")
	cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	exported := cmd().(exportedMsg)
	require.NoError(t, exported.err)
	assert.Equal(t, ".xlsx", filepath.Ext(exported.path))
	_, err = os.Stat(exported.path)
	assert.NoError(t, err)
}

func TestResourcesPageSearch(t *testing.T) {
	env, _ := testEnv(t)
	p := NewResourcesPage(env, "")
	assert.Len(t, p.Results(), len(catalog.All()))

	press(p, runes("/"))
	require.True(t, p.Capturing())
	typeText(p, "panic")
	require.Len(t, p.Results(), 1)
	assert.Equal(t, "anxiety", p.Results()[0].ID)

	press(p, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, p.Capturing())
	assert.Contains(t, p.View(), "Panic")
}

func TestResourcesPageNoResults(t *testing.T) {
	env, _ := testEnv(t)
	p := NewResourcesPage(env, "zzzz")
	assert.Empty(t, p.Results())
	assert.Contains(t, p.View(), "0 resources")
}
