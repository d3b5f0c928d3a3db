package tui

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/checklist"
	"github.com/idilsaglam/packup/internal/model"
	"github.com/idilsaglam/packup/internal/ui"
)

func testItems() []model.PredictedItem {
	return []model.PredictedItem{
		{ItemID: 1, Name: "Passport", NeedProbability: 0.9, ForgetRisk: 0.4},
		{ItemID: 2, Name: "Socks", NeedProbability: 0.3, ForgetRisk: 0.1},
	}
}

func newTestModel() (Model, *checklist.Store) {
	store := checklist.NewStore(nil)
	return New(nil, store, nil), store
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestPredictionsPopulateChecklist(t *testing.T) {
	m, store := newTestModel()

	tm, _ := m.Update(predictionsMsg{items: testItems()})
	m = tm.(Model)

	require.Len(t, store.Items(), 2)
	require.Len(t, m.list.Items(), 2)
	assert.False(t, m.loading)

	view := m.View()
	assert.Contains(t, view, "Passport")
	assert.Contains(t, view, "Need prob: 90%")
}

func TestSpaceTogglesPackedThroughStore(t *testing.T) {
	m, store := newTestModel()
	tm, _ := m.Update(predictionsMsg{items: testItems()})
	m = tm.(Model)

	tm, _ = m.Update(keyMsg(" "))
	m = tm.(Model)
	assert.True(t, store.Packed(1), "toggle writes through to the store")

	li := m.list.Items()[0].(listItem)
	assert.True(t, li.packed)

	// toggling again flips back
	tm, _ = m.Update(keyMsg(" "))
	m = tm.(Model)
	assert.False(t, store.Packed(1))
}

func TestViewStatesAreDistinct(t *testing.T) {
	m, _ := newTestModel()
	assert.Contains(t, m.View(), ui.MsgLoading)

	tm, _ := m.Update(predictionsMsg{err: errors.New("boom")})
	failed := tm.(Model)
	assert.Contains(t, failed.View(), ui.MsgLoadFailed)
	assert.NotContains(t, failed.View(), ui.MsgNoItems)

	tm, _ = m.Update(predictionsMsg{items: nil})
	empty := tm.(Model)
	assert.Contains(t, empty.View(), ui.MsgNoItems)
	assert.NotContains(t, empty.View(), ui.MsgLoadFailed)
}

func TestLeaveModalWarns(t *testing.T) {
	m, _ := newTestModel()
	tm, _ := m.Update(predictionsMsg{items: testItems()})
	m = tm.(Model)

	tm, _ = m.Update(leaveMsg{result: checklist.LeaveResult{
		Missing: []model.PredictedItem{{ItemID: 1, Name: "Passport", NeedProbability: 0.9}},
	}})
	m = tm.(Model)

	view := m.View()
	assert.Contains(t, view, "Warning! You usually take: Passport.")
	assert.Contains(t, view, "Are you sure you want to leave?")

	// staying closes the modal
	tm, _ = m.Update(keyMsg("n"))
	m = tm.(Model)
	assert.NotContains(t, m.View(), "Warning!")
}

func TestLeaveModalConfirmQuits(t *testing.T) {
	m, _ := newTestModel()
	tm, _ := m.Update(leaveMsg{result: checklist.LeaveResult{
		Missing: []model.PredictedItem{{ItemID: 1, Name: "Passport"}},
	}})
	m = tm.(Model)

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)
	_, isQuit := cmd().(tea.QuitMsg)
	assert.True(t, isQuit, "leaving anyway ends the session")
}

func TestLeaveModalAllPacked(t *testing.T) {
	m, _ := newTestModel()
	tm, _ := m.Update(leaveMsg{result: checklist.LeaveResult{}})
	m = tm.(Model)
	assert.Contains(t, m.View(), "All good! You’ve packed everything important.")

	tm, _ = m.Update(keyMsg("x"))
	m = tm.(Model)
	assert.NotContains(t, m.View(), "All good!")
}

func TestTrainMessages(t *testing.T) {
	m, _ := newTestModel()

	tm, cmd := m.Update(trainMsg{err: nil})
	ok := tm.(Model)
	assert.Contains(t, ok.View(), "Model trained successfully!")
	require.NotNil(t, cmd, "success refreshes the context summary")

	tm, cmd = m.Update(trainMsg{err: errors.New("nope")})
	bad := tm.(Model)
	assert.Contains(t, bad.View(), "Could not train model yet. Need more diverse data.")
	assert.Nil(t, cmd)
}

func TestSummaryMessageReplacesStatusLine(t *testing.T) {
	m, _ := newTestModel()
	tm, _ := m.Update(summaryMsg{text: "Today looks like: workday (Mon) | Model not fully trained yet."})
	m = tm.(Model)
	assert.Contains(t, m.View(), "workday (Mon)")
}

// A simulation request is a pure preview: the checklist keeps its
// items and packed flags no matter what the simulation returns.
func TestSimulationDoesNotTouchChecklistState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/predict_today":
			w.Write([]byte(`{"predictions":[
				{"item_id":1,"name":"Passport","need_probability":0.9,"forget_risk":0.4},
				{"item_id":2,"name":"Socks","need_probability":0.3,"forget_risk":0.1}]}`))
		case "/api/simulate_predict":
			w.Write([]byte(`{"predictions":[]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := api.NewClient(srv.URL, 0, "", nil)
	store := checklist.NewStore(client)
	require.NoError(t, store.Load(context.Background()))

	m := New(client, store, nil)
	tm, _ := m.Update(predictionsMsg{items: store.Items()})
	m = tm.(Model)
	tm, _ = m.Update(keyMsg(" "))
	m = tm.(Model)
	require.True(t, store.Packed(1))

	items, err := client.SimulatePredict(context.Background(),
		model.SimContext{Weekday: 5, HasWorkEvent: true})
	require.NoError(t, err)
	assert.Empty(t, items)

	// checklist render afterwards shows the prior state unchanged
	assert.Len(t, store.Items(), 2)
	assert.True(t, store.Packed(1))
	assert.Contains(t, m.View(), "Passport")
}
