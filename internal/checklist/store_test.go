package checklist

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/model"
)

func testItems() []model.PredictedItem {
	return []model.PredictedItem{
		{ItemID: 1, Name: "Passport", NeedProbability: 0.9},
		{ItemID: 2, Name: "Socks", NeedProbability: 0.3},
	}
}

func TestApplyResetsPackedState(t *testing.T) {
	s := NewStore(nil)
	s.Apply(testItems(), nil)

	snap := s.Snapshot()
	require.Len(t, snap.Packed, 2)
	for id, packed := range snap.Packed {
		assert.False(t, packed, "item %d must start unpacked", id)
	}

	// packing survives until the next load, then resets
	s.SetPacked(1, true)
	assert.True(t, s.Packed(1))

	s.Apply([]model.PredictedItem{
		{ItemID: 1, Name: "Passport", NeedProbability: 0.9},
		{ItemID: 3, Name: "Umbrella", NeedProbability: 0.5},
	}, nil)
	snap = s.Snapshot()
	require.Len(t, snap.Packed, 2)
	assert.False(t, s.Packed(1), "prior session value discarded on reload")
	_, stale := snap.Packed[2]
	assert.False(t, stale, "ids no longer predicted drop out of packed state")
}

func TestSetPackedIgnoresUnknownIDs(t *testing.T) {
	s := NewStore(nil)
	s.Apply(testItems(), nil)

	s.SetPacked(99, true)
	snap := s.Snapshot()
	_, ok := snap.Packed[99]
	assert.False(t, ok)
	require.Len(t, snap.Packed, 2)
}

func TestSetPackedIdempotent(t *testing.T) {
	s := NewStore(nil)
	s.Apply(testItems(), nil)

	s.SetPacked(1, true)
	before := s.Snapshot().Packed
	s.SetPacked(1, true)
	s.SetPacked(1, true)
	assert.Equal(t, before, s.Snapshot().Packed)
}

func TestLoadFailureEmptiesList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"predictions":[{"item_id":1,"name":"Passport","need_probability":0.9,"forget_risk":0.2}]}`))
	}))
	client := api.NewClient(srv.URL, 0, "", nil)
	s := NewStore(client)
	require.NoError(t, s.Load(context.Background()))
	require.Len(t, s.Items(), 1)
	assert.False(t, s.LoadFailed())

	srv.Close() // next load hits a dead server
	require.Error(t, s.Load(context.Background()))
	assert.Empty(t, s.Items(), "a prior list is not retained on failure")
	assert.True(t, s.LoadFailed())
	assert.Empty(t, s.Snapshot().Packed)
}

func TestStatusesLabelEveryItemNeeded(t *testing.T) {
	s := NewStore(nil)
	s.Apply(testItems(), nil)
	s.SetPacked(2, true)

	statuses := s.Snapshot().Statuses()
	require.Len(t, statuses, len(s.Items()))
	assert.Equal(t, model.ChecklistStatus{ItemID: 1, Packed: false, NeededLabel: true}, statuses[0])
	assert.Equal(t, model.ChecklistStatus{ItemID: 2, Packed: true, NeededLabel: true}, statuses[1])
}

func TestMissingImportant(t *testing.T) {
	s := NewStore(nil)
	s.Apply(testItems(), nil)

	missing := s.Snapshot().MissingImportant()
	require.Len(t, missing, 1)
	assert.Equal(t, "Passport", missing[0].Name)

	s.SetPacked(1, true)
	assert.Empty(t, s.Snapshot().MissingImportant())
}

func TestMissingImportantThresholdIsStrict(t *testing.T) {
	s := NewStore(nil)
	s.Apply([]model.PredictedItem{
		{ItemID: 1, Name: "Exactly", NeedProbability: 0.6},
		{ItemID: 2, Name: "JustAbove", NeedProbability: 0.6000001},
	}, nil)

	missing := s.Snapshot().MissingImportant()
	require.Len(t, missing, 1)
	assert.Equal(t, "JustAbove", missing[0].Name)
}

func TestSnapshotIsAStableReadView(t *testing.T) {
	s := NewStore(nil)
	s.Apply(testItems(), nil)

	snap := s.Snapshot()
	s.SetPacked(1, true)
	assert.False(t, snap.Packed[1], "snapshot must not see later toggles")

	snap.Packed[2] = true
	assert.False(t, s.Packed(2), "mutating a snapshot must not reach the store")
}
