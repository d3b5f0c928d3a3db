package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/packup/internal/model"
)

func TestItemMetaRoundsToWholePercents(t *testing.T) {
	p := model.PredictedItem{NeedProbability: 0.857, ForgetRisk: 0.123}
	assert.Equal(t, "Need prob: 86% · Forget risk: 12%", ItemMeta(p))

	p = model.PredictedItem{NeedProbability: 0.9, ForgetRisk: 0}
	assert.Equal(t, "Need prob: 90% · Forget risk: 0%", ItemMeta(p))
}

func TestChecklistRow(t *testing.T) {
	p := model.PredictedItem{Name: "Passport", NeedProbability: 0.9, ForgetRisk: 0.4}
	assert.True(t, strings.HasPrefix(ChecklistRow(p, false), BoxUnchecked+" Passport"))
	assert.True(t, strings.HasPrefix(ChecklistRow(p, true), BoxChecked+" Passport"))
}

func TestSimulationLinesEmpty(t *testing.T) {
	lines := SimulationLines(nil)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], MsgNoSimItems)
}

func TestSimulationLines(t *testing.T) {
	lines := SimulationLines([]model.PredictedItem{
		{Name: "Laptop", NeedProbability: 0.8, ForgetRisk: 0.2},
		{Name: "Charger", NeedProbability: 0.7, ForgetRisk: 0.5},
	})
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Laptop")
	assert.Contains(t, lines[0], "Need prob: 80%")
	assert.Contains(t, lines[1], "Charger")
	assert.Contains(t, lines[1], "Forget risk: 50%")
}
