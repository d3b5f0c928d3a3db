package ui

import (
	"fmt"

	"github.com/idilsaglam/packup/internal/model"
)

// Fixed guidance/failure texts for the checklist and simulation views.
// Each view's three states (populated, empty, failed) must stay
// visually distinguishable, so these are never reused across states.
const (
	MsgNoItems    = "No items configured yet. Add items first."
	MsgLoadFailed = "Failed to load predictions."
	MsgLoading    = "Loading predictions..."
	MsgNoSimItems = "No active items found. Add items first."
	MsgSimFailed  = "Simulation failed."
)

// ItemMeta formats the probability line shown under an item name.
// Both values round to the nearest whole percent.
func ItemMeta(p model.PredictedItem) string {
	return fmt.Sprintf("Need prob: %.0f%% · Forget risk: %.0f%%", p.NeedProbability*100, p.ForgetRisk*100)
}

// ChecklistRow formats one interactive row: checkbox, name, meta.
func ChecklistRow(p model.PredictedItem, packed bool) string {
	box := BoxUnchecked
	if packed {
		box = BoxChecked
	}
	return fmt.Sprintf("%s %s  %s", box, p.Name, ItemMeta(p))
}

// SimulationLines renders read-only prediction rows for a simulated
// context, or the guidance message when the context yields no items.
func SimulationLines(items []model.PredictedItem) []string {
	if len(items) == 0 {
		return []string{MutedStyle.Render(MsgNoSimItems)}
	}
	lines := make([]string, 0, len(items))
	for _, p := range items {
		lines = append(lines, fmt.Sprintf("%s  %s", TitleStyle.Render(p.Name), MutedStyle.Render(ItemMeta(p))))
	}
	return lines
}
