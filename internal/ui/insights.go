package ui

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/packup/internal/model"
)

const (
	// MsgInsightsFailed replaces the whole history view on a failed load.
	MsgInsightsFailed = "Failed to load insights."

	msgNoStats = "No item-level stats available yet. Use the checklist for a few days and mark whether items were needed."

	msgUntrained = "Not enough labelled data yet. Use the checklist and then run `packup train` a few times to build history."
)

// InsightsView renders the full history view: today's context, model
// performance, the per-item forget table, and the top-forgotten
// insight sentence.
func InsightsView(in *model.Insights) string {
	var blocks []string

	if ctx := in.TodayContext; ctx != nil {
		line := fmt.Sprintf("%s · weekday index %d", ctx.DayType, ctx.Weekday)
		if ctx.HasWorkEvent {
			line += " · Work event"
		}
		if ctx.HasGymEvent {
			line += " · Gym event"
		}
		blocks = append(blocks, TitleStyle.Render("Today’s context")+"\n"+MutedStyle.Render(line))
	}

	blocks = append(blocks, metricsBlock(in.ModelMetrics))

	if len(in.PerItemStats) == 0 {
		blocks = append(blocks, MutedStyle.Render(msgNoStats))
	} else {
		tbl := NewTable("Item", "Needed days", "Forgotten days", "Forget rate")
		for _, st := range in.PerItemStats {
			tbl.AddRow(st.Name,
				fmt.Sprintf("%d", st.NeededDays),
				fmt.Sprintf("%d", st.ForgottenDays),
				fmt.Sprintf("%.1f%%", st.ForgetRate*100))
		}
		blocks = append(blocks, TitleStyle.Render("Per-item forget statistics")+"\n"+tbl.View())
	}

	if s := topForgottenLine(in.TopForgotten); s != "" {
		blocks = append(blocks, MutedStyle.Render(s))
	}

	return strings.Join(blocks, "\n\n")
}

func metricsBlock(m model.ModelMetrics) string {
	if !m.Trained() {
		return TitleStyle.Render("Model performance") + "\n" + MutedStyle.Render(msgUntrained)
	}
	detail := fmt.Sprintf("Accuracy: %.1f%% · Precision: %.1f%% · Recall: %.1f%% · F1: %.1f%%\nSamples used: %d",
		m.Accuracy*100, m.Precision*100, m.Recall*100, m.F1*100, m.NSamples)
	return TitleStyle.Render("Model performance (on training data)") + "\n" + MutedStyle.Render(detail)
}

// topForgottenLine summarizes the worst offender, or returns "" when
// there is nothing meaningful to say.
func topForgottenLine(top []model.ItemStats) string {
	if len(top) == 0 {
		return ""
	}
	worst := top[0]
	if worst.NeededDays <= 0 || worst.ForgetRate <= 0 {
		return ""
	}
	return fmt.Sprintf("Insight: you most often forget %q: needed on %d day(s), forgotten on %d (%.1f%% forget rate).",
		worst.Name, worst.NeededDays, worst.ForgottenDays, worst.ForgetRate*100)
}
