package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/idilsaglam/packup/internal/model"
)

// SummaryLoadFailed replaces the whole status line when the insights
// request fails.
const SummaryLoadFailed = "Could not load context summary."

// weekday abbreviations, Monday-first to match the backend's indexing.
var weekdayNames = [7]string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

// WeekdayAbbrev maps a backend weekday index to its short name.
// Out-of-range indexes render as the raw number.
func WeekdayAbbrev(weekday int) string {
	if weekday >= 0 && weekday < len(weekdayNames) {
		return weekdayNames[weekday]
	}
	return strconv.Itoa(weekday)
}

// ContextSummary formats today's labelled context and the model
// metrics into one status sentence. ctx may be nil when the backend
// has not labelled the day yet.
func ContextSummary(ctx *model.TodayContext, metrics model.ModelMetrics) string {
	var txt string
	if ctx != nil {
		parts := []string{fmt.Sprintf("%s (%s)", ctx.DayType, WeekdayAbbrev(ctx.Weekday))}
		if ctx.HasWorkEvent {
			parts = append(parts, "work day")
		}
		if ctx.HasGymEvent {
			parts = append(parts, "gym day")
		}
		txt = "Today looks like: " + strings.Join(parts, " · ")
	} else {
		txt = "Today’s context is not labelled yet."
	}

	if metrics.Trained() {
		txt += fmt.Sprintf(" | Model trained on %d samples (F1: %.1f%%)", metrics.NSamples, metrics.F1*100)
	} else {
		txt += " | Model not fully trained yet."
	}
	return txt
}
