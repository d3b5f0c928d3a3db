package model

// PredictedItem is one backend prediction for an item, either for today
// or for a simulated context. Immutable once received; a fresh load
// replaces the whole list.
type PredictedItem struct {
	ItemID          int64   `json:"item_id"`
	Name            string  `json:"name"`
	NeedProbability float64 `json:"need_probability"`
	ForgetRisk      float64 `json:"forget_risk"`
}

// ChecklistStatus is one unit of the sync payload sent on a leaving
// action. NeededLabel is asserted by the client; the backend may use it
// as ground truth for training.
type ChecklistStatus struct {
	ItemID      int64 `json:"item_id"`
	Packed      bool  `json:"packed"`
	NeededLabel bool  `json:"needed_label"`
}

// TodayContext is the backend's labelling of the current day.
// Weekday is Monday-first, 0..6.
type TodayContext struct {
	Weekday      int    `json:"weekday"`
	DayType      string `json:"day_type"`
	HasWorkEvent bool   `json:"has_work_event"`
	HasGymEvent  bool   `json:"has_gym_event"`
}

// ModelMetrics describes the backend model's training-data performance.
// A zero NSamples means the model is not trained yet.
type ModelMetrics struct {
	NSamples  int     `json:"n_samples"`
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Trained reports whether there is a usable model behind the metrics.
func (m ModelMetrics) Trained() bool { return m.NSamples > 0 }

// ItemStats is one row of per-item forget statistics in the history view.
type ItemStats struct {
	Name          string  `json:"name"`
	NeededDays    int     `json:"needed_days"`
	ForgottenDays int     `json:"forgotten_days"`
	ForgetRate    float64 `json:"forget_rate"`
}

// Insights is the /api/insights response.
// TodayContext is nil when the backend has not labelled the day.
type Insights struct {
	TodayContext *TodayContext `json:"today_context"`
	ModelMetrics ModelMetrics  `json:"model_metrics"`
	PerItemStats []ItemStats   `json:"per_item_stats"`
	TopForgotten []ItemStats   `json:"top_forgotten"`
}

// SimContext is a hypothetical day sent to the simulation endpoint.
type SimContext struct {
	Weekday      int  `json:"weekday"`
	IsHoliday    bool `json:"is_holiday"`
	HasWorkEvent bool `json:"has_work_event"`
	HasGymEvent  bool `json:"has_gym_event"`
}
