// Package cli routes subcommands and owns the non-interactive views
// (simulation, history, training trigger, auth).
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/idilsaglam/packup/internal/api"
	"github.com/idilsaglam/packup/internal/auth"
	"github.com/idilsaglam/packup/internal/model"
	"github.com/idilsaglam/packup/internal/tui"
	"github.com/idilsaglam/packup/internal/ui"
)

// Deps carries what every subcommand needs.
type Deps struct {
	Client *api.Client
	Log    *zap.Logger
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error,
// 2 usage). No arguments opens the dashboard, like the original
// landing page.
func Run(args []string, d Deps) int {
	if len(args) == 0 {
		return doDashboard(d)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "dashboard":
		return doDashboard(d)

	case "simulate":
		return doSimulate(a, d)

	case "history":
		return doHistory(d)

	case "train":
		return doTrain(d)

	case "auth":
		if len(a) == 0 {
			ui.Fail("usage: packup auth <login|logout|status>")
			return 2
		}
		switch a[0] {
		case "login":
			return doAuthLogin()
		case "logout":
			return doAuthLogout()
		case "status":
			return doAuthStatus()
		default:
			ui.Fail("usage: packup auth <login|logout|status>")
			return 2
		}
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`packup - packing checklist client

Usage:
  packup [subcommand] [args]

Subcommands:
  dashboard          Interactive checklist (default)
  simulate -weekday N [-holiday] [-work] [-gym]
                     Preview predictions for a hypothetical day
                     (weekday is Monday-first, 0..6)
  history            Accuracy and forget-rate statistics
  train              Retrain the prediction model
  auth <login|logout|status>   Session token

Examples:
  packup
  packup simulate -weekday 5 -work
  packup history
`)
}

// ---------------------------------------------------
// Views
// ---------------------------------------------------

func doDashboard(d Deps) int {
	if err := tui.Run(d.Client, d.Log); err != nil {
		ui.Fail("dashboard: " + err.Error())
		return 1
	}
	return 0
}

// doSimulate previews predictions for a hypothetical day. Pure read
// path: no checklist state exists here, let alone gets touched.
func doSimulate(args []string, d Deps) int {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	weekday := fs.Int("weekday", -1, "weekday index, Monday-first (0..6)")
	holiday := fs.Bool("holiday", false, "treat the day as a holiday")
	work := fs.Bool("work", false, "the day has a work event")
	gym := fs.Bool("gym", false, "the day has a gym event")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *weekday < 0 || *weekday > 6 {
		ui.Fail("simulate: weekday must be 0..6 (0 = Monday)")
		return 2
	}

	sc := model.SimContext{
		Weekday:      *weekday,
		IsHoliday:    *holiday,
		HasWorkEvent: *work,
		HasGymEvent:  *gym,
	}
	items, err := d.Client.SimulatePredict(context.Background(), sc)
	if err != nil {
		d.Log.Error("simulate failed", zap.Error(err))
		ui.Fail(ui.MsgSimFailed)
		return 1
	}
	title := fmt.Sprintf("Simulated: %s", ui.WeekdayAbbrev(*weekday))
	lines := append([]string{ui.TitleStyle.Render(title)}, ui.SimulationLines(items)...)
	fmt.Println(ui.Panel(lines))
	return 0
}

func doHistory(d Deps) int {
	in, err := d.Client.Insights(context.Background())
	if err != nil {
		d.Log.Error("load insights failed", zap.Error(err))
		ui.Fail(ui.MsgInsightsFailed)
		return 1
	}
	fmt.Println(ui.InsightsView(in))
	return 0
}

// doTrain triggers a retrain, then re-fetches the context summary so
// the printed status reflects the new model.
func doTrain(d Deps) int {
	if err := d.Client.TrainModel(context.Background()); err != nil {
		d.Log.Error("train model failed", zap.Error(err))
		ui.Fail("Could not train model yet. Need more diverse data.")
		return 1
	}
	ui.OK("Model trained successfully!")
	in, err := d.Client.Insights(context.Background())
	if err != nil {
		d.Log.Error("load context summary failed", zap.Error(err))
		fmt.Println(ui.MutedStyle.Render(ui.SummaryLoadFailed))
		return 0
	}
	fmt.Println(ui.ContextSummary(in.TodayContext, in.ModelMetrics))
	return 0
}

// ---------------------------------------------------
// Auth subcommands
// ---------------------------------------------------

func doAuthLogin() int {
	fmt.Print("Paste your session token: ")
	var token string
	if _, err := fmt.Scanln(&token); err != nil {
		ui.Fail("read token: " + err.Error())
		return 1
	}
	if err := auth.SetToken(token); err != nil {
		ui.Fail("save token: " + err.Error())
		return 1
	}
	ui.OK("logged in")
	return 0
}

func doAuthLogout() int {
	ti, _ := auth.GetToken()
	if ti != nil && ti.Source == "env" {
		ui.OK("token is provided by PACKUP_TOKEN env var (nothing to delete)")
		return 0
	}
	if err := auth.DeleteToken(); err != nil {
		ui.Fail("logout: " + err.Error())
		return 1
	}
	ui.OK("logged out")
	return 0
}

func doAuthStatus() int {
	ti, _ := auth.GetToken()
	if ti == nil {
		fmt.Println(ui.MutedStyle.Render("not logged in"))
		fmt.Println("Run: packup auth login")
		return 0
	}
	fmt.Printf("source: %s\n", ti.Source)
	if ti.Source == "file" {
		fmt.Printf("saved: %s\n", ti.CreatedAt.UTC().Format(time.RFC3339))
	}
	fmt.Println("env override: PACKUP_TOKEN")
	return 0
}
