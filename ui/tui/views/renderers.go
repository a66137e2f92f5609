package views

import (
	"simconsole/ui/tui/state"
)

func RenderDashboard(s state.AppState, width, height, cursor int, animCursor float64, spinnerView, chartView string) string {
	v := DashboardView{}
	return v.Render(s, ViewProps{
		Width:       width,
		Height:      height,
		Cursor:      cursor,
		AnimCursor:  animCursor,
		SpinnerView: spinnerView,
		ChartView:   chartView,
	})
}

func RenderConsole(s state.AppState, width, height, scrollY int) string {
	v := ConsoleView{}
	return v.Render(s, ViewProps{
		Width:   width,
		Height:  height,
		ScrollY: scrollY,
	})
}

func RenderModal(s state.AppState, width, height int) string {
	v := ModalView{}
	return v.Render(s, ViewProps{
		Width:  width,
		Height: height,
	})
}
