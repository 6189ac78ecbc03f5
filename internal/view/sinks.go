package view

// Sinks are the rendering surfaces fed by the synchronizer. Implementations
// must treat repeated identical commands as a no-op re-render.

type StatsSink interface {
	ShowStats(cmd StatsCommand)
}

type ChartSink interface {
	UpdateChart(cmd ChartCommand)
}

type DebtSink interface {
	ShowDebts(cmd DebtListCommand)
}

// NoticeSink shows transient notifications. It is driven by the interaction
// controller, not by render passes.
type NoticeSink interface {
	Notify(n Notice)
}
