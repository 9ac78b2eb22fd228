package trace

import (
	"encoding/csv"
	"io"
	"strconv"

	"energy_env/internal/env"
)

// csvHeader defines the trajectory file layout: one row per transition,
// observation columns in encoder order.
var csvHeader = []string{
	"episode_id", "step", "action",
	"indoor_temp_c", "outside_temp_c", "soc", "sin_t", "cos_t", "price", "appliance_remaining_min",
	"reward", "done", "grid_power_kw",
	"energy_cost", "comfort_cost", "peak_cost", "battery_cycle_cost",
}

// CSVWriter streams transitions to a CSV trajectory file. It implements
// env.Recorder; reset events only start a new episode_id, they produce no
// row. Flush before closing the underlying writer.
type CSVWriter struct {
	w           *csv.Writer
	wroteHeader bool
}

func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{w: csv.NewWriter(w)}
}

func (c *CSVWriter) OnReset(env.ResetEvent) {}

func (c *CSVWriter) OnTransition(tr env.Transition) {
	if !c.wroteHeader {
		c.wroteHeader = true
		c.w.Write(csvHeader)
	}
	row := []string{
		tr.EpisodeID,
		strconv.Itoa(tr.Step),
		strconv.Itoa(tr.Action),
	}
	for _, v := range tr.Obs {
		row = append(row, formatFloat(v))
	}
	row = append(row,
		formatFloat(tr.Reward),
		strconv.FormatBool(tr.Done),
		formatFloat(tr.Info.GridPowerKW),
		formatFloat(tr.Info.Costs.EnergyCost),
		formatFloat(tr.Info.Costs.ComfortCost),
		formatFloat(tr.Info.Costs.PeakCost),
		formatFloat(tr.Info.Costs.BatteryCycleCost),
	)
	c.w.Write(row)
}

// Flush writes any buffered rows and reports the first write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
