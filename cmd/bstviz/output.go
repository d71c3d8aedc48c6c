package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/katalvlaran/bstviz/internal/render"
	"github.com/katalvlaran/bstviz/internal/session"
)

// printSnapshot writes the traversal footer, the stats row and the node
// positions of snap.
func printSnapshot(w io.Writer, snap session.Snapshot) {
	fmt.Fprintf(w, "Inorder:   %s\n", render.Sequence(snap.Inorder))
	fmt.Fprintf(w, "Preorder:  %s\n", render.Sequence(snap.Preorder))
	fmt.Fprintf(w, "Postorder: %s\n", render.Sequence(snap.Postorder))
	levels := make([]string, 0, len(snap.LevelOrder))
	for _, level := range snap.LevelOrder {
		levels = append(levels, render.Sequence(level))
	}
	if len(levels) == 0 {
		levels = append(levels, render.Sequence(nil))
	}
	fmt.Fprintf(w, "Levels:    %s\n", strings.Join(levels, " | "))

	root := "—"
	if snap.Stats.HasRoot {
		root = strconv.FormatInt(snap.Stats.Root, 10)
	}
	stats := tablewriter.NewWriter(w)
	stats.SetHeader([]string{"Nodes", "Height", "Root"})
	stats.Append([]string{strconv.Itoa(snap.Stats.Nodes), strconv.Itoa(snap.Stats.Height), root})
	stats.Render()

	if len(snap.Positions) == 0 {
		return
	}
	pos := tablewriter.NewWriter(w)
	pos.SetHeader([]string{"Value", "X", "Y", "Depth"})
	for _, p := range snap.Positions.Sorted() {
		pos.Append([]string{
			strconv.FormatInt(p.Node.Value(), 10),
			strconv.FormatFloat(p.X, 'f', 2, 64),
			strconv.FormatFloat(p.Y, 'f', 2, 64),
			strconv.Itoa(p.Depth),
		})
	}
	pos.Render()
}

// printMetrics writes every counter and gauge gathered from g.
func printMetrics(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Metric", "Labels", "Value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			tbl.Append([]string{mf.GetName(), labels(m.GetLabel()), value(mf.GetType(), m)})
		}
	}
	tbl.Render()

	return nil
}

func labels(pairs []*dto.LabelPair) string {
	parts := make([]string, 0, len(pairs))
	for _, lp := range pairs {
		parts = append(parts, lp.GetName()+"="+lp.GetValue())
	}

	return strings.Join(parts, ",")
}

func value(t dto.MetricType, m *dto.Metric) string {
	switch t {
	case dto.MetricType_COUNTER:
		return strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
	case dto.MetricType_GAUGE:
		return strconv.FormatFloat(m.GetGauge().GetValue(), 'f', -1, 64)
	default:
		return t.String()
	}
}
