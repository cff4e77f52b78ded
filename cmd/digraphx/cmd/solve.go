package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ratiograph/digraphx/core"
	"github.com/ratiograph/digraphx/cycleratio"
	"github.com/ratiograph/digraphx/graphadapter"
	"github.com/ratiograph/digraphx/numeric"
)

// edgeSpec is one edge of the JSON graph description accepted by "solve".
// Directed is only honored when the graph itself is mixed (see graphSpec);
// otherwise every edge takes the graph's default orientation.
type edgeSpec struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Cost     float64 `json:"cost"`
	Time     float64 `json:"time"`
	Directed *bool   `json:"directed,omitempty"`
}

// graphSpec is the top-level JSON graph description accepted by "solve".
// Mixed selects core.NewMixedGraph so individual edges may override the
// graph's default orientation via their own Directed field.
type graphSpec struct {
	Edges []edgeSpec `json:"edges"`
	Mixed bool       `json:"mixed,omitempty"`
}

func newSolveCommand(ctx context.Context) *cobra.Command {
	var (
		filePath    string
		direction   string
		r0          float64
		defaultTime float64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find the minimum or maximum cost/time cycle ratio of a graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if !cmd.Flags().Changed("default-time") && viper.IsSet("default_time") {
				defaultTime = viper.GetFloat64("default_time")
			}

			return runSolve(filePath, direction, r0, defaultTime)
		},
	}
	cmd.Flags().StringVarP(&filePath, "file", "f", "", "path to a JSON graph description (reads stdin if empty)")
	cmd.Flags().StringVarP(&direction, "direction", "d", "min", `optimization direction: "min" or "max"`)
	cmd.Flags().Float64VarP(&r0, "r0", "r", 0, "initial feasible ratio bound")
	cmd.Flags().Float64Var(&defaultTime, "default-time", 1, `default "time" attribute filled in for edges missing it`)

	return cmd
}

func runSolve(filePath, direction string, r0, defaultTime float64) error {
	data, err := readGraphInput(filePath)
	if err != nil {
		return errors.Wrap(err, "reading graph input")
	}

	var spec graphSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return errors.Wrap(err, "parsing graph JSON")
	}

	var g *core.Graph
	if spec.Mixed {
		g = core.NewMixedGraph(core.WithWeighted())
	} else {
		g = core.NewGraph(core.WithDirected(true), core.WithWeighted())
	}
	for _, e := range spec.Edges {
		edgeOpts := []core.EdgeOption{
			core.WithEdgeAttr("cost", e.Cost),
			core.WithEdgeAttr("time", e.Time),
		}
		if spec.Mixed && e.Directed != nil {
			edgeOpts = append(edgeOpts, core.WithEdgeDirected(*e.Directed))
		}
		if _, err := g.AddEdge(e.From, e.To, 0, edgeOpts...); err != nil {
			return errors.Wrapf(err, "adding edge %s->%s", e.From, e.To)
		}
	}
	graphadapter.SetDefault(g, "time", defaultTime)

	if err := graphadapter.RequireDirectable(g); err != nil {
		return err
	}
	stats := graphadapter.Describe(g)
	log.WithField("weighted", g.Weighted()).Debug("digraphx: graph accepted for solving")

	d := graphadapter.FromCoreGraph(g)
	cost := func(e *core.Edge) numeric.Float64Domain {
		v, _ := e.Attr("cost")

		return numeric.Float64Domain(v)
	}
	time := func(e *core.Edge) numeric.Float64Domain {
		v, _ := e.Attr("time")

		return numeric.Float64Domain(v)
	}

	dist := make(map[string]numeric.Float64Domain, g.VertexCount())
	for _, v := range g.Vertices() {
		dist[v] = 0
	}

	var (
		ratio numeric.Float64Domain
		cycle []*core.Edge
	)

	switch direction {
	case "min":
		solver := cycleratio.NewMinCycleRatioSolver[string, *core.Edge, numeric.Float64Domain](d, cost, time)
		ratio, cycle, err = solver.Run(dist, numeric.Float64Domain(r0))
	case "max":
		solver := cycleratio.NewMaxCycleRatioSolver[string, *core.Edge, numeric.Float64Domain](d, cost, time)
		ratio, cycle, err = solver.Run(dist, numeric.Float64Domain(r0))
	default:
		return errors.Errorf(`unknown direction %q, want "min" or "max"`, direction)
	}
	if err != nil {
		return errors.Wrap(err, "solving cycle ratio")
	}

	log.WithField("ratio", float64(ratio)).Info("digraphx: solve complete")

	return printResult(ratio, cycle, stats)
}

func readGraphInput(filePath string) ([]byte, error) {
	if filePath == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(filePath)
}

// resultEdge is the JSON shape of one edge of the returned cycle.
type resultEdge struct {
	ID   string  `json:"id"`
	From string  `json:"from"`
	To   string  `json:"to"`
	Cost float64 `json:"cost"`
	Time float64 `json:"time"`
}

func printResult(ratio numeric.Float64Domain, cycle []*core.Edge, stats *core.GraphStats) error {
	out := struct {
		Ratio float64         `json:"ratio"`
		Cycle []resultEdge    `json:"cycle"`
		Graph core.GraphStats `json:"graph"`
	}{Ratio: float64(ratio), Graph: *stats}

	for _, e := range cycle {
		cost, _ := e.Attr("cost")
		time, _ := e.Attr("time")
		out.Cycle = append(out.Cycle, resultEdge{ID: e.ID, From: e.From, To: e.To, Cost: cost, Time: time})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshalling result")
	}
	fmt.Println(string(data))

	return nil
}
