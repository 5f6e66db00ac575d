package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"handmade/internal/engine"
	"handmade/internal/physics"
	"handmade/internal/world"
)

const (
	formatText = "text"
	formatYAML = "yaml"
)

type checkOptions struct {
	steps      int
	deltaTime  float32
	format     string
	broadPhase string
}

type contactReport struct {
	A    string               `yaml:"a"`
	B    string               `yaml:"b"`
	ARef engine.GameObjectRef `yaml:"a_ref"`
	BRef engine.GameObjectRef `yaml:"b_ref"`
}

type checkReport struct {
	Scene      string          `yaml:"scene"`
	Steps      int             `yaml:"steps"`
	Colliders  int             `yaml:"colliders"`
	Candidates int             `yaml:"candidates"`
	Contacts   []contactReport `yaml:"contacts"`
}

func newCheckCommand(env *Env) *cobra.Command {
	opts := checkOptions{steps: 1, deltaTime: 1.0 / 60, format: formatText, broadPhase: "grid"}
	cmd := &cobra.Command{
		Use:   "check [scene.yaml]",
		Short: "Load a scene headless and print the colliding pairs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := check(env, scenePath(args), opts)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), report, opts.format)
		},
	}
	cmd.Flags().IntVarP(&opts.steps, "steps", "n", opts.steps, "Number of simulation steps to run before reporting")
	cmd.Flags().Float32Var(&opts.deltaTime, "dt", opts.deltaTime, "Seconds per step")
	cmd.Flags().StringVarP(&opts.format, "output", "o", opts.format, "Output format: text or yaml")
	cmd.Flags().StringVar(&opts.broadPhase, "broad-phase", opts.broadPhase, "Broad phase: grid or naive")
	return cmd
}

func parseBroadPhase(name string) (physics.BroadPhase, error) {
	switch name {
	case "", "grid":
		return physics.BroadPhaseGrid, nil
	case "naive":
		return physics.BroadPhaseNaive, nil
	}
	return 0, fmt.Errorf("unknown broad phase %q", name)
}

func check(env *Env, path string, opts checkOptions) (checkReport, error) {
	if opts.steps < 1 {
		return checkReport{}, fmt.Errorf("steps must be at least 1, got %d", opts.steps)
	}
	if opts.format != formatText && opts.format != formatYAML {
		return checkReport{}, fmt.Errorf("unknown output format %q", opts.format)
	}
	bp, err := parseBroadPhase(opts.broadPhase)
	if err != nil {
		return checkReport{}, err
	}

	w := world.New(env.Config.Collision, env.Logger)
	w.Physics.SetBroadPhase(bp)
	if err := w.LoadScene(path); err != nil {
		return checkReport{}, err
	}
	for i := 0; i < opts.steps; i++ {
		w.Step(opts.deltaTime)
	}

	stats := w.Physics.Stats()
	report := checkReport{
		Scene:      path,
		Steps:      opts.steps,
		Colliders:  stats.Colliders,
		Candidates: stats.Candidates,
		Contacts:   []contactReport{},
	}
	for _, p := range w.Physics.Pairs() {
		a, b := p.Refs()
		report.Contacts = append(report.Contacts, contactReport{A: p.A.Name, B: p.B.Name, ARef: a, BRef: b})
	}
	env.Logger.Info("scene checked",
		zap.String("scene", path),
		zap.Int("steps", opts.steps),
		zap.Int("contacts", len(report.Contacts)))
	return report, nil
}

func writeReport(out io.Writer, report checkReport, format string) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(out, "%s: %d colliders, %d contacts after %d step(s)\n",
		report.Scene, report.Colliders, len(report.Contacts), report.Steps)
	for _, c := range report.Contacts {
		fmt.Fprintf(out, "  %s <-> %s\n", c.A, c.B)
	}
	return nil
}
