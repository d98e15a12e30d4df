package main

import (
	"fmt"
	"net"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	"github.com/charmbracelet/wish/logging"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/gfgen/Van-Der-Waals-Interactions/internal/analysis"
	"github.com/gfgen/Van-Der-Waals-Interactions/internal/config"
	"github.com/gfgen/Van-Der-Waals-Interactions/internal/storage"
	"github.com/gfgen/Van-Der-Waals-Interactions/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string

	// run overrides
	frames    int
	seed      int64
	particles int
	saveRun   bool

	// live
	frameRate int

	// serve
	sshHost    string
	sshPort    string
	sshHostKey string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vdw",
		Short: "van der waals particle interaction lab",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLive(cmd, args)
		},
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vdw", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named preset configuration")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and plot the recorded scalars",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 500, "number of frames")
	runCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	runCmd.Flags().IntVar(&particles, "particles", 0, "override particle count")
	runCmd.Flags().BoolVar(&saveRun, "save", false, "save run history to the data directory")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "interactive live view",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frames per second")
	liveCmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "serve the live view over ssh",
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&sshHost, "host", "localhost", "ssh listen host")
	serveCmd.Flags().StringVar(&sshPort, "port", "2222", "ssh listen port")
	serveCmd.Flags().StringVar(&sshHostKey, "host-key", ".ssh/vdw_host_key", "ssh host key path")
	serveCmd.Flags().IntVar(&frameRate, "fps", 20, "frames per second per session")

	spectrumCmd := &cobra.Command{
		Use:   "spectrum [run_id]",
		Short: "power spectrum of a saved run's pressure history",
		Args:  cobra.ExactArgs(1),
		RunE:  runSpectrum,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list named presets",
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, liveCmd, serveCmd, spectrumCmd, listCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig resolves precedence: explicit file, then preset, then defaults.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg, ok := config.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		copied := *cfg
		return &copied, nil
	}
	return config.DefaultConfig(), nil
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Seed = seed
	if particles > 0 {
		cfg.Cloud.Particles = particles
	}

	state, err := cfg.BuildState()
	if err != nil {
		return err
	}

	history := make([]storage.FrameRecord, 0, frames)
	start := time.Now()
	for i := 0; i < frames; i++ {
		state.StepFrame()
		history = append(history, storage.RecordFrame(i, state))
	}
	elapsed := time.Since(start)

	e := state.Energy()
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "law\t%s\n", state.LawName())
	fmt.Fprintf(w, "particles\t%d\n", state.NumParticles())
	fmt.Fprintf(w, "frames\t%d (%d steps)\n", frames, frames*state.StepsPerFrame())
	fmt.Fprintf(w, "wall time\t%s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "kinetic\t%.6f\n", e.Kinetic)
	fmt.Fprintf(w, "potential\t%.6f\n", e.Potential)
	fmt.Fprintf(w, "temperature\t%.6f\n", state.Temperature())
	fmt.Fprintf(w, "avg pressure\t%.6f\n", state.AvgPressure())
	fmt.Fprintf(w, "volume\t%.3f\n", state.Bound().Volume())
	w.Flush()

	plotHistory(history)

	if saveRun {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		id, err := store.Save(storage.RunMetadata{
			Law:            state.LawName(),
			Timestamp:      time.Now(),
			Seed:           seed,
			Dt:             state.Dt(),
			StepsPerFrame:  state.StepsPerFrame(),
			Particles:      state.NumParticles(),
			Frames:         frames,
			FinalKinetic:   e.Kinetic,
			FinalPotential: e.Potential,
			AvgPressure:    state.AvgPressure(),
		}, history)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", id)
	}
	return nil
}

func plotHistory(history []storage.FrameRecord) {
	if len(history) < 2 {
		return
	}
	total := make([]float64, len(history))
	pressure := make([]float64, len(history))
	for i, rec := range history {
		total[i] = rec.Kinetic + rec.Potential
		pressure[i] = rec.Pressure
	}

	fmt.Println()
	fmt.Println(asciigraph.Plot(total,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("total energy"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(pressure,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("average pressure"),
	))
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if seed != 0 {
		cfg.Seed = seed
	}

	state, err := cfg.BuildState()
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(tui.New(state, frameRate), tea.WithAltScreen()).Run()
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Each session runs its own simulation built from the shared config.
	teaHandler := func(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
		sessionCfg := *cfg
		sessionCfg.Seed = time.Now().UnixNano()
		state, err := sessionCfg.BuildState()
		if err != nil {
			log.Error("failed to build simulation", "error", err)
			return nil, nil
		}
		return tui.New(state, frameRate), []tea.ProgramOption{tea.WithAltScreen()}
	}

	srv, err := wish.NewServer(
		wish.WithAddress(net.JoinHostPort(sshHost, sshPort)),
		wish.WithHostKeyPath(sshHostKey),
		wish.WithMiddleware(
			bm.Middleware(teaHandler),
			activeterm.Middleware(),
			logging.Middleware(),
		),
	)
	if err != nil {
		return err
	}

	log.Info("serving live view over ssh", "host", sshHost, "port", sshPort)
	return srv.ListenAndServe()
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	history, err := store.LoadHistory(args[0])
	if err != nil {
		return err
	}

	pressure := make([]float64, len(history))
	for i, rec := range history {
		pressure[i] = rec.Pressure
	}

	ps := analysis.PowerSpectrum(pressure)
	if len(ps) < 2 {
		return fmt.Errorf("run %s has too little history for a spectrum", args[0])
	}

	fmt.Println(asciigraph.Plot(ps,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption("pressure power spectrum"),
	))
	if period := analysis.DominantPeriod(pressure); period > 0 {
		fmt.Printf("\ndominant period: %.1f frames\n", period)
	}
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	store := storage.New(dataDir)
	runs, err := store.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tLAW\tPARTICLES\tFRAMES\tAVG PRESSURE\tWHEN")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%.5f\t%s\n",
			r.ID, r.Law, r.Particles, r.Frames, r.AvgPressure,
			r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLAW\tPARTICLES\tBOX\tTARGET T\tPINNED")
	for name, cfg := range config.Presets {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0fx%.0fx%.0f\t%.2f\t%v\n",
			name, cfg.Law, cfg.Cloud.Particles,
			cfg.Bound.X, cfg.Bound.Y, cfg.Bound.Z,
			cfg.Thermo.TargetTemp, cfg.Pressure.Pinned)
	}
	return w.Flush()
}
