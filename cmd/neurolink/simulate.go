package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neurolink/internal/core"
	"github.com/vovakirdan/neurolink/internal/games/neurolink"
	"github.com/vovakirdan/neurolink/internal/platform/tui"
	"github.com/vovakirdan/neurolink/internal/storage"
)

var (
	flagTicks     int
	flagFireEvery int
	flagOneRun    bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the autopilot headless and print a summary",
	Long: `Play the game with a simple autopilot, without a terminal UI or audio.
Runs restart after each game over until the tick budget is spent.
The same --seed and tuning always produce the same summary.

Examples:
  neurolink simulate
  neurolink simulate --ticks 3600 --seed 7
  neurolink simulate --difficulty hard --single-run`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	addConfigFlags(simulateCmd)
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 36000, "Number of ticks to simulate")
	simulateCmd.Flags().IntVar(&flagFireEvery, "fire-every", 6, "Ticks between autopilot shots")
	simulateCmd.Flags().BoolVar(&flagOneRun, "single-run", false, "Stop at the first game over")
}

// simSummary collects what a headless run did.
type simSummary struct {
	seed     int64
	ticks    int
	maxLevel int
	cues     map[string]int
	final    core.GameState
	hash     uint64
}

func runSimulate(cmd *cobra.Command, args []string) {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	if flagTicks <= 0 {
		fail("--ticks must be positive")
	}
	gameCfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := storage.OpenSession()
	if err != nil {
		fail("%v", err)
	}
	defer session.Close()

	game := neurolink.NewWithConfig(gameCfg)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: seed})
	logger.Info("simulation started", "seed", seed, "ticks", flagTicks, "difficulty", flagDifficulty)

	sum := simulate(game, session, flagTicks, flagFireEvery, flagOneRun, func(st core.GameState) {
		logger.Info("game over", "score", st.Score, "level", st.Level)
	})
	sum.seed = seed

	runs, err := session.TopRuns(neurolink.ID, maxListedRuns)
	if err != nil {
		logger.Warn("cannot read session runs", "err", err)
	}
	stats, err := session.Stats(neurolink.ID)
	if err != nil {
		logger.Warn("cannot read session stats", "err", err)
	}
	printSummary(os.Stdout, sum, runs, stats)
}

// simulate drives game with the autopilot for up to ticks steps, recording
// each game over in session.
func simulate(game *neurolink.Game, session *storage.Session, ticks, fireEvery int, singleRun bool, onGameOver func(core.GameState)) simSummary {
	pilot := neurolink.NewAutopilot(fireEvery)
	sum := simSummary{cues: make(map[string]int)}
	recorded := false

	for range ticks {
		in := pilot.Next(game.Sim())
		if game.State().GameOver {
			in.Set(core.ActionRestart)
		}

		res := game.Step(in)
		sum.ticks++
		for _, c := range res.Cues {
			sum.cues[c]++
		}
		sum.maxLevel = max(sum.maxLevel, res.State.Level)

		if !res.State.GameOver {
			recorded = false
			continue
		}
		if recorded {
			continue
		}
		recorded = true
		onGameOver(res.State)
		//nolint:errcheck // In-memory write, the summary still prints without it
		session.RecordRun(storage.Run{
			GameID: neurolink.ID,
			Score:  res.State.Score,
			Level:  res.State.Level,
			Ticks:  game.Sim().Tick(),
		})
		if singleRun {
			break
		}
	}

	sum.final = game.State()
	snap := game.Sim().Snapshot()
	sum.hash = snap.Hash()
	return sum
}

// printSummary writes the run summary. The run count comes from stats, since
// runs only holds the top of the table.
func printSummary(w io.Writer, sum simSummary, runs []storage.Run, stats *storage.SessionStats) {
	count := len(runs)
	if stats != nil {
		count = stats.Runs
	}

	fmt.Fprintf(w, "seed        %d\n", sum.seed)
	fmt.Fprintf(w, "ticks       %d\n", sum.ticks)
	fmt.Fprintf(w, "runs        %d\n", count)
	fmt.Fprintf(w, "high score  %d\n", sum.final.HighScore)
	fmt.Fprintf(w, "max level   %d\n", sum.maxLevel)
	fmt.Fprintf(w, "final       score %d, level %d, lives %d\n", sum.final.Score, sum.final.Level, sum.final.Lives)
	fmt.Fprintf(w, "state hash  %016x\n", sum.hash)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "cues:")
	for _, c := range slices.Sorted(maps.Keys(sum.cues)) {
		fmt.Fprintf(w, "  %-10s %d\n", c, sum.cues[c])
	}

	if table := tui.RenderSessionSummary("NeuroLink", runs, stats); table != "" {
		fmt.Fprintln(w)
		fmt.Fprint(w, table)
	}
}
