package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/Mikko-Finell/maze-defence/internal/simtypes"
	"github.com/Mikko-Finell/maze-defence/internal/store"
)

var flagTicks int64

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the headless simulation loop",
	Long: `Pumps the driver tick-ms at a time for the requested number of ticks,
recording one event-log fingerprint per tick to the replay database (§8
property 1 "same seed replays bit-identical"). Running the same seed twice
and comparing the two sessions' fingerprints is the replay-equality audit.`,
	Run: runRun,
}

func init() {
	runCmd.Flags().Int64Var(&flagTicks, "ticks", 600, "number of ticks to simulate")
}

func runRun(cmd *cobra.Command, args []string) {
	t := loadTuning()
	d := newDriver(t)

	st, err := store.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: could not open replay database: %v\n", err)
		st = nil
	}

	var sessionID string
	if st != nil {
		sessionID, err = st.NewRun(uint64(flagSeed))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not create run record: %v\n", err)
			sessionID = ""
		}
		defer st.Close()
	}

	for tick := int64(0); tick < flagTicks; tick++ {
		events := d.Pump(flagTickMs)
		if st != nil && sessionID != "" {
			hash := fingerprint(events)
			if err := st.RecordFingerprint(sessionID, tick, hash); err != nil {
				fmt.Fprintf(os.Stderr, "warning: could not record fingerprint: %v\n", err)
			}
		}
	}

	fmt.Printf("ran %d ticks at %dms, gold=%d tier=%d session=%s\n",
		flagTicks, flagTickMs, d.World.Gold(), d.World.DifficultyTier(), sessionID)
}

// fingerprint hashes one tick's event log into a stable hex digest: a
// deterministic replay must produce the same digest sequence for the same
// seed and tick count (§8).
func fingerprint(events []simtypes.Event) string {
	h := xxhash.New()
	for _, e := range events {
		fmt.Fprintf(h, "%T:%+v|", e, e)
	}
	return strconv.FormatUint(h.Sum64(), 16)
}
