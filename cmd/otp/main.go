package main

import (
	"flag"
	"fmt"
	"os"

	kitlog "github.com/go-kit/kit/log"

	otp "github.com/m-jeu/orbital-transfer-pathfinder"
	"github.com/m-jeu/orbital-transfer-pathfinder/pathfind"
)

// This binary only wires the catalog, the configuration and the library
// together: generate candidate orbits, derive the maneuvers, search, print.

var (
	bodyName   string
	startName  string
	targetName string
	guided     bool
	quiet      bool
)

func init() {
	flag.StringVar(&bodyName, "body", "Earth", "central body to plan around")
	flag.StringVar(&startName, "from", "KSC_Parking", "start orbit")
	flag.StringVar(&targetName, "to", "GEO", "target orbit")
	flag.BoolVar(&guided, "guided", false, "use the heuristic-guided search policy instead of the hop-biased one")
	flag.BoolVar(&quiet, "quiet", false, "suppress progress output")
}

func main() {
	flag.Parse()
	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))

	body, err := otp.CentralBodyFromString(bodyName)
	if err != nil {
		fatal(logger, err)
	}
	start, err := otp.KnownOrbitFromString(startName)
	if err != nil {
		fatal(logger, err)
	}
	target, err := otp.KnownOrbitFromString(targetName)
	if err != nil {
		fatal(logger, err)
	}
	if start.Body != body || target.Body != body {
		fatal(logger, fmt.Errorf("orbits %s and %s must both be around %s", startName, targetName, body))
	}

	conf := otp.PlannerConfig()
	limits := conf.SectionLimits
	if limits == nil && body == otp.Earth {
		// LEO/MEO/HEO split.
		limits = []int{body.AddRadius(150000), body.AddRadius(20000000)}
	}

	var progress pathfind.Reporter
	if !quiet {
		progress = otp.NewLogReporter(logger, "maneuvers")
	}

	collection := otp.NewOrbitCollection(body, otp.DefaultVariants())
	collection.AddOrbit(start)
	collection.AddOrbit(target)
	if err := collection.GenerateOrbits(conf.PerBand, limits, conf.InclinationStep); err != nil {
		fatal(logger, err)
	}
	logger.Log("orbits", len(collection.Orbits()))
	collection.ComputeAllManeuvers(progress)

	policy := pathfind.HopBiased(conf.HopBias)
	if guided {
		policy = pathfind.Guided(otp.TransferHeuristic)
	}
	if !quiet {
		progress = otp.NewLogReporter(logger, "search")
	}
	graph := pathfind.New(collection.Nodes(), pathfind.WithPolicy(policy))
	total, maneuvers, orbits, err := graph.ShortestPath(start, target, progress)
	if err != nil {
		fatal(logger, err)
	}

	fmt.Printf("Found plan for %.1f m/s Delta-V from %s to %s:\n", total, start, target)
	for i, o := range orbits {
		fmt.Println(o)
		if i < len(maneuvers) {
			fmt.Println("  ", maneuvers[i])
		}
	}
}

func fatal(logger kitlog.Logger, err error) {
	logger.Log("error", err)
	os.Exit(1)
}
