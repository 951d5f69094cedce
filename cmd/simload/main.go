package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/simkit/simload"
	"github.com/simkit/simload/abi"
	"github.com/simkit/simload/simhost"
)

func main() {
	var (
		name     = flag.String("workload", "Smoke", "Registered workload to run")
		options  = flag.String("options", "", "Path to a YAML option file")
		seed     = flag.Int64("seed", 0, "Simulation seed")
		clientID = flag.Int("client", 0, "This client's index")
		clients  = flag.Int("clients", 1, "Total cooperating clients")
		list     = flag.Bool("list", false, "List registered workloads and exit")
		verbose  = flag.Bool("v", false, "Log debug-severity trace entries")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(simload.Names(), "\n"))
		return
	}

	if err := run(*name, *options, *seed, int32(*clientID), int32(*clients), *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(name, optionsPath string, seed int64, clientID, clients int32, verbose bool) error {
	w, err := simload.New(name)
	if err != nil {
		return err
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // best-effort flush on exit

	minSev := abi.SeverityInfo
	if verbose {
		minSev = abi.SeverityDebug
	}

	host := simhost.New(
		simhost.WithSeed(seed),
		simhost.WithClient(clientID, clients),
		simhost.WithLogger(logger),
		simhost.WithMinSeverity(minSev),
	)
	if optionsPath != "" {
		if err := host.LoadOptionsFile(optionsPath); err != nil {
			return err
		}
	}

	runErr := host.Run(w)

	fmt.Printf("\nWorkload: %s (seed %d, client %d/%d)\n", name, seed, clientID, clients)
	if len(host.Metrics()) > 0 {
		fmt.Println(renderMetrics(host.Metrics()))
	}
	if runErr != nil {
		return runErr
	}
	fmt.Println(passStyle.Render("PASS"))
	return nil
}
