package cmd

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"ratectl/internal/audio"
	"ratectl/internal/config"
	"ratectl/internal/hal"
	"ratectl/internal/log"
)

// Swapped out in tests.
var (
	listOutputDevices = audio.ListOutputDevices
	sleep             = time.Sleep
)

// dispatch loads the configuration and routes to the handler for the
// single requested operation.
func dispatch(cmd *cobra.Command, opts *Options, newService ServiceFactory, stdout, stderr io.Writer) int {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if level, ok := log.ParseLevel(cfg.LogLevel); ok {
		log.SetLevel(level)
	}
	if cfg.Debug || opts.Verbose {
		log.SetLevel(log.LevelDebug)
	}

	switch {
	case opts.Devices:
		return runDevices(stdout, stderr)
	case opts.List:
		return runList(hal.NewQuerier(newService(cfg)), cfg, stdout, stderr)
	case opts.Current:
		return runCurrent(hal.NewQuerier(newService(cfg)), stdout, stderr)
	case opts.SetRate != "":
		svc := newService(cfg)
		querier := hal.NewQuerier(svc)
		setter := hal.NewSetter(svc, cfg.Set.SettleDelay)
		return runSet(querier, setter, opts.SetRate, cfg, stdout, stderr)
	default:
		// Usage was needed, not requested.
		_ = cmd.Help()
		return 1
	}
}

func runDevices(stdout, stderr io.Writer) int {
	if err := listOutputDevices(stdout); err != nil {
		fmt.Fprintf(stderr, "Error: unable to list audio devices: %v\n", err)
		return 1
	}
	return 0
}

func runList(q *hal.Querier, cfg *config.Config, stdout, stderr io.Writer) int {
	id, err := q.ResolveDefaultOutput()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Audio device: %s\n", q.Name(id))

	rates := q.AvailableRates(id)
	if len(rates) == 0 {
		fmt.Fprintln(stdout, "No sample rate information reported by the device.")
		return 0
	}

	current, curErr := q.CurrentRate(id)

	fmt.Fprintln(stdout, "Available sample rates:")
	for _, rate := range rates {
		suffix := ""
		if curErr == nil && scalar.EqualWithinAbs(rate, current, cfg.Set.VerifyTolerance) {
			suffix = " (current)"
		}
		fmt.Fprintf(stdout, "  %.1f Hz%s\n", rate, suffix)
	}
	return 0
}

func runCurrent(q *hal.Querier, stdout, stderr io.Writer) int {
	id, err := q.ResolveDefaultOutput()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rate, err := q.CurrentRate(id)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Audio device: %s\n", q.Name(id))
	fmt.Fprintf(stdout, "Current sample rate: %.1f Hz\n", rate)
	return 0
}

func runSet(q *hal.Querier, setter *hal.Setter, rateArg string, cfg *config.Config, stdout, stderr io.Writer) int {
	target, err := strconv.ParseFloat(rateArg, 64)
	if err != nil || target <= 0 {
		fmt.Fprintf(stderr, "Error: invalid sample rate %q\n", rateArg)
		return 1
	}

	id, err := q.ResolveDefaultOutput()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rates := q.AvailableRates(id)
	if len(rates) > 0 && !containsRate(rates, target) {
		fmt.Fprintf(stderr, "Error: %.1f Hz is not supported by %s\n", target, q.Name(id))
		fmt.Fprintln(stderr, "Available sample rates:")
		for _, rate := range rates {
			fmt.Fprintf(stderr, "  %.1f Hz\n", rate)
		}
		return 1
	}
	if len(rates) == 0 {
		// Capability unknown: the request proceeds unchecked.
		log.Debugf("device %d reported no rate metadata, skipping validation", id)
	}

	if before, err := q.CurrentRate(id); err == nil {
		fmt.Fprintf(stdout, "Sample rate before change: %.1f Hz\n", before)
	}

	if err := setter.Set(id, target); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, "The device may not support sample rate changes,")
		fmt.Fprintln(stderr, "may be in use by another application,")
		fmt.Fprintln(stderr, "or may require elevated permissions.")
		return 1
	}

	// The driver applies the change asynchronously. Poll the rate until
	// it matches the target or the attempts run out.
	for i := 0; i < cfg.Set.VerifyPolls; i++ {
		sleep(cfg.Set.VerifyInterval)
		rate, err := q.CurrentRate(id)
		if err == nil && scalar.EqualWithinAbs(rate, target, cfg.Set.VerifyTolerance) {
			fmt.Fprintf(stdout, "Sample rate changed to %.1f Hz\n", rate)
			return 0
		}
	}

	// Unverified but accepted: another process holding the device open
	// can mask or delay the change.
	fmt.Fprintln(stdout, "Warning: could not verify the new sample rate; the device may be busy or held in exclusive mode by another application.")
	return 0
}

// containsRate reports whether target appears in rates. The comparison
// absorbs float formatting noise, not rate tolerance.
func containsRate(rates []float64, target float64) bool {
	for _, rate := range rates {
		if scalar.EqualWithinAbs(rate, target, 1e-6) {
			return true
		}
	}
	return false
}
