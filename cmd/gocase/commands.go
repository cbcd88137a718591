// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"regexp"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/slukits/gocase"
	"github.com/slukits/gocase/internal/tutorial"
	"github.com/slukits/gocase/pkg/assert"
	"github.com/slukits/gocase/pkg/config"
	"github.com/slukits/gocase/pkg/logging"
)

// errFailed is returned by the run command if not everything passed.
var errFailed = errors.New("there were failures")

// flags holds the command line flags.
type flags struct {
	config   string
	workers  int
	filter   string
	logLevel string
}

// newRootCmd returns the gocase command with its sub-commands.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gocase",
		Short:         "Run the gocase tutorial lessons",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	ff := &flags{}

	runCmd := &cobra.Command{
		Use:   "run [lesson...]",
		Short: "Run the cases of the selected lessons",
		Long: "Run every invocation of the selected lessons' cases and " +
			"report a verdict for each of them",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, ff, args)
		},
	}
	runCmd.Flags().StringVarP(&ff.config, "config", "c", "",
		"YAML configuration file")
	runCmd.Flags().IntVarP(&ff.workers, "workers", "w", 1,
		"Number of invocations run concurrently")
	runCmd.Flags().StringVarP(&ff.filter, "filter", "f", "",
		"Run only cases whose name matches this regular expression")
	runCmd.Flags().StringVarP(&ff.logLevel, "log-level", "l", "warn",
		"Log level: debug, info, warn or error")
	root.AddCommand(runCmd)

	listCmd := &cobra.Command{
		Use:   "list [lesson...]",
		Short: "List the invocations of the selected lessons",
		RunE: func(cmd *cobra.Command, args []string) error {
			return list(cmd.OutOrStdout(), ff.filter, args)
		},
	}
	listCmd.Flags().StringVarP(&ff.filter, "filter", "f", "",
		"List only cases whose name matches this regular expression")
	root.AddCommand(listCmd)

	return root
}

// load returns the configuration of given config file overridden by
// the explicitly set flags.
func load(cmd *cobra.Command, ff *flags) (*config.Config, error) {
	cfg, err := config.Load(ff.config)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = ff.workers
	}
	if cmd.Flags().Changed("filter") {
		cfg.Filter = ff.filter
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = ff.logLevel
	}
	return cfg, cfg.Validate()
}

// lessons returns the lessons with given names; all lessons if no name
// is given.
func lessons(names []string) ([]tutorial.Lesson, error) {
	all := tutorial.Lessons()
	if len(names) == 0 {
		return all, nil
	}
	ll := []tutorial.Lesson{}
	for _, n := range names {
		found := false
		for _, l := range all {
			if l.Name == n {
				ll, found = append(ll, l), true
				break
			}
		}
		if !found {
			return nil, errors.Errorf("unknown lesson %q", n)
		}
	}
	return ll, nil
}

func run(cmd *cobra.Command, ff *flags, args []string) error {
	cfg, err := load(cmd, ff)
	if err != nil {
		return err
	}
	ll, err := lessons(args)
	if err != nil {
		return err
	}
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	oo := []gocase.Option{
		gocase.WithLogger(logger),
		gocase.WithWorkers(cfg.Workers),
		gocase.WithTolerance(assert.Tolerance{
			Rel: cfg.Tolerance.Rel, Abs: cfg.Tolerance.Abs}),
	}
	re, err := cfg.FilterRe()
	if err != nil {
		return err
	}
	if re != nil {
		oo = append(oo, gocase.WithFilter(re))
	}

	passed := true
	for _, l := range ll {
		logger.Info("running lesson", zap.String("lesson", l.Name))
		rpt := l.New(oo...).Run(cmd.Context())
		printReport(cmd.OutOrStdout(), l.Name, rpt)
		passed = passed && rpt.Passed()
	}
	if !passed {
		return errFailed
	}
	return nil
}

var (
	pass = color.New(color.FgGreen, color.Bold)
	fail = color.New(color.FgRed, color.Bold)
	warn = color.New(color.FgYellow)
)

// printReport writes a verdict line for each result of given report of
// given lesson followed by the diagnostics of failures and the errors
// of failed cleanups.
func printReport(w io.Writer, lesson string, rpt *gocase.Report) {
	for _, err := range rpt.Errs {
		fail.Fprint(w, "ERROR")
		fmt.Fprintf(w, " %s: %v\n", lesson, err)
	}
	failed := 0
	for _, res := range rpt.Results {
		if res.Passed() {
			pass.Fprint(w, "PASS")
		} else {
			failed++
			fail.Fprint(w, "FAIL")
		}
		fmt.Fprintf(w, " %s/%s %s\n", lesson, res.Name(), res.Duration())
		if d := res.Diagnostic(); d != nil {
			fmt.Fprintf(w, "    %s\n", d)
		}
		for _, err := range res.TeardownErrs() {
			warn.Fprintf(w, "    teardown: %v\n", err)
		}
	}
	fmt.Fprintf(w, "\n%s: %d passed, %d failed\n\n",
		lesson, len(rpt.Results)-failed, failed)
}

// list writes the names of the invocations of the given lessons' cases
// which are matched by given filter.
func list(w io.Writer, filter string, names []string) error {
	var re *regexp.Regexp
	if filter != "" {
		var err error
		if re, err = regexp.Compile(filter); err != nil {
			return errors.Wrap(err, "filter")
		}
	}
	ll, err := lessons(names)
	if err != nil {
		return err
	}
	for _, l := range ll {
		r := l.New()
		for _, c := range r.Cases() {
			if re != nil && !re.MatchString(c) {
				continue
			}
			xp, err := r.Expand(c)
			if err != nil {
				return err
			}
			for comb, ok := xp.Next(); ok; comb, ok = xp.Next() {
				if comb.ID == "" {
					fmt.Fprintf(w, "%s/%s\n", l.Name, c)
					continue
				}
				fmt.Fprintf(w, "%s/%s[%s]\n", l.Name, c, comb.ID)
			}
		}
	}
	return nil
}
