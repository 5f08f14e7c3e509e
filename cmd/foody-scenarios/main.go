/*
Copyright 2026 the Foody QA Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/pflag"
	"github.com/spjmurray/go-util/pkg/set"
	"gopkg.in/yaml.v3"

	"github.com/softuni-qa/foody/pkg/config"
	"github.com/softuni-qa/foody/pkg/constants"
	"github.com/softuni-qa/foody/pkg/contract"
	"github.com/softuni-qa/foody/pkg/foodytest"
	"github.com/softuni-qa/foody/pkg/scenario"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

var errFlag = errors.New("invalid flag")

type options struct {
	output string
	skip   []int
	fake   bool
	zap    zap.Options
}

func (o *options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.output, "output", "text", "Report format, one of text, json or yaml.")
	f.IntSliceVar(&o.skip, "skip", nil, "Scenario orders to leave out of the run.")
	f.BoolVar(&o.fake, "fake", false, "Run against an in-process service, ignoring FOODY_BASE_URL.")
}

func (o *options) validate(chain []scenario.Scenario) error {
	switch o.output {
	case "text", "json", "yaml":
	default:
		return fmt.Errorf("%w: unsupported output %q", errFlag, o.output)
	}

	orders := make([]int, len(chain))

	for i := range chain {
		orders[i] = chain[i].Order
	}

	unknown := slices.Sorted(set.New[int](o.skip...).Difference(set.New[int](orders...)).All())
	if len(unknown) != 0 {
		return fmt.Errorf("%w: no scenarios with order %v", errFlag, unknown)
	}

	return nil
}

func (o *options) selected(s scenario.Scenario) bool {
	return !slices.Contains(o.skip, s.Order)
}

func writeReport(w io.Writer, format string, report *scenario.Report) error {
	summary := report.Summary()

	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")

		return encoder.Encode(summary)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()

		return encoder.Encode(summary)
	}

	for _, o := range summary.Outcomes {
		result := "PASS"
		if !o.Passed {
			result = "FAIL"
		}

		if _, err := fmt.Fprintf(w, "%s %d %s (status %d, %s)\n", result, o.Order, o.Name, o.Status, o.Duration); err != nil {
			return err
		}

		if o.Error != "" {
			if _, err := fmt.Fprintf(w, "    %s\n", o.Error); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d passed, %d failed in %s\n", summary.Passed, summary.Failed, summary.Duration)

	return err
}

//nolint:cyclop
func run() int {
	var o options

	o.AddFlags(pflag.CommandLine)
	o.zap.BindFlags(flag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(flag.CommandLine)
	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&o.zap)))

	logger := log.Log.WithName("init")
	logger.Info("scenarios starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	chain := scenario.Foody()

	if err := o.validate(chain); err != nil {
		fmt.Println(err)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Println(err)
		return 1
	}

	if o.fake {
		cfg.BaseURL = ""
	}

	ctx := cr.SetupSignalHandler()

	if cfg.TestTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.TestTimeout)
		defer cancel()
	}

	ctx = log.IntoContext(ctx, log.Log.WithName("scenario"))

	baseURL := cfg.BaseURL
	credentials := scenario.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	}

	if cfg.UseFake() {
		server := foodytest.NewServer()
		defer server.Close()

		baseURL = server.URL
		credentials = scenario.Credentials{
			Username: foodytest.Username,
			Password: foodytest.Password,
		}

		logger.Info("FOODY_BASE_URL not set, using in-process service", "url", baseURL)
	}

	session, err := scenario.Setup(ctx, baseURL, credentials, cfg.ClientOptions(log.Log.WithName("client"))...)
	if err != nil {
		fmt.Println(err)
		return 1
	}

	defer session.Close()

	runner := scenario.NewRunner(chain)
	runner.Filter = o.selected

	if cfg.ValidateContract {
		validator, err := contract.New(session.BaseURL)
		if err != nil {
			fmt.Println(err)
			return 1
		}

		runner.Contract = validator
	}

	report, err := runner.Run(ctx, session, &scenario.Fixture{})
	if err != nil {
		fmt.Println(err)
		return 1
	}

	if err := writeReport(os.Stdout, o.output, report); err != nil {
		fmt.Println(err)
		return 1
	}

	if report.Failed() != 0 {
		return 1
	}

	return 0
}

func main() {
	os.Exit(run())
}
