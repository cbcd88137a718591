// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Gocase runs the bundled tutorial lessons through the gocase engine and
reports a verdict for each invocation.

Usage:

	gocase run [lesson...] [--config file] [--workers n] [--filter re]
	gocase list [lesson...] [--filter re]

Without lesson arguments all lessons are selected.  The configuration is
read from given YAML file, a .env file in the working directory and the
GOCASE_* environment variables; flags override all of them.  run exits
with status 1 if an invocation failed, a fixture cleanup failed or a
case couldn't be constructed.  Sample output:

	PASS parametrize/with_ids[zeros] 18µs
	PASS parametrize/cartesian_product[1-3] 9µs

	parametrize: 33 passed, 0 failed
*/
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
