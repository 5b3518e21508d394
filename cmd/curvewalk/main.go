// Command curvewalk simulates an agent exploring a grid along a Hilbert curve,
// discovering random square obstacles on contact, and reports how many moves
// the tour took against the number of open cells.
package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
)

// The main entrypoint for curvewalk
func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newApp(logger).RunContext(ctx, os.Args)
	checkForErrorsAndExit(logger, err)
}

// If there is an error, log it with any stack traces it carries and exit 1.
func checkForErrorsAndExit(logger *logrus.Logger, err error) {
	if err == nil {
		return
	}
	logger.Error(err.Error())
	if stack := errorStack(err); stack != "" {
		logger.Debug(stack)
	}
	os.Exit(1)
}

// errorStack collects the stack traces recorded anywhere in err's chain.
func errorStack(err error) string {
	var stacks []string
	queue := []error{err}
	for len(queue) > 0 {
		e := queue[0]
		queue = queue[1:]
		if s, ok := e.(interface{ ErrorStack() string }); ok {
			stacks = append(stacks, s.ErrorStack())
		}
		if merr, ok := e.(*multierror.Error); ok {
			queue = append(queue, merr.Errors...)
			continue
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			queue = append(queue, u.Unwrap()...)
		case interface{ Unwrap() error }:
			if next := u.Unwrap(); next != nil {
				queue = append(queue, next)
			}
		}
	}
	return strings.Join(stacks, "\n")
}
