// Copyright 2021 Compass Systems
// SPDX-License-Identifier: LGPL-3.0-only

package core

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ChainSafe/log15"

	"github.com/evmlabs/walletd/pkg/util"
)

// Service is a long-lived component of the daemon.
type Service interface {
	Name() string
	Start() error
	Stop()
}

// Core starts the registered services and blocks until a signal
// arrives or one of them reports a fatal error.
type Core struct {
	registry []Service
	log      log15.Logger
	sysErr   <-chan error
}

func NewCore(sysErr <-chan error) *Core {
	return &Core{
		registry: make([]Service, 0),
		log:      log15.New("system", "core"),
		sysErr:   sysErr,
	}
}

// AddService registers a service for the next Start.
func (c *Core) AddService(svc Service) {
	c.registry = append(c.registry, svc)
}

// Start will call all registered services' Start methods and block
// until a signal is received or a fatal error is reported.
func (c *Core) Start() {
	for _, svc := range c.registry {
		if err := svc.Start(); err != nil {
			c.log.Error("failed to start service", "service", svc.Name(), "err", err)
			return
		}
		c.log.Info(fmt.Sprintf("Started %s service", svc.Name()))
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigc)

	// Block here and wait for a signal
	select {
	case err := <-c.sysErr:
		c.log.Error("FATAL ERROR. Shutting down.", "err", err)
		util.Alarm(context.Background(), fmt.Sprintf("walletd fatal error: %v", err))
	case <-sigc:
		c.log.Warn("Interrupt received, shutting down now.")
	}

	for _, svc := range c.registry {
		svc.Stop()
	}
}

func (c *Core) Errors() <-chan error {
	return c.sysErr
}
