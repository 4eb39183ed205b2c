// Copyright © 2015-2020 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by the GPL-2 license described in the
// LICENSE file.

// Package gpud publishes GPU readings to redis.
package gpud

import (
	"errors"
	"fmt"
	"net/rpc"
	"sync"
	"time"

	redigo "github.com/garyburd/redigo/redis"
	"github.com/jpillora/backoff"
	"github.com/platinasystems/atsock"
	"github.com/platinasystems/gpu/cmd"
	"github.com/platinasystems/gpu/hal"
	"github.com/platinasystems/gpu/internal/target"
	"github.com/platinasystems/gpu/lang"
	"github.com/platinasystems/log"
	"github.com/platinasystems/parms"
	"github.com/platinasystems/redis"
	"github.com/platinasystems/redis/publisher"
)

const Name = "gpud"

var (
	errStopped = errors.New("stopped")

	isReady = redis.IsReady

	readyBackoff = backoff.Backoff{
		Min:    1 * time.Second,
		Max:    60 * time.Second,
		Factor: 2,
		Jitter: false,
	}
)

type Command struct {
	Info

	cfg     Config
	rpc     *atsock.RpcServer
	once    sync.Once
	stopped sync.Once
	stop    chan struct{}
}

func (*Command) String() string { return Name }

func (*Command) Usage() string {
	return "gpud [-pci ADDR | -sim FILE] [-config FILE] [-interval DURATION] [-redis ADDR]"
}

func (*Command) Apropos() lang.Alt {
	return lang.Alt{
		lang.EnUS: "gpu daemon, publishes to redis",
	}
}

func (*Command) Man() lang.Alt {
	return lang.Alt{
		lang.EnUS: `
DESCRIPTION
	Publish the chip identity, temperature, clock rates, floorsweeping
	masks and runlist state of the GPU each interval. Only changed
	values are published.

	These fields are settable with redis hset,
	  gpu.elcg.ENGINE	run, auto or stop
	  gpu.runlist.N.enable	true or false

OPTIONS
	-config FILE	YAML with pci, sim, interval, redis, hash and prefix
	-interval DUR	sample period, default 5s
	-redis ADDR	also hset changed values on this remote redis`,
	}
}

func (*Command) Kind() cmd.Kind { return cmd.Daemon }

func (c *Command) init() {
	c.once.Do(func() { c.stop = make(chan struct{}) })
}

func (c *Command) Main(args ...string) error {
	c.init()
	parm, args := parms.New(args, "-pci", "-sim", "-config", "-interval",
		"-redis")
	if len(args) > 0 {
		return fmt.Errorf("%v: unexpected", args)
	}
	cfg, err := LoadConfig(parm.ByName["-config"])
	if err != nil {
		return err
	}
	if err = cfg.Override(parm.ByName); err != nil {
		return err
	}
	c.cfg = cfg

	if err = c.waitRedis(); err != nil {
		if err == errStopped {
			return nil
		}
		return err
	}

	r, closer, err := target.Open(cfg.PCI, cfg.Sim)
	if err != nil {
		return err
	}
	defer closer()
	d, err := hal.New(r)
	if err != nil {
		return err
	}

	pub, err := publisher.New()
	if err != nil {
		return err
	}
	c.Info.init(d, cfg.Prefix, func(k string, v interface{}) {
		pub.Print(k, ": ", v)
	})

	if c.rpc, err = atsock.NewRpcServer(Name); err != nil {
		return err
	}
	defer c.rpc.Close()
	rpc.Register(&c.Info)
	for _, k := range writable {
		err = redis.Assign(redis.DefaultHash+":"+cfg.Prefix+k, Name,
			"Info")
		if err != nil {
			return err
		}
	}

	log.Print("daemon", "info", d, " every ", cfg.Interval)
	return c.run()
}

func (c *Command) Close() error {
	c.init()
	c.stopped.Do(func() { close(c.stop) })
	return nil
}

func (c *Command) run() error {
	t := time.NewTicker(c.cfg.Interval)
	defer t.Stop()
	c.tick()
	for {
		select {
		case <-c.stop:
			log.Print("daemon", "info", "done")
			return nil
		case <-t.C:
			c.tick()
		}
	}
}

func (c *Command) tick() {
	changed := c.update()
	if len(c.cfg.Redis) == 0 || len(changed) == 0 {
		return
	}
	if err := c.remote(changed); err != nil {
		log.Print("daemon", "err", c.cfg.Redis, ": ", err)
	}
}

// remote hsets changed values on the configured redis.
func (c *Command) remote(changed map[string]string) error {
	d, err := redigo.Dial("tcp", c.cfg.Redis)
	if err != nil {
		return err
	}
	defer d.Close()
	for _, k := range sortedKeys(changed) {
		if _, err = d.Do("HSET", c.cfg.Hash, k, changed[k]); err != nil {
			return err
		}
	}
	return nil
}

// waitRedis retries the local redis until ready or stopped.
func (c *Command) waitRedis() error {
	b := readyBackoff
	for {
		err := isReady()
		if err == nil {
			return nil
		}
		d := b.Duration()
		log.Print("daemon", "info", "redis: ", err, "; retry in ", d)
		t := time.NewTimer(d)
		select {
		case <-c.stop:
			t.Stop()
			return errStopped
		case <-t.C:
		}
	}
}
