// Package app wires the stores, fixtures and services into one container.
package app

import (
	"alumni-portal/internal/config"
	"alumni-portal/internal/fixture"
	"alumni-portal/internal/notify"
	"alumni-portal/internal/pkg/clock"
	"alumni-portal/internal/pkg/logging"
	"alumni-portal/internal/repository"
	"alumni-portal/internal/scheduler"
	"alumni-portal/internal/usecase/analytics"
	"alumni-portal/internal/usecase/auth"
	"alumni-portal/internal/usecase/chat"
	"alumni-portal/internal/usecase/directory"
	"alumni-portal/internal/usecase/feed"
	"alumni-portal/internal/usecase/newsletter"
	"alumni-portal/internal/usecase/records"
)

type Container struct {
	Config config.Config
	Log    *logging.Logger
	Clock  clock.Clock

	Stores    *repository.Stores
	Notify    *notify.Center
	Scheduler *scheduler.Scheduler

	Directory  *directory.Service
	Auth       *auth.Service
	Records    *records.Service
	Feed       *feed.Service
	Chat       *chat.Service
	Newsletter *newsletter.Service
}

func NewContainer(cfg config.Config, clk clock.Clock, log *logging.Logger) (*Container, error) {
	if clk == nil {
		clk = clock.Real{}
	}
	if log == nil {
		log = logging.New(logging.Config{
			Level:     cfg.Log.Level,
			Format:    cfg.Log.Format,
			Component: cfg.App.AppName,
		})
	}

	stores := repository.NewMemoryStores(fixture.Admin())
	if err := fixture.Seed(stores, fixture.Defaults()); err != nil {
		return nil, err
	}

	center := notify.NewCenter(log.WithComponent("notify"))
	center.Seed(fixture.Notifications())

	sched := scheduler.New()
	resolver := directory.NewService(stores)

	sim := cfg.Sim
	c := &Container{
		Config:    cfg,
		Log:       log,
		Clock:     clk,
		Stores:    stores,
		Notify:    center,
		Scheduler: sched,
		Directory: resolver,
	}

	c.Auth = auth.NewService(stores, clk, auth.Delays{
		Auth:     sim.AuthLatency,
		Profile:  sim.UpdateLatency,
		Password: sim.PasswordLatency,
	}, center, log.WithComponent("auth"))

	c.Records = records.NewService(stores.Alumni, clk, records.Latencies{
		Create: sim.CreateLatency,
		Update: sim.UpdateLatency,
		Delete: sim.DeleteLatency,
	}, center, log.WithComponent("records"))

	c.Feed = feed.NewService(stores.Posts, center, log.WithComponent("feed"))

	c.Chat = chat.NewService(stores.Conversations, resolver, sched, chat.Config{
		TypingDelay: sim.TypingDelay,
		ReplyMin:    sim.ReplyWindowMin,
		ReplyMax:    sim.ReplyWindowMax,
		AutoReply:   sim.AutoReply,
	}, log.WithComponent("chat"))

	c.Newsletter = newsletter.NewService(stores.Alumni, clk, sim.NewsletterLatency, center, log.WithComponent("newsletter"))

	return c, nil
}

// Dashboard computes the analytics summary over the current alumni set.
func (c *Container) Dashboard() analytics.Summary {
	return analytics.Summarize(c.Stores.Alumni.List())
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.Chat != nil {
		c.Chat.Close()
	}
	if c.Scheduler != nil {
		c.Scheduler.Close()
	}
	return nil
}

// Bootstrap builds a container from config with production defaults and
// returns a cleanup func alongside it.
func Bootstrap(cfg config.Config) (*Container, func() error, error) {
	c, err := NewContainer(cfg, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	return c, c.Close, nil
}
