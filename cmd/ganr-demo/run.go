package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gordian-engine/ganr/ganr"
	"github.com/gordian-engine/ganr/ganr/ganrprom"
	"github.com/gordian-engine/ganr/gmainloop"
	"github.com/gordian-engine/ganr/internal/glog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configFlag      = "config"
	timeoutFlag     = "timeout"
	intervalFlag    = "interval"
	strikesFlag     = "strikes"
	hangEveryFlag   = "hang-every"
	hangForFlag     = "hang-for"
	durationFlag    = "duration"
	metricsAddrFlag = "metrics-addr"

	envPrefix = "GANR"
)

// runConfig is the resolved configuration of the run subcommand,
// after merging flags, environment, and an optional config file.
type runConfig struct {
	Timeout  time.Duration
	Interval time.Duration
	Strikes  int

	HangEvery time.Duration
	HangFor   time.Duration

	// Zero means run until interrupted.
	Duration time.Duration

	MetricsAddr string
}

func newRunCmd(log *slog.Logger) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use: "run",

		Short: "Run a main loop under the ANR tracker, injecting periodic hangs",

		Long: `run starts a guarded main loop and an ANR tracker watching it.

Every --hang-every, a task blocks the loop for --hang-for.
When --hang-for is at least two timeouts, the tracker reports a hang,
and it reports the hang's end once the loop responds again.

Every flag may also be set through an environment variable
prefixed with GANR_, such as GANR_TIMEOUT=2s or GANR_HANG_FOR=5s,
or through a config file given with --config.
`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := v.BindPFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("failed to bind flags: %w", err)
			}

			cfg, err := loadRunConfig(v)
			if err != nil {
				return err
			}

			assertOpt, err := getAssertTrackerOpt(v)
			if err != nil {
				return fmt.Errorf("failed to build assertion environment: %w", err)
			}

			return runDemo(cmd.Context(), log, cfg, assertOpt)
		},
	}

	fs := cmd.Flags()
	fs.String(configFlag, "", "Path to a config file (any format viper supports) holding the flag values")
	fs.Duration(timeoutFlag, 2*time.Second, "How long the main loop has to answer a probe")
	fs.Duration(intervalFlag, 0, "Time between probe dispatches; zero uses the timeout")
	fs.Int(strikesFlag, 0, "Consecutive missed probes needed to confirm a hang; zero uses the tracker default")
	fs.Duration(hangEveryFlag, 10*time.Second, "How often to block the main loop; zero disables injected hangs")
	fs.Duration(hangForFlag, 5*time.Second, "How long each injected hang blocks the main loop")
	fs.Duration(durationFlag, 0, "Stop after this long; zero runs until interrupted")
	fs.String(metricsAddrFlag, "", "TCP address to serve Prometheus metrics on; if blank, metrics are not served")

	// Adds --assert-rules in debug builds, no-op otherwise.
	addAssertRuleFlag(fs)

	return cmd
}

func loadRunConfig(v *viper.Viper) (runConfig, error) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path := v.GetString(configFlag); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return runConfig{}, fmt.Errorf("failed to read config file %q: %w", path, err)
		}
	}

	cfg := runConfig{
		Timeout:     v.GetDuration(timeoutFlag),
		Interval:    v.GetDuration(intervalFlag),
		Strikes:     v.GetInt(strikesFlag),
		HangEvery:   v.GetDuration(hangEveryFlag),
		HangFor:     v.GetDuration(hangForFlag),
		Duration:    v.GetDuration(durationFlag),
		MetricsAddr: v.GetString(metricsAddrFlag),
	}

	var errs error
	if cfg.HangEvery < 0 {
		errs = errors.Join(errs, fmt.Errorf("--%s must not be negative (got %s)", hangEveryFlag, cfg.HangEvery))
	}
	if cfg.HangFor < 0 {
		errs = errors.Join(errs, fmt.Errorf("--%s must not be negative (got %s)", hangForFlag, cfg.HangFor))
	}
	if cfg.Duration < 0 {
		errs = errors.Join(errs, fmt.Errorf("--%s must not be negative (got %s)", durationFlag, cfg.Duration))
	}
	if errs != nil {
		return runConfig{}, errs
	}

	return cfg, nil
}

func (c runConfig) trackerOpts() []ganr.Opt {
	var opts []ganr.Opt
	if c.Interval > 0 {
		opts = append(opts, ganr.WithInterval(c.Interval))
	}
	if c.Strikes > 0 {
		opts = append(opts, ganr.WithStrikes(c.Strikes))
	}
	return opts
}

func runDemo(ctx context.Context, log *slog.Logger, cfg runConfig, extraOpts ...ganr.Opt) error {
	if cfg.Duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Duration)
		defer cancel()
	}

	loop := gmainloop.New(log.With("sys", "mainloop"), 64)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := ganrprom.New(reg, "main")

	opts := append(cfg.trackerOpts(),
		ganr.WithListener(metrics),
		ganr.WithTickObserver(metrics),
		ganr.WithListener(ganr.ListenerFunc(func(e ganr.Event) {
			switch e {
			case ganr.HangStarted:
				log.Warn("Main loop is not responding")
			case ganr.HangEnded:
				log.Info("Main loop is responding again")
			}
		})),
	)
	for _, o := range extraOpts {
		if o != nil {
			opts = append(opts, o)
		}
	}

	tr, err := ganr.NewTracker(
		log.With("sys", "ganr"),
		cfg.Timeout,
		newProcAdapter(log.With("sys", "adapter")),
		loop,
		opts...,
	)
	if err != nil {
		return fmt.Errorf("failed to create tracker: %w", err)
	}

	var wg sync.WaitGroup
	defer wg.Wait()

	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()

	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = loop.Run(loopCtx)
	}()

	if cfg.MetricsAddr != "" {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			return fmt.Errorf("failed to listen for metrics on %q: %w", cfg.MetricsAddr, err)
		}
		log.Info("Serving metrics", "addr", ln.Addr().String())

		srv := &http.Server{
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Warn("Metrics server stopped", "err", err)
			}
		}()
		defer srv.Close()
	}

	tr.Start()
	defer tr.Stop()

	injectHangs(ctx, log, loop, cfg.HangEvery, cfg.HangFor)

	log.Info("Shutting down", "cause", context.Cause(ctx))
	return nil
}

// injectHangs blocks the loop for hangFor once every hangEvery,
// until ctx is done.
func injectHangs(ctx context.Context, log *slog.Logger, loop *gmainloop.Loop, hangEvery, hangFor time.Duration) {
	if hangEvery <= 0 {
		<-ctx.Done()
		return
	}

	t := time.NewTicker(hangEvery)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			log.Info("Blocking main loop", "hang_for", glog.Millis(hangFor))
			if !loop.Post(func() {
				// Deliberately not interruptible; this is the hang.
				time.Sleep(hangFor)
			}) {
				log.Warn("Main loop queue full; skipping injected hang")
			}
		}
	}
}
