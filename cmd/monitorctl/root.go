package main

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ygrebnov/monitoring"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	v         *viper.Viper
	cfgFile   string
	debug     bool
	discovery *monitoring.BasicDiscovery
	log       *slog.Logger
	cfg       Config
}

func newRootCmd(d *monitoring.BasicDiscovery) *cobra.Command {
	a := &app{v: viper.New(), discovery: d}

	rootCmd := &cobra.Command{
		Use:           "monitorctl",
		Short:         "Register and inspect monitoring sections",
		Long:          `monitorctl registers the built-in runtime, process and server sections in the local process and prints what is discoverable.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if a.debug {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			if err := readConfig(a.v, a.cfgFile); err != nil {
				return err
			}
			cfg, err := loadConfig(a.v)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log.Debug("config loaded", "file", a.v.ConfigFileUsed(), "domain", cfg.Domain, "sections", cfg.Sections)
			return nil
		},
	}

	setDefaults(a.v)

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.cfgFile, "config", "c", "",
		"config file (default: ./monitorctl.yaml or ~/.config/monitorctl/monitorctl.yaml)")
	pf.BoolVar(&a.debug, "debug", false, "enable debug logging")
	pf.String("domain", "", "identifier domain of the built-in sections")
	pf.StringSlice("sections", nil, "sections to register (runtime, process, server)")
	pf.Duration("cache-ttl", 0, "cache section snapshots for this long (0 disables)")

	_ = a.v.BindPFlag("domain", pf.Lookup("domain"))
	_ = a.v.BindPFlag("sections", pf.Lookup("sections"))
	_ = a.v.BindPFlag("cache_ttl", pf.Lookup("cache-ttl"))

	rootCmd.AddCommand(newDumpCmd(a), newListCmd(a))
	return rootCmd
}

// sections builds the configured built-in sections in configuration order.
func (a *app) sections() []monitoring.Section {
	out := make([]monitoring.Section, 0, len(a.cfg.Sections))
	for _, name := range a.cfg.Sections {
		var s monitoring.Section
		switch name {
		case sectionRuntime:
			s = monitoring.NewRuntimeSection(a.cfg.Domain)
		case sectionProcess:
			s = monitoring.NewProcessSection(a.cfg.Domain)
		case sectionServer:
			s = monitoring.NewStatusSection(a.cfg.Domain,
				monitoring.WithServerID(a.cfg.Server.ID),
				monitoring.WithVersion(a.cfg.Server.Version),
			)
		default:
			continue
		}
		if a.cfg.CacheTTL > 0 {
			s = monitoring.NewCachedSection(s, a.cfg.CacheTTL)
		}
		out = append(out, s)
	}
	return out
}

// withSections registers the configured sections for the duration of fn.
func (a *app) withSections(fn func() error) error {
	logger := monitoring.NewSlogLogger(a.log)
	g := monitoring.NewGroup()
	for _, s := range a.sections() {
		g.Add(monitoring.NewLifecycle(s, a.discovery, monitoring.WithLifecycleLogger(logger)))
	}
	if err := g.Start(); err != nil {
		return err
	}
	defer g.Stop()
	return fn()
}
