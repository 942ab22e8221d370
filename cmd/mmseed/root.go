package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/mmseed/store"
)

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:           "mmseed",
		Short:         "Seed multi-member districting plans",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := loadEnv(s.envFile); err != nil {
				return err
			}
			stringFromEnv(cmd, "db", envDB, &s.dbPath)
			stringFromEnv(cmd, "log-level", envLogLevel, &s.logLevel)
			stringFromEnv(cmd, "log-format", envLogFormat, &s.logFormat)

			logger, err := newLogger(cmd.ErrOrStderr(), s.logLevel, s.logFormat)
			if err != nil {
				return err
			}
			s.logger = logger

			return nil
		},
	}

	root.PersistentFlags().StringVar(&s.envFile, "env-file", ".env", "File with MMSEED_* defaults")
	root.PersistentFlags().StringVar(&s.dbPath, "db", "", "SQLite database for run history ($"+envDB+")")
	root.PersistentFlags().StringVar(&s.logLevel, "log-level", "info", "debug|info|warn|error ($"+envLogLevel+")")
	root.PersistentFlags().StringVar(&s.logFormat, "log-format", "text", "text|json ($"+envLogFormat+")")

	root.AddCommand(newSeedCmd(s), newRunsCmd(s))

	return root
}

// openStore opens the configured database; callers close it.
func (s *settings) openStore() (*store.DB, error) {
	if s.dbPath == "" {
		return nil, fmt.Errorf("no database configured (use --db or $%s)", envDB)
	}

	return store.OpenDB(s.dbPath)
}
