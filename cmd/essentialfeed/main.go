package main

import (
	"context"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/adapters"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/app"
	"github.com/ronaldfpaglinawan/EssentialFeedTutorial/pkg/new/ports"
	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "essentialfeed [feed-url...]",
		Short: "Load feed items from remote feeds",
		Long: `Load the items of one or more remote feeds and print them.

Feed URLs are read from the arguments or, when none are given, from
ESSENTIALFEED_FEED_URLS. Every feed is requested exactly once.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := LoadConfig(args)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("wait") {
				config.Wait, _ = cmd.Flags().GetDuration("wait")
			}

			ConfigureLogging(config.LogLevel, cmd.ErrOrStderr())

			client := adapters.NewHTTPClient(adapters.NewSession(config.Timeout), config.UserAgent)
			return run(cmd.Context(), config, client, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Duration("wait", 0, "how long to wait for the feeds before giving up (overrides ESSENTIALFEED_WAIT)")

	return cmd
}

func run(ctx context.Context, config Config, client app.HTTPClient, out io.Writer) error {
	addresses, err := config.Addresses()
	if err != nil {
		return errors.Wrap(err, "error reading feed urls")
	}

	ctx, cancel := context.WithTimeout(ctx, config.Wait)
	defer cancel()

	log.Printf("[INFO] loading %d feeds", len(addresses))

	results, err := ports.NewLoadFeedsCommand(client).Handle(ctx, addresses)
	renderResults(out, results)
	if err != nil {
		log.Printf("[ERROR] %v", err)
		return err
	}

	return nil
}
