package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tfkdiscgolf/metrix-announcer/internal/config"
	"github.com/tfkdiscgolf/metrix-announcer/internal/event"
	"github.com/tfkdiscgolf/metrix-announcer/internal/message"
	"github.com/tfkdiscgolf/metrix-announcer/internal/notifier"
	"github.com/tfkdiscgolf/metrix-announcer/internal/scraper"
)

var (
	flagConfig    string
	flagSeriesURL string
	flagTimezone  string
	flagChannel   string
	flagDate      string
	flagDryRun    bool
	flagVerbose   bool
)

var version = "dev"

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "metrix-announcer",
		Short: "Announce tomorrow's TFK Seriespill round",
		Long: `Fetches the round schedule of a DiscGolfMetrix series, finds the round
scheduled for tomorrow, scrapes its course and description details and
publishes a Facebook post announcing it.

Single-shot: meant to be run once per day by an external scheduler.
Exits 0 when no round is scheduled tomorrow.`,
		Version:      version,
		RunE:         runAnnounce,
		SilenceUsage: true,
	}

	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to YAML config file")
	cmd.Flags().StringVar(&flagSeriesURL, "series-url", "", "Metrix series info page URL (overrides config)")
	cmd.Flags().StringVar(&flagTimezone, "timezone", "", "IANA timezone for \"tomorrow\" (overrides config)")
	cmd.Flags().StringVar(&flagChannel, "channel", "", "Publishing channel: facebook, twitter or dryrun (overrides config)")
	cmd.Flags().StringVar(&flagDate, "date", "", "Treat this date (YYYY-MM-DD) as today, for rehearsal")
	cmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the announcement without posting")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")

	return cmd
}

// runAnnounce is the whole run: listing, selection, detail, format,
// publish. Any error aborts immediately; there is no retry.
func runAnnounce(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagSeriesURL != "" {
		cfg.SeriesURL = flagSeriesURL
	}
	if flagTimezone != "" {
		cfg.Timezone = flagTimezone
	}
	if flagChannel != "" {
		cfg.Channel = flagChannel
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	now := time.Now().In(loc)
	if flagDate != "" {
		now, err = time.ParseInLocation("2006-01-02", flagDate, loc)
		if err != nil {
			return fmt.Errorf("parsing --date: %w", err)
		}
	}

	sc := scraper.New(scraper.Options{
		UserAgent: cfg.UserAgent,
		Location:  loc,
	})

	logrus.WithField("url", cfg.SeriesURL).Debug("Henter rundeliste")
	events, err := sc.FetchEvents(cfg.SeriesURL)
	if err != nil {
		return fmt.Errorf("fetching series listing: %w", err)
	}
	logrus.WithField("count", len(events)).Debug("Fant runder")

	evt := event.NextDay(events, now)
	if evt == nil {
		logrus.Info("📭 Ingen runde i morgen")
		return nil
	}
	logrus.WithFields(logrus.Fields{
		"title": evt.Title,
		"start": evt.StartTime.Format(time.RFC3339),
	}).Debug("Fant morgendagens runde")

	detail, err := sc.FetchDetail(evt)
	if err != nil {
		return fmt.Errorf("fetching round details: %w", err)
	}

	msg := message.FormatAnnouncement(detail)

	n, err := buildNotifier(cfg)
	if err != nil {
		return err
	}

	if err := n.Publish(msg); err != nil {
		return fmt.Errorf("publishing announcement: %w", err)
	}

	return nil
}

// buildNotifier selects the publishing channel and wires in credentials
// from the environment. The core components never read secrets
// themselves.
func buildNotifier(cfg *config.Config) (notifier.Notifier, error) {
	if flagDryRun {
		return notifier.NewDryRunNotifier(), nil
	}

	switch cfg.Channel {
	case config.ChannelFacebook:
		return notifier.NewFacebookNotifier(os.Getenv("FB_PAGE_ID"), os.Getenv("FB_PAGE_TOKEN"), cfg.GraphVersion)
	case config.ChannelTwitter:
		return notifier.NewTwitterNotifier(notifier.TwitterCredentials{
			APIKey:       os.Getenv("TWITTER_API_KEY"),
			APISecret:    os.Getenv("TWITTER_API_SECRET"),
			AccessToken:  os.Getenv("TWITTER_ACCESS_TOKEN"),
			AccessSecret: os.Getenv("TWITTER_ACCESS_SECRET"),
		})
	case config.ChannelDryRun:
		return notifier.NewDryRunNotifier(), nil
	default:
		return nil, fmt.Errorf("unknown channel: %s", cfg.Channel)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
