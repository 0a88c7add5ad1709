package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"tripkit/dates"
	"tripkit/internal/config"
	appLog "tripkit/internal/log"
	"tripkit/places"
	"tripkit/planner"
	"tripkit/textgen"
)

var (
	flagConfigPath string
	flagZone       string
	flagLocale     string
	flagVerbose    bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "tripkit",
	Short: "Travel-planning toolkit: date utilities, itineraries and vendor clients",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		if flagVerbose {
			appLog.SetLevel(appLog.LevelDebug)
		}
		cfg, err = config.Load(flagConfigPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagZone == "" {
			flagZone = cfg.Timezone
		}
		if flagLocale == "" {
			flagLocale = cfg.Locale
		}
		return nil
	},
	SilenceUsage: true,
}

// parseInput reads a CLI date argument: all-digit values are epochs,
// anything else is handed to the ISO parser.
func parseInput(s string) dates.Input {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return dates.FromEpoch(n)
	}
	return dates.FromISO(s)
}

var formatCmd = &cobra.Command{
	Use:   "format <date>",
	Short: "Format a date in the configured zone and locale",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		layout, _ := cmd.Flags().GetString("layout")
		simple, _ := cmd.Flags().GetBool("simple")

		var (
			out string
			err error
		)
		if simple {
			out, err = dates.FormatDay(parseInput(args[0]), flagZone)
		} else {
			out, err = dates.Format(parseInput(args[0]), flagZone, flagLocale, layout)
		}
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

var durationCmd = &cobra.Command{
	Use:   "duration <start> <end>",
	Short: "Elapsed hours and minutes between two dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := dates.Diff(parseInput(args[0]), parseInput(args[1]), flagZone)
		if err != nil {
			return err
		}
		fmt.Printf("%dh %.0fm\n", d.Hours, d.Minutes)
		return nil
	},
}

var daysCmd = &cobra.Command{
	Use:   "days <start> <end>",
	Short: "List every calendar day between two dates",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, err := dates.Days(parseInput(args[0]), parseInput(args[1]))
		if err != nil {
			return err
		}
		for _, day := range days {
			fmt.Println(day)
		}
		return nil
	},
}

var monthCmd = &cobra.Command{
	Use:   "month <1-12|date>",
	Short: "Render a month name in one of the supported styles",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		style, _ := cmd.Flags().GetString("style")

		var (
			out string
			err error
		)
		if n, convErr := strconv.Atoi(args[0]); convErr == nil && n >= 1 && n <= 12 {
			out, err = dates.FormatMonth(n, style, flagLocale)
		} else {
			out, err = dates.FormatMonthOf(parseInput(args[0]), style, flagLocale)
		}
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func loadEvents(path string) ([]planner.Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var events []planner.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return events, nil
}

var groupCmd = &cobra.Command{
	Use:   "group <events.json>",
	Short: "Group itinerary events by their local calendar day",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		events, err := loadEvents(args[0])
		if err != nil {
			return err
		}
		grouped := planner.GroupByLocalDay(events)
		out, err := json.MarshalIndent(grouped, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	},
}

var icsCmd = &cobra.Command{
	Use:   "ics <events.json>",
	Short: "Export an itinerary as an iCalendar document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		events, err := loadEvents(args[0])
		if err != nil {
			return err
		}
		out, err := planner.ExportICS(name, events)
		if err != nil {
			return err
		}
		fmt.Print(out)
		return nil
	},
}

var placesCmd = &cobra.Command{
	Use:   "places <query>",
	Short: "Free-text place search",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := places.New(cfg.Places.APIKey)
		if err != nil {
			return err
		}
		query := args[0]
		for _, extra := range args[1:] {
			query += " " + extra
		}
		results, err := client.SearchText(cmd.Context(), query, "")
		if err != nil {
			return err
		}
		for _, p := range results {
			fmt.Println(placeLine(p))
		}
		return nil
	},
}

// placeLine renders one search result as a single output line.
func placeLine(p places.Place) string {
	if p.FormattedAddress == "" {
		return p.DisplayName
	}
	return p.DisplayName + " - " + p.FormattedAddress
}

var chatCmd = &cobra.Command{
	Use:   "chat <prompt>",
	Short: "Ask the text-generation backend for trip ideas",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := textgen.New(cfg.TextGen.BaseURL, cfg.TextGen.APIKey, cfg.TextGen.Model)
		if err != nil {
			return err
		}
		prompt := args[0]
		for _, extra := range args[1:] {
			prompt += " " + extra
		}
		out, err := client.Chat(cmd.Context(), []textgen.Message{
			{Role: "system", Content: "You are a concise travel planner."},
			{Role: "user", Content: prompt},
		})
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", defaultConfigPath(), "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagZone, "zone", "", "IANA timezone (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Output locale (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	formatCmd.Flags().String("layout", "", "Go reference layout (default: config locale layout)")
	formatCmd.Flags().Bool("simple", false, "Render as yyyy-MM-dd")
	monthCmd.Flags().String("style", dates.MonthFullFirstUpper, "Month rendering style")
	icsCmd.Flags().String("name", "", "Calendar name")

	rootCmd.AddCommand(formatCmd, durationCmd, daysCmd, monthCmd, groupCmd, icsCmd, placesCmd, chatCmd)

	if err := rootCmd.Execute(); err != nil {
		appLog.Error("tripkit failed", err)
		os.Exit(1)
	}
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tripkit.yaml"
	}
	return home + "/.config/tripkit/config.yaml"
}
