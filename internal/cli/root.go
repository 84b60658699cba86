package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rohmanhakim/linkscrub/internal/build"
	"github.com/rohmanhakim/linkscrub/internal/config"
	"github.com/rohmanhakim/linkscrub/internal/logger"
	"github.com/rohmanhakim/linkscrub/internal/metadata"
	"github.com/rohmanhakim/linkscrub/internal/scrubber"
	"github.com/rohmanhakim/linkscrub/internal/textclean"
	"github.com/rohmanhakim/linkscrub/pkg/fileutil"
	"github.com/rohmanhakim/linkscrub/pkg/hashutil"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "LINKSCRUB"

var (
	cfgFile    string
	urlMode    bool
	useProfile bool
	report     bool
	digestAlgo string
	outputPath string
	debug      bool
	quiet      bool
	jsonLog    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "linkscrub [text...]",
	Short: "Strip tracking parameters from URLs in text.",
	Long: `linkscrub finds http and https URLs in a piece of text and removes
vendor and advertising tracking identifiers from them (utm_*, fbclid, gclid,
YouTube "si", Amazon "/ref=" paths and so on). Everything else in the text,
including the rest of each URL, is left byte for byte as it was.

Text is taken from the arguments, joined by a space, or from stdin when no
argument is given.`,
	Version:       build.FullVersion(),
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runScrub,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

// ExecuteWithArgs runs the command tree once with the given arguments and streams.
func ExecuteWithArgs(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(build.Summary("linkscrub") + "\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config-file", "", "config file path, JSON or YAML (e.g., ~/.config/linkscrub.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "log every cleaned and skipped URL")
	rootCmd.PersistentFlags().BoolVar(&quiet, "quiet", false, "only log errors")
	rootCmd.PersistentFlags().BoolVar(&jsonLog, "json-log", false, "write logs as JSON")

	rootCmd.Flags().BoolVar(&urlMode, "url", false, "treat each argument, or each stdin line, as one URL")
	rootCmd.Flags().BoolVar(&useProfile, "profile", false, "apply the full text cleaning profile, not only URL cleaning")
	rootCmd.Flags().BoolVar(&report, "report", false, "write a JSON report of every URL found to stderr")
	rootCmd.Flags().StringVar(&digestAlgo, "report-digest", string(hashutil.HashAlgoBLAKE3), "digest algorithm for report input and output, blake3 or sha256")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "write the result to a file instead of stdout")

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlag("config-file", rootCmd.PersistentFlags().Lookup("config-file"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("json-log", rootCmd.PersistentFlags().Lookup("json-log"))
}

func runScrub(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	recorder := initLogging(cfg, cmd.ErrOrStderr())

	algo, err := hashutil.ParseHashAlgo(digestAlgo)
	if err != nil {
		return err
	}

	input, err := readInput(cmd.InOrStdin(), args)
	if err != nil {
		return err
	}

	start := time.Now()
	s := scrubber.New(cfg.RuleTable(), recorder)
	var result scrubber.Report
	switch {
	case urlMode && len(args) > 0:
		result = cleanArgs(s, args)
	case urlMode:
		result = cleanLines(s, input)
	case useProfile:
		cleaner := textclean.NewCleaner(cfg.EffectiveProfile(), s)
		output := cleaner.Apply(input)
		// report the URL edits without recording them a second time
		urls := scrubber.New(cfg.RuleTable(), nil).Scrub(input)
		result = scrubber.NewReport(output, urls.Changes()...)
	default:
		result = s.Scrub(input)
	}

	output := result.Output()
	if len(args) > 0 && !strings.HasSuffix(output, "\n") {
		output += "\n"
	}
	if outputPath != "" {
		if err := fileutil.WriteFile(outputPath, []byte(output)); err != nil {
			recorder.RecordError(
				time.Now(),
				"cli",
				"runScrub",
				metadata.CauseStorageFailure,
				err.Error(),
				[]metadata.Attribute{metadata.NewAttr(metadata.AttrWritePath, outputPath)},
			)
			return err
		}
		recorder.RecordArtifact(outputPath, nil)
	} else if _, err := io.WriteString(cmd.OutOrStdout(), output); err != nil {
		return err
	}

	if report {
		if err := writeReport(cmd.ErrOrStderr(), input, result, algo); err != nil {
			return err
		}
	}

	finishRun(recorder, result, start)
	return nil
}

func finishRun(finalizer metadata.RunFinalizer, result scrubber.Report, start time.Time) {
	finalizer.RecordFinalStats(result.URLsFound(), result.URLsCleaned(), result.ParamsRemoved(), time.Since(start))
}

// readInput joins args with a space, or reads all of stdin when there are none.
func readInput(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// cleanArgs cleans every argument as a single URL, one per output line.
func cleanArgs(s *scrubber.Scrubber, args []string) scrubber.Report {
	changes := make([]scrubber.Change, 0, len(args))
	cleaned := make([]string, 0, len(args))
	for _, raw := range args {
		change := s.Inspect(raw)
		changes = append(changes, change)
		cleaned = append(cleaned, change.Cleaned())
	}
	return scrubber.NewReport(strings.Join(cleaned, "\n"), changes...)
}

// cleanLines cleans every non-blank line of input as a single URL.
// Surrounding blanks and line endings are kept.
func cleanLines(s *scrubber.Scrubber, input string) scrubber.Report {
	var (
		changes []scrubber.Change
		b       strings.Builder
	)
	for _, line := range strings.SplitAfter(input, "\n") {
		body := strings.TrimRight(line, "\r\n")
		trimmed := strings.TrimSpace(body)
		if trimmed == "" {
			b.WriteString(line)
			continue
		}
		change := s.Inspect(trimmed)
		changes = append(changes, change)
		b.WriteString(strings.Replace(line, trimmed, change.Cleaned(), 1))
	}
	return scrubber.NewReport(b.String(), changes...)
}

func initLogging(cfg config.Config, stderr io.Writer) *metadata.Recorder {
	logger.Init(logger.Options{
		Debug:  debug || viper.GetBool("debug") || cfg.Debug(),
		Quiet:  quiet || viper.GetBool("quiet") || cfg.Quiet(),
		JSON:   jsonLog || viper.GetBool("json-log") || cfg.JSONLog(),
		Output: stderr,
	})
	return metadata.NewRecorder(logger.Get())
}

// loadConfig is InitConfigWithError with the failure recorded on the process logger.
func loadConfig() (config.Config, error) {
	cfg, err := InitConfigWithError()
	if err != nil {
		cause := metadata.CauseConfigFailure
		if errors.Is(err, config.ErrInvalidConfig) {
			cause = metadata.CauseInvalidRule
		}
		metadata.NewRecorder(logger.Get()).RecordError(
			time.Now(),
			"cli",
			"loadConfig",
			cause,
			err.Error(),
			nil,
		)
	}
	return cfg, err
}

// InitConfigWithError loads the config file named by --config-file or
// LINKSCRUB_CONFIG_FILE, or the defaults when neither is set.
func InitConfigWithError() (config.Config, error) {
	path := cfgFile
	if path == "" {
		path = viper.GetString("config-file")
	}

	if path != "" {
		cfg, err := config.WithConfigFile(path)
		if err != nil {
			return cfg, fmt.Errorf("error initializing config from file: %w", err)
		}
		return cfg, nil
	}

	return config.WithDefault().Build()
}

func ResetFlags() {
	cfgFile = ""
	urlMode = false
	useProfile = false
	report = false
	digestAlgo = string(hashutil.HashAlgoBLAKE3)
	outputPath = ""
	debug = false
	quiet = false
	jsonLog = false

	for _, c := range []*cobra.Command{rootCmd, rulesCmd} {
		resetFlagSet(c.Flags())
		resetFlagSet(c.PersistentFlags())
	}
}

// resetFlagSet restores defaults and clears Changed, which viper consults
// before the environment.
func resetFlagSet(fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

// Test helper functions to set flag values from tests
func SetConfigFileForTest(path string) {
	cfgFile = path
}

func SetURLModeForTest(enabled bool) {
	urlMode = enabled
}

func SetProfileForTest(enabled bool) {
	useProfile = enabled
}

func SetReportForTest(enabled bool) {
	report = enabled
}

func SetOutputForTest(path string) {
	outputPath = path
}
