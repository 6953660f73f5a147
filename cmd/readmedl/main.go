package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/readmedl-go/internal/app"
	"github.com/quantmind-br/readmedl-go/internal/config"
	"github.com/quantmind-br/readmedl-go/internal/fetcher"
	"github.com/quantmind-br/readmedl-go/internal/git"
	"github.com/quantmind-br/readmedl-go/internal/output"
	"github.com/quantmind-br/readmedl-go/internal/utils"
	"github.com/quantmind-br/readmedl-go/pkg/version"
)

var (
	cfgFile string
	verbose bool
	noInput bool
	log     *utils.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "readmedl [input-file] [output-folder]",
	Short: "Bulk-download README files from GitHub repositories",
	Long: `readmedl reads a list of GitHub repository URLs (one per line) and
downloads each repository's README via the raw-content endpoint, falling
back to a shallow clone when the direct fetch returns not-found.

Every run writes one <repo>.md file per successful URL plus a summary
report, and can optionally combine all downloaded files into a single
document with a table of contents.`,
	Version: version.Short(),
	Args:    cobra.MaximumNArgs(2),
	RunE:    run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.readmedl/config.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", config.DefaultOutputDir, "Output folder")
	rootCmd.PersistentFlags().StringP("branch", "b", config.DefaultBranch, "Default branch to fetch")
	rootCmd.PersistentFlags().Duration("timeout", config.DefaultTimeout, "Request timeout")
	rootCmd.PersistentFlags().Int("max-retries", config.DefaultMaxRetries, "Max retries for transient HTTP failures")
	rootCmd.PersistentFlags().String("token", "", "Access token for private repositories (or GITHUB_TOKEN)")
	rootCmd.PersistentFlags().String("user-agent", "", "Custom User-Agent")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "Log format (pretty or json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVar(&noInput, "no-input", false, "Disable interactive prompts")

	// Combine flags
	rootCmd.Flags().Bool("combine", false, "Combine downloaded README files after the run")
	rootCmd.Flags().String("combined-name", "", "Name for the combined file (implies --combine)")

	// Bind flags to viper
	_ = viper.BindPFlag("output.directory", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("download.branch", rootCmd.PersistentFlags().Lookup("branch"))
	_ = viper.BindPFlag("download.timeout", rootCmd.PersistentFlags().Lookup("timeout"))
	_ = viper.BindPFlag("download.max_retries", rootCmd.PersistentFlags().Lookup("max-retries"))
	_ = viper.BindPFlag("download.token", rootCmd.PersistentFlags().Lookup("token"))
	_ = viper.BindPFlag("download.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
	_ = viper.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	rootCmd.AddCommand(combineCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logLevel := cfg.Logging.Level
	if verbose {
		logLevel = "debug"
	}
	log = utils.NewLogger(utils.LoggerOptions{
		Level:   logLevel,
		Format:  cfg.Logging.Format,
		Verbose: verbose,
	})

	stdin := bufio.NewReader(cmd.InOrStdin())

	// Resolve the input file and output folder: positional args first,
	// then interactive prompts for whatever is missing
	var inputPath string
	if len(args) > 0 {
		inputPath = args[0]
	} else {
		inputPath, err = prompt(stdin, "Enter the path to the file containing GitHub URLs: ")
		if err != nil {
			return err
		}
	}

	outputDir := cfg.Output.Directory
	if len(args) > 1 {
		outputDir = args[1]
	} else if !cmd.Flags().Changed("output") && !noInput {
		outputDir, err = prompt(stdin, "Enter the output folder path: ")
		if err != nil {
			return err
		}
	}

	inputPath = utils.AbsPath(inputPath)
	outputDir = utils.AbsPath(outputDir)

	if !utils.FileExists(inputPath) {
		return fmt.Errorf("input file not found at %s", inputPath)
	}

	urls, err := readURLLines(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputDir).
		Int("urls", len(urls)).
		Msg("Starting README download")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigCh
		log.Info().Msg("Shutting down gracefully...")
		cancel()
	}()

	writer := output.NewWriter(output.WriterOptions{
		BaseDir:    outputDir,
		ReportName: cfg.Output.ReportName,
	})
	if err := writer.EnsureBaseDir(); err != nil {
		return fmt.Errorf("failed to create output folder: %w", err)
	}

	direct := fetcher.NewClient(fetcher.ClientOptions{
		Timeout:    cfg.Download.Timeout,
		MaxRetries: cfg.Download.MaxRetries,
		Branch:     cfg.Download.Branch,
		ReadmeName: cfg.Download.ReadmeName,
		Token:      cfg.Download.Token,
		UserAgent:  cfg.Download.UserAgent,
	})

	fallback := git.NewCloner(git.ClonerOptions{
		OutputDir:  outputDir,
		Branch:     cfg.Download.Branch,
		ReadmeName: cfg.Download.ReadmeName,
		Depth:      cfg.Download.CloneDepth,
		Token:      cfg.Download.Token,
		Logger:     log,
	})

	runner := app.NewRunner(app.RunnerOptions{
		Direct:   direct,
		Fallback: fallback,
		Writer:   writer,
		Logger:   log,
		Progress: !verbose,
	})

	outcomes := runner.Run(ctx, urls)

	report := app.RenderReport(outcomes)
	reportPath, err := writer.WriteReport(report)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	summary := app.Summarize(outcomes)
	fmt.Fprintf(cmd.OutOrStdout(), "\nDownload complete. Report saved to %s\n", reportPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Successfully downloaded: %d\n", summary.Successful)
	fmt.Fprintf(cmd.OutOrStdout(), "Failed: %d\n", summary.Failed)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	return maybeCombine(cmd, stdin, cfg, writer)
}

// maybeCombine runs the combine step when opted in via flags, config, or
// the interactive prompt
func maybeCombine(cmd *cobra.Command, stdin *bufio.Reader, cfg *config.Config, writer *output.Writer) error {
	combinedName, _ := cmd.Flags().GetString("combined-name")
	combine, _ := cmd.Flags().GetBool("combine")
	combine = combine || combinedName != "" || cfg.Combine.Enabled

	if !combine && !cmd.Flags().Changed("combine") && !noInput {
		answer, err := prompt(stdin, "\nDo you want to combine all README files into one? (yes/no): ")
		if err != nil {
			return err
		}
		answer = strings.ToLower(answer)
		combine = answer == "yes" || answer == "y"
	}

	if !combine {
		return nil
	}

	if combinedName == "" {
		combinedName = cfg.Combine.Filename
		if !noInput && !cmd.Flags().Changed("combined-name") {
			name, err := prompt(stdin, "Enter the name for the combined file (e.g., combined_readmes.md): ")
			if err != nil {
				return err
			}
			if name != "" {
				combinedName = name
			}
		}
	}

	combiner := output.NewCombiner(writer, log)
	combinedPath, err := combiner.Combine(combinedName)
	if err != nil {
		return fmt.Errorf("failed to combine README files: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Combined README file created at: %s\n", combinedPath)
	return nil
}

var combineCmd = &cobra.Command{
	Use:   "combine [output-folder]",
	Short: "Combine previously downloaded README files into one document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if log == nil {
			log = utils.NewDefaultLogger()
		}

		outputDir := cfg.Output.Directory
		if len(args) > 0 {
			outputDir = args[0]
		}
		outputDir = utils.AbsPath(outputDir)

		name, _ := cmd.Flags().GetString("name")
		if name == "" {
			name = cfg.Combine.Filename
		}

		writer := output.NewWriter(output.WriterOptions{
			BaseDir:    outputDir,
			ReportName: cfg.Output.ReportName,
		})

		combiner := output.NewCombiner(writer, log)
		combinedPath, err := combiner.Combine(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Combined README file created at: %s\n", combinedPath)
		return nil
	},
}

func init() {
	combineCmd.Flags().String("name", "", "Name for the combined file")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Full())
	},
}

// prompt reads one line from the user. With --no-input set it returns an
// error instead of blocking on a read that will never be answered.
func prompt(r *bufio.Reader, message string) (string, error) {
	if noInput {
		return "", fmt.Errorf("input required but --no-input is set")
	}

	fmt.Fprint(os.Stderr, message)
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readURLLines reads the input file as one URL per line. A trailing final
// newline does not produce an extra entry; interior blank lines do, and
// surface as invalid-URL outcomes.
func readURLLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return lines, nil
}
