package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	orchestrators "depscope/internal/domain-orchestrators"
	"depscope/internal/domain/entities"
	"depscope/internal/domain/services"
	"depscope/internal/external-adapters/analysisfile"
	"depscope/internal/external-adapters/config"
	"depscope/internal/external-adapters/pom"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Reconcile and report used, unused and undeclared dependencies",
	Long: `Loads a raw dependency analysis result, reconciles it against forced-usage
and ignore configuration, and renders the report in the requested formats.

The analysis itself is produced out-of-process by a bytecode-level analyzer;
point --analysis-file at its dump.`,
	RunE: runAnalyze,
}

func init() {
	flags := analyzeCmd.Flags()
	flags.String("pom", "pom.xml", "path to the project POM")
	flags.String("analysis-file", "", "path to the raw analysis dump (required)")
	flags.String("build-dir", "", "override the project build directory")
	flags.String("config", "", "config file (.yaml or .toml) with analysis settings")

	flags.Bool("fail-on-warning", false, "exit non-zero when dependency problems are found")
	flags.BoolP("verbose", "v", false, "also report used-declared and ignored dependencies")
	flags.Bool("ignore-non-compile", false, "drop non-compile-scope artifacts from the problem sets")
	flags.Bool("output-xml", false, "render missing dependencies as <dependency> XML fragments")
	flags.Bool("output-json", false, "render a summary fragment for machine consumption")
	flags.Bool("scriptable", false, "render scriptable flag lines for missing dependencies")
	flags.String("scriptable-flag", services.DefaultScriptableFlag, "marker prefix for scriptable lines")

	flags.StringArray("force-used", nil, "groupId:artifactId to treat as used (repeatable)")
	flags.StringArray("ignore", nil, "ignore pattern applied to both problem kinds (repeatable)")
	flags.StringArray("ignore-used-undeclared", nil, "ignore pattern for used-undeclared only (repeatable)")
	flags.StringArray("ignore-unused-declared", nil, "ignore pattern for unused-declared only (repeatable)")

	_ = analyzeCmd.MarkFlagRequired("analysis-file")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if skipRequested(cmd) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		newLoggerFromFlags(cmd, verbose).Info("Skipping execution")
		return nil
	}

	cfg, err := assembleConfig(cmd)
	if err != nil {
		return err
	}

	log := newLoggerFromFlags(cmd, cfg.Verbose)

	pomPath, _ := cmd.Flags().GetString("pom")
	project, err := pom.NewReader().ReadFile(pomPath)
	if err != nil {
		return err
	}
	if buildDir, _ := cmd.Flags().GetString("build-dir"); buildDir != "" {
		project.BuildDir = buildDir
	}

	if project.Packaging == "pom" {
		log.Info("Skipping pom project")
		return nil
	}
	if _, err := os.Stat(project.BuildDir); err != nil {
		log.Info("Skipping project with no build directory")
		return nil
	}

	analysisPath, _ := cmd.Flags().GetString("analysis-file")
	analyzer := analysisfile.NewAnalyzer(analysisPath)

	output, err := orchestrators.NewAnalyzeOrchestrator(analyzer, log).Run(cmd.Context(), project, cfg)
	if err != nil {
		var analysisErr *entities.AnalysisError
		if errors.As(err, &analysisErr) {
			log.Error(analysisErr.Error())
		}
		return err
	}

	if output.Report.HasWarning() && cfg.FailOnWarning {
		return errors.New("dependency problems found")
	}
	return nil
}

// assembleConfig merges the optional config file with command-line flags.
// Flags that were set explicitly win over file values.
func assembleConfig(cmd *cobra.Command) (services.Config, error) {
	flags := cmd.Flags()

	cfg := services.Config{ScriptableFlag: services.DefaultScriptableFlag}
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return services.Config{}, err
		}
		cfg = loaded
		if cfg.ScriptableFlag == "" {
			cfg.ScriptableFlag = services.DefaultScriptableFlag
		}
	}

	if flags.Changed("fail-on-warning") {
		cfg.FailOnWarning, _ = flags.GetBool("fail-on-warning")
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("ignore-non-compile") {
		cfg.IgnoreNonCompile, _ = flags.GetBool("ignore-non-compile")
	}
	if flags.Changed("output-xml") {
		cfg.OutputXML, _ = flags.GetBool("output-xml")
	}
	if flags.Changed("output-json") {
		cfg.OutputJSON, _ = flags.GetBool("output-json")
	}
	if flags.Changed("scriptable") {
		cfg.ScriptableOutput, _ = flags.GetBool("scriptable")
	}
	if flags.Changed("scriptable-flag") {
		cfg.ScriptableFlag, _ = flags.GetString("scriptable-flag")
	}
	if flags.Changed("force-used") {
		cfg.ForcedUsed, _ = flags.GetStringArray("force-used")
	}
	if flags.Changed("ignore") {
		cfg.IgnoredDependencies, _ = flags.GetStringArray("ignore")
	}
	if flags.Changed("ignore-used-undeclared") {
		cfg.IgnoredUsedUndeclared, _ = flags.GetStringArray("ignore-used-undeclared")
	}
	if flags.Changed("ignore-unused-declared") {
		cfg.IgnoredUnusedDeclared, _ = flags.GetStringArray("ignore-unused-declared")
	}
	return cfg, nil
}
