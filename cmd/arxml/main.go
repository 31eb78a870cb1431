package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autokraft/go-arxml/pkg/arxml"
)

const version = "0.1.0"

var (
	inputPath  string
	outputPath string
	jsonPath   string
	configPath string
	indent     int
	verbose    bool

	addDirectives    []string
	editDirectives   []string
	deleteDirectives []string
)

var rootCmd = &cobra.Command{
	Use:   "arxml",
	Short: "Edit ARXML attributes and export ARXML trees to JSON",
	Long: `arxml loads an AUTOSAR XML file, applies attribute edits to matching
elements, and writes the result back as ARXML and/or JSON.

Edit directives are applied in order: all --add directives first, then
--edit, then --delete. When neither --output nor --json is given, the JSON
representation is written to stdout.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("arxml version %s\n", version)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "input ARXML file (required)")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output ARXML file")
	rootCmd.Flags().StringVarP(&jsonPath, "json", "j", "", "output JSON file")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().IntVar(&indent, "indent", 0, "JSON indent width (overrides config)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringArrayVar(&addDirectives, "add", nil, "add attribute, as name:value:tag (repeatable)")
	rootCmd.Flags().StringArrayVar(&editDirectives, "edit", nil, "edit existing attribute, as name:value:tag (repeatable)")
	rootCmd.Flags().StringArrayVar(&deleteDirectives, "delete", nil, "delete attribute, as name:tag (repeatable)")
	rootCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(versionCmd)
}

func run(cmd *cobra.Command, args []string) error {
	config, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	logger, err := arxml.NewLogger(config.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	manager := arxml.NewManager(arxml.WithConfig(config), arxml.WithLogger(logger))
	if err := manager.Load(inputPath); err != nil {
		return err
	}

	for _, directive := range addDirectives {
		name, value, tag, err := parseValueDirective(directive)
		if err != nil {
			return err
		}
		if _, err := manager.AddAttributeByTag(tag, name, value); err != nil {
			return err
		}
	}
	for _, directive := range editDirectives {
		name, value, tag, err := parseValueDirective(directive)
		if err != nil {
			return err
		}
		if _, err := manager.EditAttributeByTag(tag, name, value); err != nil {
			return err
		}
	}
	for _, directive := range deleteDirectives {
		name, tag, err := parseDeleteDirective(directive)
		if err != nil {
			return err
		}
		if _, err := manager.DeleteAttributeByTag(tag, name); err != nil {
			return err
		}
	}

	if jsonPath != "" {
		data, err := manager.ExportJSON()
		if err != nil {
			return err
		}
		if err := writeFile(jsonPath, append(data, '\n')); err != nil {
			return err
		}
	}
	if outputPath != "" {
		if err := manager.Save(outputPath); err != nil {
			return err
		}
	}
	if jsonPath == "" && outputPath == "" {
		data, err := manager.ExportJSON()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	}
	return nil
}

func resolveConfig(cmd *cobra.Command) (*arxml.Config, error) {
	config := arxml.ConfigFromEnvironment()
	if configPath != "" {
		fileConfig, err := arxml.LoadConfigFile(configPath)
		if err != nil {
			return nil, err
		}
		config = fileConfig
	}
	if cmd.Flags().Changed("indent") {
		config.JSONIndent = indent
	}
	if verbose {
		config.LogLevel = "debug"
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// parseValueDirective splits an add/edit directive of the form
// name:value:tag. The value may itself contain colons; the tag may not.
func parseValueDirective(directive string) (name, value, tag string, err error) {
	first := strings.Index(directive, ":")
	last := strings.LastIndex(directive, ":")
	if first < 0 || first == last {
		return "", "", "", fmt.Errorf("invalid directive %q: expected name:value:tag", directive)
	}
	name = directive[:first]
	value = directive[first+1 : last]
	tag = directive[last+1:]
	if name == "" || tag == "" {
		return "", "", "", fmt.Errorf("invalid directive %q: empty name or tag", directive)
	}
	return name, value, tag, nil
}

// parseDeleteDirective splits a delete directive of the form name:tag.
func parseDeleteDirective(directive string) (name, tag string, err error) {
	parts := strings.SplitN(directive, ":", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid directive %q: expected name:tag", directive)
	}
	return parts[0], parts[1], nil
}

func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0o644)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "arxml: %v\n", err)
		os.Exit(1)
	}
}
