package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sjursen/ordsok/internal/config"
	"github.com/sjursen/ordsok/internal/store"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configure the dictionary database and search settings",
	Long: `Interactive configuration wizard to set up the dictionary database
path and search defaults. Creates or updates the configuration file at
~/.config/ordsok/config.yaml`,
	RunE: runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("ordsok Configuration Wizard")
	fmt.Println("===========================")

	// Load existing config if available
	existingCfg, err := config.Load()
	if err != nil {
		existingCfg = &config.Config{
			Database: config.DatabaseConfig{Path: config.DefaultDatabasePath()},
			Search: config.SearchConfig{
				Threshold: config.DefaultThreshold,
				Limit:     config.DefaultLimit,
				PageSize:  config.DefaultPageSize,
				Fallback:  true,
			},
			UI: config.UIConfig{Interactive: true},
		}
	}

	// Get database path
	fmt.Printf("Dictionary database path")
	if existingCfg.Database.Path != "" {
		fmt.Printf(" [%s]", existingCfg.Database.Path)
	}
	printPrompt(": ")

	path, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	path = strings.TrimSpace(path)

	// Use existing path if user pressed Enter without input
	if path == "" && existingCfg.Database.Path != "" {
		path = existingCfg.Database.Path
	}

	if path == "" {
		return fmt.Errorf("dictionary database path is required")
	}

	// Get fuzzy threshold (optional)
	threshold, err := promptFloat(reader, "Fuzzy similarity cutoff (0-1)", existingCfg.Search.Threshold, config.DefaultThreshold)
	if err != nil {
		return err
	}

	// Get result limit (optional)
	limit, err := promptInt(reader, "Maximum candidates shown", existingCfg.Search.Limit, config.DefaultLimit)
	if err != nil {
		return err
	}

	// Get menu page size (optional)
	pageSize, err := promptInt(reader, "Disambiguation menu page size", existingCfg.Search.PageSize, config.DefaultPageSize)
	if err != nil {
		return err
	}

	cfg := &config.Config{
		Database: config.DatabaseConfig{Path: path},
		Search: config.SearchConfig{
			Threshold:    threshold,
			Limit:        limit,
			PageSize:     pageSize,
			Fallback:     existingCfg.Search.Fallback,
			Replacements: existingCfg.Search.Replacements,
		},
		UI: existingCfg.UI,
	}

	// Verify the database opens before saving the path
	fmt.Printf("\nChecking dictionary at %s...\n", path)

	st, err := store.Open(expandWizardPath(path))
	if err != nil {
		return fmt.Errorf("dictionary check failed: %w", err)
	}
	stats, err := st.Stats()
	closeErr := st.Close()
	if err != nil {
		return fmt.Errorf("dictionary check failed: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("dictionary check failed: %w", closeErr)
	}

	printSuccess(fmt.Sprintf("Dictionary opened: %d entries", stats.Entries))

	// Save configuration
	configDir := filepath.Join(os.Getenv("HOME"), ".config", "ordsok")
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(configDir, "config.yaml")

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Println()
	printSuccess(fmt.Sprintf("Configuration saved to %s", configPath))
	fmt.Println("\nYou can now run 'ordsok <word>' to look up a word.")

	return nil
}

// promptFloat asks for a float value, falling back to the current value
// on empty input and to the default on unparsable input
func promptFloat(reader *bufio.Reader, label string, current, fallback float64) (float64, error) {
	if current <= 0 {
		current = fallback
	}
	fmt.Printf("%s [%g]", label, current)
	printPrompt(": ")

	raw, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current, nil
	}

	value := current
	if _, err := fmt.Sscanf(raw, "%g", &value); err != nil {
		fmt.Printf("Warning: invalid value '%s', using %g\n", raw, fallback)
		return fallback, nil
	}
	return value, nil
}

// promptInt asks for an integer value with the same fallback rules
func promptInt(reader *bufio.Reader, label string, current, fallback int) (int, error) {
	if current <= 0 {
		current = fallback
	}
	fmt.Printf("%s [%d]", label, current)
	printPrompt(": ")

	raw, err := reader.ReadString('\n')
	if err != nil {
		return 0, fmt.Errorf("failed to read input: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return current, nil
	}

	value := current
	if _, err := fmt.Sscanf(raw, "%d", &value); err != nil {
		fmt.Printf("Warning: invalid value '%s', using %d\n", raw, fallback)
		return fallback, nil
	}
	return value, nil
}

// expandWizardPath expands a leading ~ so the database check works on
// the path exactly as the user typed it
func expandWizardPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home := os.Getenv("HOME")
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[1:])
	}
	return path
}
