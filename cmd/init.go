package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/colfig/colfig/internal/profile"
	"github.com/spf13/cobra"
)

const (
	configDir = ".colfig"
	dbPath    = ".colfig/profiles.db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize colfig in the current directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunInit(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func RunInit(w io.Writer) error {
	_, err := os.Stat(configDir)
	dirExists := err == nil
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("creating %s directory: %w", configDir, err)
	}
	if dirExists {
		fmt.Fprintf(w, "%s/ already exists\n", configDir)
	} else {
		fmt.Fprintf(w, "%s/ created\n", configDir)
	}

	_, err = os.Stat(dbPath)
	dbExists := err == nil
	store, err := profile.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening profile store: %w", err)
	}
	store.Close()
	if dbExists {
		fmt.Fprintf(w, "%s already exists\n", dbPath)
	} else {
		fmt.Fprintf(w, "%s created\n", dbPath)
	}

	msgs, err := ensureGitignore()
	if err != nil {
		return fmt.Errorf("updating .gitignore: %w", err)
	}
	for _, msg := range msgs {
		fmt.Fprintln(w, msg)
	}

	return nil
}

func ensureGitignore() ([]string, error) {
	const entry = dbPath

	data, err := os.ReadFile(".gitignore")
	if os.IsNotExist(err) {
		if err := os.WriteFile(".gitignore", []byte(entry+"\n"), 0o644); err != nil {
			return nil, err
		}
		return []string{".gitignore created", entry + " added to .gitignore"}, nil
	}
	if err != nil {
		return nil, err
	}

	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == entry {
			return nil, nil
		}
	}

	content := string(data)
	if !strings.HasSuffix(content, "\n") {
		content += "\n"
	}
	content += entry + "\n"
	if err := os.WriteFile(".gitignore", []byte(content), 0o644); err != nil {
		return nil, err
	}
	return []string{entry + " added to .gitignore"}, nil
}
