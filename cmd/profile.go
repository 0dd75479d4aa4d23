package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/colfig/colfig/internal/grid"
	"github.com/colfig/colfig/internal/profile"
	"github.com/colfig/colfig/internal/ui"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage named column-settings profiles",
}

var (
	columnFlag      string
	headerFlag      string
	widthFlag       int
	pinnedFlag      string
	hideFlag        bool
	showFlag        bool
	formatFlag      string
	expressionFlag  string
	filterFlag      string
	editorFlag      string
	headerColorFlag string
	cellColorFlag   string
)

var profileSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save a column-settings profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := grid.Settings{
			ColumnID:    columnFlag,
			HeaderName:  headerFlag,
			Width:       widthFlag,
			Pinned:      grid.Pin(pinnedFlag),
			Format:      formatFlag,
			Expression:  expressionFlag,
			Filter:      filterFlag,
			Editor:      editorFlag,
			HeaderStyle: grid.Style{Color: headerColorFlag},
			CellStyle:   grid.Style{Color: cellColorFlag},
		}
		if hideFlag {
			visible := false
			settings.Visible = &visible
		} else if showFlag {
			visible := true
			settings.Visible = &visible
		}
		return RunProfileSave(cmd.OutOrStdout(), args[0], settings)
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunProfileShow(cmd.OutOrStdout(), args[0])
	},
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved profiles",
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunProfileList(cmd.OutOrStdout())
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return RunProfileDelete(cmd.OutOrStdout(), args[0])
	},
}

func init() {
	profileSaveCmd.Flags().StringVar(&columnFlag, "column", "", "Column identifier the profile applies to")
	profileSaveCmd.Flags().StringVar(&headerFlag, "header", "", "Header display name")
	profileSaveCmd.Flags().IntVar(&widthFlag, "width", 0, "Column width in pixels")
	profileSaveCmd.Flags().StringVar(&pinnedFlag, "pinned", "", "Pin side: left or right")
	profileSaveCmd.Flags().BoolVar(&hideFlag, "hide", false, "Hide the column")
	profileSaveCmd.Flags().BoolVar(&showFlag, "show", false, "Show the column")
	profileSaveCmd.Flags().StringVar(&formatFlag, "format", "", "Cell format string")
	profileSaveCmd.Flags().StringVar(&expressionFlag, "expression", "", "Value expression")
	profileSaveCmd.Flags().StringVar(&filterFlag, "filter", "", "Filter kind")
	profileSaveCmd.Flags().StringVar(&editorFlag, "editor", "", "Editor kind")
	profileSaveCmd.Flags().StringVar(&headerColorFlag, "header-color", "", "Header text color")
	profileSaveCmd.Flags().StringVar(&cellColorFlag, "cell-color", "", "Cell text color")

	profileCmd.AddCommand(profileSaveCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
	rootCmd.AddCommand(profileCmd)
}

func openStore() (*profile.Store, error) {
	if _, err := os.Stat(configDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("run `colfig init` first")
	}
	store, err := profile.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening profile store: %w", err)
	}
	return store, nil
}

func RunProfileSave(w io.Writer, name string, settings grid.Settings) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	// Lint findings are advisory: the profile still saves, mirroring an
	// editor that warns while the user types.
	for _, finding := range settings.Check() {
		ui.ProblemLine(w, finding)
	}

	payload, err := json.Marshal(settings)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := store.Set(name, string(payload)); err != nil {
		return err
	}
	fmt.Fprintf(w, "saved profile %s\n", name)
	return nil
}

func RunProfileShow(w io.Writer, name string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	payload, ok, err := store.Get(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("profile %q not found", name)
	}

	var settings grid.Settings
	if err := json.Unmarshal([]byte(payload), &settings); err != nil {
		return fmt.Errorf("decoding profile %q: %w", name, err)
	}
	pretty, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding profile %q: %w", name, err)
	}
	fmt.Fprintln(w, string(pretty))
	return nil
}

func RunProfileList(w io.Writer) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(w, "no profiles")
		return nil
	}
	for _, e := range entries {
		fmt.Fprintf(w, "%s  %s\n", e.Name, e.UpdatedAt)
	}
	return nil
}

func RunProfileDelete(w io.Writer, name string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Delete(name); err != nil {
		return err
	}
	fmt.Fprintf(w, "deleted profile %s\n", name)
	return nil
}
