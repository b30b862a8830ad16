package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/arbor"
)

type cliState struct {
	configPath string
	config     Config

	showGroups bool
	showStrays bool
	plain      bool
}

func newRootCmd() *cobra.Command {
	st := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "arbor",
		Short:         "Replay and inspect scene tree scripts",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(st.configPath, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			st.config = cfg
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", defaultConfigPath, "path to the arbor config file")

	runCmd := &cobra.Command{
		Use:   "run [script]",
		Short: "Run a tree script and print the resulting trees",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.runScript(cmd, args[0])
		},
	}
	runCmd.Flags().BoolVar(&st.showGroups, "groups", false, "show group membership next to each node")
	runCmd.Flags().BoolVar(&st.showStrays, "strays", false, "list stray nodes after the trees")
	runCmd.Flags().BoolVar(&st.plain, "plain", false, "print with the built-in pretty printer instead of styled output")

	checkCmd := &cobra.Command{
		Use:     "check [script...]",
		Short:   "Check that tree scripts parse and run without errors",
		Aliases: []string{"validate"},
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return st.checkScripts(cmd, args)
		},
	}

	rootCmd.AddCommand(runCmd, checkCmd)
	return rootCmd
}

func readScript(path string) (*arbor.Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return arbor.LoadScript(data)
}

func (st *cliState) runScript(cmd *cobra.Command, path string) error {
	script, err := readScript(path)
	if err != nil {
		return err
	}
	reg := st.config.newRegistry(cmd.ErrOrStderr())
	res, runErr := script.Run(reg)

	out := cmd.OutOrStdout()
	opts := renderOptions{groups: st.showGroups || st.config.ShowGroups}
	for _, top := range res.Tops() {
		if st.plain {
			if err := top.PrintTreePretty(out); err != nil {
				return err
			}
			continue
		}
		fmt.Fprintln(out, renderTree(top, opts))
	}

	if st.showStrays || st.config.ShowStrays {
		strays := reg.StrayNodes()
		fmt.Fprintln(out, styles.Title.Render(fmt.Sprintf("Stray nodes: %d", len(strays))))
		if err := reg.PrintStrayNodes(out); err != nil {
			return err
		}
	}
	return runErr
}

func (st *cliState) checkScripts(cmd *cobra.Command, paths []string) error {
	out := cmd.OutOrStdout()
	var failed int
	for _, path := range paths {
		script, err := readScript(path)
		if err == nil {
			_, err = script.Run(st.config.newRegistry(cmd.ErrOrStderr()))
		}
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", styles.Error.Render("FAIL"), path, err)
			continue
		}
		fmt.Fprintf(out, "%s %s (%d steps)\n", styles.Item.Render("ok"), path, script.Len())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d scripts failed", failed, len(paths))
	}
	return nil
}
