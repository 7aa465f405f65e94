package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "snowmap",
		Short:         "Build fine-tuning datasets from ServiceNow exports",
		Long:          "snowmap maps exported ServiceNow incidents to their assignment groups and writes a prompt/completion dataset for classifier fine-tuning, with stable numeric categories and a distribution histogram.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newMapCmd(app),
	)

	return rootCmd
}
