package main

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:           "kyc-screener",
	Short:         "kyc-screener is the operator console for the KYC screening service.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setCommandExecutionContext(commandExecutionContext{
			CommandPath:       cmd.CommandPath(),
			UsesStructuredLog: commandUsesStructuredLogging(cmd),
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd, statusCmd)
}
