package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	mailpit "github.com/mailpit/client-go"
)

var (
	chaosAuth      []int
	chaosRecipient []int
	chaosSender    []int
)

// chaosCmd represents the chaos command
var chaosCmd = &cobra.Command{
	Use:   "chaos",
	Short: "Inspect and configure SMTP fault injection",
	Long: `Inspect and configure Mailpit's Chaos triggers. Chaos must be
enabled on the server (--enable-chaos) or these commands fail.`,
}

var chaosGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show the current Chaos triggers",
	RunE:  runChaosGet,
}

var chaosSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set Chaos triggers",
	Long: `Set one or more Chaos triggers. Each trigger takes an SMTP error
code (400-599) and a probability (0-100), for example:

  mailpit chaos set --sender 451,20 --recipient 550,10

Triggers not given on the command line are reset to 0% probability.`,
	RunE: runChaosSet,
}

var chaosResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset all Chaos triggers to 0% probability",
	RunE:  runChaosReset,
}

func init() {
	chaosSetCmd.Flags().IntSliceVar(&chaosAuth, "auth", nil, "authentication trigger: errorCode,probability")
	chaosSetCmd.Flags().IntSliceVar(&chaosRecipient, "recipient", nil, "recipient trigger: errorCode,probability")
	chaosSetCmd.Flags().IntSliceVar(&chaosSender, "sender", nil, "sender trigger: errorCode,probability")

	chaosCmd.AddCommand(chaosGetCmd)
	chaosCmd.AddCommand(chaosSetCmd)
	chaosCmd.AddCommand(chaosResetCmd)
}

func runChaosGet(cmd *cobra.Command, args []string) error {
	triggers, err := client.ChaosTriggers(context.Background())
	if err != nil {
		return err
	}

	printChaosTriggers(triggers)
	return nil
}

func runChaosSet(cmd *cobra.Command, args []string) error {
	config := &mailpit.ChaosTriggersConfig{}

	var err error
	if config.Authentication, err = parseTrigger("auth", chaosAuth); err != nil {
		return err
	}
	if config.Recipient, err = parseTrigger("recipient", chaosRecipient); err != nil {
		return err
	}
	if config.Sender, err = parseTrigger("sender", chaosSender); err != nil {
		return err
	}

	triggers, err := client.SetChaosTriggers(context.Background(), config)
	if err != nil {
		return err
	}

	printChaosTriggers(triggers)
	return nil
}

func runChaosReset(cmd *cobra.Command, args []string) error {
	triggers, err := client.SetChaosTriggers(context.Background(), nil)
	if err != nil {
		return err
	}

	logger.Info().Msg("Reset Chaos triggers")
	printChaosTriggers(triggers)
	return nil
}

func parseTrigger(name string, values []int) (*mailpit.ChaosTrigger, error) {
	if len(values) == 0 {
		return nil, nil
	}
	if len(values) != 2 {
		return nil, fmt.Errorf("--%s expects errorCode,probability", name)
	}
	return &mailpit.ChaosTrigger{ErrorCode: values[0], Probability: values[1]}, nil
}

func printChaosTriggers(triggers *mailpit.ChaosTriggers) {
	fmt.Printf("Authentication: %d%% (SMTP %d)\n", triggers.Authentication.Probability, triggers.Authentication.ErrorCode)
	fmt.Printf("Recipient:      %d%% (SMTP %d)\n", triggers.Recipient.Probability, triggers.Recipient.ErrorCode)
	fmt.Printf("Sender:         %d%% (SMTP %d)\n", triggers.Sender.Probability, triggers.Sender.ErrorCode)
}
