package main

import (
	"errors"
	"fmt"

	"github.com/SscSPs/construction_billing_app/internal/utils"
	"github.com/spf13/cobra"
)

var hashSecretCmd = &cobra.Command{
	Use:   "hash-secret <secret>",
	Short: "Prints the bcrypt hash to use as DELETION_SECRET_HASH",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if args[0] == "" {
			return errors.New("secret must not be empty")
		}
		hash, err := utils.HashSecret(args[0])
		if err != nil {
			return fmt.Errorf("failed to hash secret: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}
