// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commands lottery-cli 的子命令
package commands

import (
	"github.com/spf13/cobra"
)

// RootCmd lottery-cli
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "lottery-cli",
		Short:         "lottery contract client tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("conf", "", "config file, default config is used when empty")
	cmd.PersistentFlags().String("rpc_laddr", "", "ethereum rpc url, overrides chain.rpcAddr")
	cmd.PersistentFlags().String("account", "", "active account, overrides wallet.account")
	cmd.PersistentFlags().Bool("gate", true, "check roles locally before sending a transaction")

	cmd.AddCommand(
		StatusCmd(),
		RoleCmd(),
		ParticipantsCmd(),
		BalanceCmd(),
		EnterCmd(),
		SelectWinnerCmd(),
	)
	return cmd
}
