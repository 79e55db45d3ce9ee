// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"context"

	"github.com/33cn/lottery/lottery"
	"github.com/33cn/lottery/types"
	"github.com/spf13/cobra"
)

// StatusResult status 命令的输出
type StatusResult struct {
	Contract         string          `json:"contract"`
	Account          string          `json:"account"`
	Role             types.Role      `json:"role"`
	Gate             string          `json:"gate"`
	TicketPrice      string          `json:"ticketPrice"`
	ParticipantCount int             `json:"participantCount"`
	Participants     []string        `json:"participants"`
	Balance          lottery.Balance `json:"balance"`
}

// ActionResult enter / select_winner 的输出
type ActionResult struct {
	Action   string           `json:"action"`
	Success  bool             `json:"success"`
	Snapshot lottery.Snapshot `json:"snapshot"`
}

// RoleResult role 命令的输出
type RoleResult struct {
	Account string     `json:"account"`
	Role    types.Role `json:"role"`
}

// StatusCmd 显示合约和当前账户的状态
func StatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show participants, pool balance and role of the active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCtx(cmd, func(ctx context.Context, lctx *LotteryCtx) (interface{}, error) {
				s, err := lctx.Session()
				if err != nil {
					return nil, err
				}
				return status(ctx, s, contractAddress(lctx.Contract)), nil
			})
		},
	}
}

// RoleCmd 判断当前账户是否为管理员
func RoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role",
		Short: "Resolve the role of the active account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCtx(cmd, func(ctx context.Context, lctx *LotteryCtx) (interface{}, error) {
				s, err := lctx.Session()
				if err != nil {
					return nil, err
				}
				return &RoleResult{Account: s.Account(), Role: s.ResolveRole(ctx)}, nil
			})
		},
	}
}

// ParticipantsCmd 参与者列表
func ParticipantsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "participants",
		Short: "List current participants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCtx(cmd, func(ctx context.Context, lctx *LotteryCtx) (interface{}, error) {
				list, err := lctx.Client().ListParticipants(ctx)
				if err != nil {
					return nil, err
				}
				return list, nil
			})
		},
	}
}

// BalanceCmd 合约余额
func BalanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "balance",
		Short: "Show the pooled contract balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCtx(cmd, func(ctx context.Context, lctx *LotteryCtx) (interface{}, error) {
				balance, err := lctx.Client().ReadBalance(ctx)
				if err != nil {
					return nil, err
				}
				return balance, nil
			})
		},
	}
}

// EnterCmd 支付票价参与
func EnterCmd() *cobra.Command {
	return actionCmd("enter", "Enter the lottery paying the ticket price of "+types.EntryFeeEther+" "+types.CoinSymbol, types.ActionEnter)
}

// SelectWinnerCmd 管理员开奖
func SelectWinnerCmd() *cobra.Command {
	return actionCmd("select_winner", "Select the winner and pay out the pool, administrator only", types.ActionSelectWinner)
}

func actionCmd(use, short string, action types.Action) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithCtx(cmd, func(ctx context.Context, lctx *LotteryCtx) (interface{}, error) {
				s, err := lctx.Session()
				if err != nil {
					return nil, err
				}
				return doAction(ctx, s, action)
			})
		},
	}
}

func status(ctx context.Context, s *lottery.Session, contract string) *StatusResult {
	snap := s.Load(ctx)
	return &StatusResult{
		Contract:         contract,
		Account:          snap.Account,
		Role:             snap.Role,
		Gate:             s.Gate().Mode().String(),
		TicketPrice:      types.EntryFeeEther + " " + types.CoinSymbol,
		ParticipantCount: len(snap.Participants),
		Participants:     snap.Participants,
		Balance:          snap.Balance,
	}
}

// doAction 先加载视图得到角色, 再触发写操作
func doAction(ctx context.Context, s *lottery.Session, action types.Action) (*ActionResult, error) {
	s.Load(ctx)
	var err error
	switch action {
	case types.ActionEnter:
		err = s.Enter(ctx)
	case types.ActionSelectWinner:
		err = s.SelectWinner(ctx)
	default:
		return nil, types.ErrUnknownAction
	}
	return &ActionResult{
		Action:   action.String(),
		Success:  err == nil,
		Snapshot: s.Snapshot(),
	}, err
}

func contractAddress(c lottery.Contract) string {
	if addr, ok := c.(interface{ Address() types.Account }); ok {
		return addr.Address()
	}
	return ""
}
