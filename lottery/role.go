// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery

import (
	"context"

	"github.com/33cn/lottery/types"
)

// RoleResolver 判断账户是否为合约管理员
type RoleResolver struct {
	client *Client
}

// NewRoleResolver new
func NewRoleResolver(client *Client) *RoleResolver {
	return &RoleResolver{client: client}
}

// Resolve 读取 admin() 并与 account 做大小写无关的比较.
// 读取失败时返回 RoleParticipant, 不能因为节点错误给出管理员权限.
func (r *RoleResolver) Resolve(ctx context.Context, account types.Account) types.Role {
	admin, err := r.client.ReadAdmin(ctx)
	if err != nil {
		clog.Warn("Resolve: admin read failed, fallback to participant", "account", account, "err", err)
		return types.RoleParticipant
	}
	if admin != "" && types.SameAccount(admin, account) {
		return types.RoleAdministrator
	}
	return types.RoleParticipant
}
