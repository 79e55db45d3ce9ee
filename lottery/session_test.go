// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lottery

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/33cn/lottery/lottery/mocks"
	"github.com/33cn/lottery/metrics"
	"github.com/33cn/lottery/types"
	pkgerr "github.com/pkg/errors"
	go_metrics "github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, m *mocks.Contract, account types.Account, gating Gating) *Session {
	s, err := NewSession(SessionConfig{
		Account:  account,
		Contract: m,
		Gating:   gating,
		Recorder: metrics.NewRecorder(go_metrics.NewRegistry()),
	})
	require.Nil(t, err)
	return s
}

func TestNewSession(t *testing.T) {
	_, err := NewSession(SessionConfig{Account: userAddr})
	assert.NotNil(t, err)
	_, err = NewSession(SessionConfig{Contract: &mocks.Contract{}})
	assert.Equal(t, types.ErrInvalidAddress, pkgerr.Cause(err))

	s := newTestSession(t, &mocks.Contract{}, userAddr, GatingEnabled)
	assert.Equal(t, userAddr, s.Account())
	assert.Equal(t, GatingEnabled, s.Gate().Mode())
	snap := s.Snapshot()
	assert.Equal(t, types.RoleParticipant, snap.Role)
	assert.Empty(t, snap.Participants)
	assert.Equal(t, "0", snap.Balance.Ether)
	assert.True(t, snap.Error.None())
}

func TestSessionLoad(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(5e15), nil)

	//管理员地址大小写不同
	s := newTestSession(t, m, "0xabc0000000000000000000000000000000000def", GatingEnabled)
	snap := s.Load(context.Background())
	assert.Equal(t, types.RoleAdministrator, snap.Role)
	assert.Equal(t, []types.Account{userAddr}, snap.Participants)
	assert.Equal(t, "0.005", snap.Balance.Ether)
	assert.True(t, snap.Error.None())
	m.AssertNumberOfCalls(t, "Admin", 1)
}

func TestSessionEnterSuccess(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{otherAddr}, nil).Once()
	m.On("Participants", mock.Anything).Return([]types.Account{otherAddr, userAddr}, nil).Once()
	m.On("Balance", mock.Anything).Return(big.NewInt(5e15), nil)
	m.On("Participate", mock.Anything, userAddr, big.NewInt(types.EntryFeeWei)).Return(nil)

	s := newTestSession(t, m, userAddr, GatingEnabled)
	before := s.Load(context.Background())
	require.Len(t, before.Participants, 1)

	require.Nil(t, s.Enter(context.Background()))
	after := s.Snapshot()
	require.Len(t, after.Participants, 2)
	assert.Equal(t, userAddr, after.Participants[1])
	assert.True(t, after.Error.None())
	assert.False(t, after.EnterPending)
	//enter 之后只重新读取参与者, 余额保持不变
	assert.Equal(t, before.Balance, after.Balance)
	m.AssertNumberOfCalls(t, "Participants", 2)
	m.AssertNumberOfCalls(t, "Balance", 1)
	m.AssertNumberOfCalls(t, "Participate", 1)
}

func TestSessionAdminCannotEnter(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(0), nil)

	s := newTestSession(t, m, adminAddr, GatingEnabled)
	s.Load(context.Background())

	err := s.Enter(context.Background())
	require.NotNil(t, err)
	assert.True(t, errors.Is(err, types.ErrAdminCannotEnter))
	snap := s.Snapshot()
	assert.Equal(t, ErrorRoleViolation, snap.Error.Kind)
	assert.Equal(t, "administrator cannot participate", snap.Error.Message)
	m.AssertNotCalled(t, "Participate", mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, int64(1), s.recorder.Count("enter", "denied"))
}

func TestSessionParticipantCannotSelect(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	s := newTestSession(t, m, userAddr, GatingEnabled)
	s.ResolveRole(context.Background())

	err := s.SelectWinner(context.Background())
	assert.True(t, errors.Is(err, types.ErrOnlyAdminSelect))
	assert.Equal(t, "only administrator may select the winner", s.Snapshot().Error.Message)
	m.AssertNotCalled(t, "SelectWinner", mock.Anything, mock.Anything)
}

func TestSessionTransactionFailure(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{otherAddr}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(5e15), nil)
	m.On("Participate", mock.Anything, userAddr, mock.Anything).Return(errors.New("execution reverted"))

	s := newTestSession(t, m, userAddr, GatingEnabled)
	before := s.Load(context.Background())

	err := s.Enter(context.Background())
	assert.True(t, IsTransactionFailure(err))
	after := s.Snapshot()
	assert.Equal(t, ErrorTransaction, after.Error.Kind)
	assert.Equal(t, types.MsgTransactionFailed, after.Error.Message)
	assert.Equal(t, before.Participants, after.Participants)
	assert.Equal(t, before.Balance, after.Balance)
	//失败后不重新读取
	m.AssertNumberOfCalls(t, "Participants", 1)
	m.AssertNumberOfCalls(t, "Balance", 1)
}

func TestSessionSelectWinnerRefreshesBoth(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr, otherAddr}, nil).Once()
	m.On("Participants", mock.Anything).Return([]types.Account{}, nil).Once()
	m.On("Balance", mock.Anything).Return(big.NewInt(1e16), nil).Once()
	m.On("Balance", mock.Anything).Return(big.NewInt(0), nil).Once()
	m.On("SelectWinner", mock.Anything, adminAddr).Return(nil)

	s := newTestSession(t, m, adminAddr, GatingEnabled)
	s.Load(context.Background())
	require.Nil(t, s.SelectWinner(context.Background()))

	snap := s.Snapshot()
	assert.Empty(t, snap.Participants)
	assert.Equal(t, "0", snap.Balance.Ether)
	m.AssertNumberOfCalls(t, "Participants", 2)
	m.AssertNumberOfCalls(t, "Balance", 2)
}

func TestSessionErrorResetAtStart(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(0), nil)

	s := newTestSession(t, m, adminAddr, GatingEnabled)
	s.Load(context.Background())

	require.NotNil(t, s.Enter(context.Background()))
	require.False(t, s.Snapshot().Error.None())

	var during ErrorState
	m.On("SelectWinner", mock.Anything, adminAddr).Run(func(args mock.Arguments) {
		during = s.Snapshot().Error
	}).Return(errors.New("reverted"))

	err := s.SelectWinner(context.Background())
	assert.True(t, IsTransactionFailure(err))
	assert.True(t, during.None())
	assert.Equal(t, ErrorTransaction, s.Snapshot().Error.Kind)
}

func TestSessionErrorClearedBySuccess(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(0), nil)
	m.On("SelectWinner", mock.Anything, adminAddr).Return(nil)

	s := newTestSession(t, m, adminAddr, GatingEnabled)
	s.Load(context.Background())
	require.NotNil(t, s.Enter(context.Background()))
	require.Nil(t, s.SelectWinner(context.Background()))
	assert.True(t, s.Snapshot().Error.None())
}

func TestSessionGatingDisabled(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	m.On("Participants", mock.Anything).Return([]types.Account{adminAddr}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(5e15), nil)
	m.On("Participate", mock.Anything, adminAddr, mock.Anything).Return(nil)

	s := newTestSession(t, m, adminAddr, GatingDisabled)
	s.Load(context.Background())
	//不做本地检查, 交由合约决定
	require.Nil(t, s.Enter(context.Background()))
	m.AssertNumberOfCalls(t, "Participate", 1)

	p := &mocks.Contract{}
	p.On("Admin", mock.Anything).Return(adminAddr, nil)
	p.On("SelectWinner", mock.Anything, userAddr).Return(errors.New("only admin"))
	ps := newTestSession(t, p, userAddr, GatingDisabled)
	ps.ResolveRole(context.Background())
	err := ps.SelectWinner(context.Background())
	assert.True(t, IsTransactionFailure(err))
	assert.Equal(t, types.MsgTransactionFailed, ps.Snapshot().Error.Message)
}

func TestSessionRoleReadFailureDefaultsToParticipant(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return("", errors.New("dial tcp: connection refused"))
	m.On("Participants", mock.Anything).Return([]types.Account{}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(0), nil)

	s := newTestSession(t, m, adminAddr, GatingEnabled)
	snap := s.Load(context.Background())
	assert.Equal(t, types.RoleParticipant, snap.Role)
	assert.True(t, snap.Error.None())

	err := s.SelectWinner(context.Background())
	assert.True(t, errors.Is(err, types.ErrOnlyAdminSelect))
	m.AssertNotCalled(t, "SelectWinner", mock.Anything, mock.Anything)
}

func TestSessionResolveRoleAgain(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Admin", mock.Anything).Return(otherAddr, nil).Once()
	m.On("Admin", mock.Anything).Return(userAddr, nil).Once()

	s := newTestSession(t, m, userAddr, GatingEnabled)
	assert.Equal(t, types.RoleParticipant, s.ResolveRole(context.Background()))
	assert.Equal(t, types.RoleAdministrator, s.ResolveRole(context.Background()))
	assert.Equal(t, types.RoleAdministrator, s.Snapshot().Role)
}

func TestSessionReadFailureKeepsSnapshot(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr}, nil).Once()
	m.On("Participants", mock.Anything).Return(nil, errors.New("timeout")).Once()
	m.On("Balance", mock.Anything).Return(big.NewInt(5e15), nil).Once()
	m.On("Balance", mock.Anything).Return(nil, errors.New("timeout")).Once()

	s := newTestSession(t, m, userAddr, GatingEnabled)
	first := s.Refresh(context.Background())
	second := s.Refresh(context.Background())
	assert.Equal(t, first, second)
	assert.True(t, second.Error.None())
	assert.Equal(t, int64(1), s.recorder.Count("read.balance", "fail"))
}

func TestSessionRefreshIdempotent(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr, otherAddr}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(1e16), nil)

	s := newTestSession(t, m, userAddr, GatingEnabled)
	first := s.Refresh(context.Background())
	second := s.Refresh(context.Background())
	assert.Equal(t, first, second)
	assert.Equal(t, "0.01", second.Balance.Ether)
}

func TestSessionDoubleSubmit(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	m := &mocks.Contract{}
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr}, nil)
	m.On("Participate", mock.Anything, userAddr, mock.Anything).Run(func(args mock.Arguments) {
		close(started)
		<-release
	}).Return(nil)

	s := newTestSession(t, m, userAddr, GatingEnabled)
	done := make(chan error, 1)
	go func() {
		done <- s.Enter(context.Background())
	}()

	select {
	case <-started:
	case <-time.After(5 * time.Second):
		t.Fatal("participate not called")
	}
	assert.True(t, s.Snapshot().EnterPending)
	err := s.Enter(context.Background())
	assert.Equal(t, types.ErrActionPending, pkgerr.Cause(err))
	assert.Equal(t, int64(1), s.recorder.Count("enter", "pending"))

	//其它操作不受影响
	m.On("Admin", mock.Anything).Return(adminAddr, nil)
	assert.Equal(t, types.RoleParticipant, s.ResolveRole(context.Background()))

	close(release)
	assert.Nil(t, <-done)
	assert.False(t, s.Snapshot().EnterPending)
	m.AssertNumberOfCalls(t, "Participate", 1)

	//恢复 Idle 之后可以再次触发
	m.ExpectedCalls = nil
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr}, nil)
	m.On("Participate", mock.Anything, userAddr, mock.Anything).Return(nil)
	assert.Nil(t, s.Enter(context.Background()))
}

func TestSnapshotIsCopy(t *testing.T) {
	m := &mocks.Contract{}
	m.On("Participants", mock.Anything).Return([]types.Account{userAddr}, nil)
	m.On("Balance", mock.Anything).Return(big.NewInt(5e15), nil)

	s := newTestSession(t, m, userAddr, GatingEnabled)
	snap := s.Refresh(context.Background())
	snap.Participants[0] = "mutated"
	snap.Balance.Wei.SetInt64(0)
	again := s.Snapshot()
	assert.Equal(t, userAddr, again.Participants[0])
	assert.Equal(t, int64(5e15), again.Balance.Wei.Int64())
}
