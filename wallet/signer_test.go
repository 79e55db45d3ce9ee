// Copyright Fuzamei Corp. 2018 All Rights Reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"context"
	"encoding/hex"
	"io/ioutil"
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/33cn/lottery/types"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var chainID = big.NewInt(1337)

func TestKeySigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.Nil(t, err)
	addr := crypto.PubkeyToAddress(key.PublicKey)

	signer, err := NewKeySigner("0x"+hex.EncodeToString(crypto.FromECDSA(key)), chainID)
	require.Nil(t, err)
	assert.Equal(t, addr.Hex(), signer.Account())

	ctx := context.Background()
	opts, err := signer.TransactOpts(ctx)
	require.Nil(t, err)
	assert.Equal(t, ctx, opts.Context)
	opts.Value = big.NewInt(types.EntryFeeWei)

	//副本修改不影响下一次
	again, err := signer.TransactOpts(ctx)
	require.Nil(t, err)
	assert.Nil(t, again.Value)

	to := common.HexToAddress("0xa259a7B95f7FF9515095a5DB39C5E45C0a9947c5")
	tx := ethtypes.NewTx(&ethtypes.LegacyTx{Nonce: 1, Gas: 1e5, GasPrice: big.NewInt(1e9), To: &to, Value: opts.Value})
	signed, err := opts.Signer(opts.From, tx)
	require.Nil(t, err)
	sender, err := ethtypes.Sender(ethtypes.LatestSignerForChainID(chainID), signed)
	require.Nil(t, err)
	assert.Equal(t, addr, sender)
}

func TestKeySignerBadKey(t *testing.T) {
	_, err := NewKeySigner("zz", chainID)
	assert.NotNil(t, err)
}

func TestKeyStoreSigner(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.Nil(t, err)
	k := &keystore.Key{
		Id:         uuid.New(),
		Address:    crypto.PubkeyToAddress(key.PublicKey),
		PrivateKey: key,
	}
	keyjson, err := keystore.EncryptKey(k, "secret", keystore.LightScryptN, keystore.LightScryptP)
	require.Nil(t, err)

	signer, err := NewKeyStoreSigner(bytes.NewReader(keyjson), "secret", chainID)
	require.Nil(t, err)
	assert.Equal(t, k.Address.Hex(), signer.Account())

	_, err = NewKeyStoreSigner(bytes.NewReader(keyjson), "wrong", chainID)
	assert.NotNil(t, err)

	dir, err := ioutil.TempDir("", "lottery-keystore")
	require.Nil(t, err)
	defer os.RemoveAll(dir)
	file := filepath.Join(dir, "key.json")
	require.Nil(t, ioutil.WriteFile(file, keyjson, 0600))

	signer, err = NewSigner(&types.Wallet{KeyStoreFile: file, Password: "secret"}, chainID)
	require.Nil(t, err)
	assert.Equal(t, k.Address.Hex(), signer.Account())
}

func TestNewSigner(t *testing.T) {
	_, err := NewSigner(nil, chainID)
	assert.Equal(t, types.ErrNoSigner, err)
	_, err = NewSigner(&types.Wallet{Account: "0x00000000000000000000000000000000000000aa"}, chainID)
	assert.Equal(t, types.ErrNoSigner, err)

	key, err := crypto.GenerateKey()
	require.Nil(t, err)
	hexKey := hex.EncodeToString(crypto.FromECDSA(key))
	addr := crypto.PubkeyToAddress(key.PublicKey)

	signer, err := NewSigner(&types.Wallet{PrivateKey: hexKey}, chainID)
	require.Nil(t, err)
	assert.Equal(t, addr.Hex(), signer.Account())

	//配置地址大小写不同也能匹配
	lower := "0x" + hex.EncodeToString(addr.Bytes())
	_, err = NewSigner(&types.Wallet{PrivateKey: hexKey, Account: lower}, chainID)
	assert.Nil(t, err)

	_, err = NewSigner(&types.Wallet{PrivateKey: hexKey, Account: "0x00000000000000000000000000000000000000aa"}, chainID)
	assert.Equal(t, types.ErrSignerMismatch, errors.Cause(err))

	_, err = NewSigner(&types.Wallet{KeyStoreFile: "testdata/not_exist.json"}, chainID)
	assert.NotNil(t, err)
}
