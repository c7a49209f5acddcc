package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/registry"
	"github.com/0xPolygon/obridge/rpc/types"
	"github.com/ethereum/go-ethereum/common"
)

type BridgeClientInterface interface {
	Nonces() (types.Nonces, error)
	WithdrawalID(nonce uint64) (common.Hash, error)
	WithdrawalStatus(withdrawalID common.Hash) (*types.WithdrawalStatus, error)
	TokenPairs(network string) ([]registry.TokenPair, error)
	BridgeEvents(network string, fromID, limit uint64) ([]eventlog.Event, error)
	FinalizeWithdrawal(caller common.Address, withdrawalID common.Hash) error
}

// Nonces returns the nonces the next deposit and withdrawal will carry
func (c *Client) Nonces() (types.Nonces, error) {
	response, err := rpc.JSONRPCCall(c.url, "bridge_nonces")
	if err != nil {
		return types.Nonces{}, err
	}
	if response.Error != nil {
		return types.Nonces{}, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result types.Nonces
	return result, json.Unmarshal(response.Result, &result)
}

// WithdrawalID returns the id under which the L2 withdrawal with the given nonce is registered on L1
func (c *Client) WithdrawalID(nonce uint64) (common.Hash, error) {
	response, err := rpc.JSONRPCCall(c.url, "bridge_withdrawalID", nonce)
	if err != nil {
		return common.Hash{}, err
	}
	if response.Error != nil {
		return common.Hash{}, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result common.Hash
	return result, json.Unmarshal(response.Result, &result)
}

// WithdrawalStatus returns the pending entry of a withdrawal, if any, and whether it was finalized.
// This call needs to be done to a client that runs the L1 bridge
func (c *Client) WithdrawalStatus(withdrawalID common.Hash) (*types.WithdrawalStatus, error) {
	response, err := rpc.JSONRPCCall(c.url, "bridge_withdrawalStatus", withdrawalID)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result types.WithdrawalStatus
	return &result, json.Unmarshal(response.Result, &result)
}

// TokenPairs returns the registered asset pairs of network, "l1" or "l2"
func (c *Client) TokenPairs(network string) ([]registry.TokenPair, error) {
	response, err := rpc.JSONRPCCall(c.url, "bridge_tokenPairs", network)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result []registry.TokenPair
	return result, json.Unmarshal(response.Result, &result)
}

// BridgeEvents returns up to limit audit events of network ("l1" or "l2") starting at fromID
func (c *Client) BridgeEvents(network string, fromID, limit uint64) ([]eventlog.Event, error) {
	response, err := rpc.JSONRPCCall(c.url, "bridge_events", network, fromID, limit)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result []eventlog.Event
	return result, json.Unmarshal(response.Result, &result)
}

// FinalizeWithdrawal asks the L1 bridge to release a matured withdrawal
func (c *Client) FinalizeWithdrawal(caller common.Address, withdrawalID common.Hash) error {
	response, err := rpc.JSONRPCCall(c.url, "bridge_finalizeWithdrawal", caller, withdrawalID)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	return nil
}
