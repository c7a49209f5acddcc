package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/obridge/eventlog"
	"github.com/0xPolygon/obridge/rpc/types"
	"github.com/0xPolygon/obridge/statecommitment"
	"github.com/ethereum/go-ethereum/common"
)

type CommitmentClientInterface interface {
	Batch(batchID uint64) (*types.Batch, error)
	StateRoot(batchID uint64) (common.Hash, error)
	IsFinalized(batchID uint64) (bool, error)
	BatchStatus(batchID uint64) (statecommitment.Status, error)
	LastBatchID() (uint64, error)
	CommitmentEvents(fromID, limit uint64) ([]eventlog.Event, error)
	FinalizeBatch(caller common.Address, batchID uint64) error
}

func (c *Client) Batch(batchID uint64) (*types.Batch, error) {
	response, err := rpc.JSONRPCCall(c.url, "commitment_batch", batchID)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result types.Batch
	return &result, json.Unmarshal(response.Result, &result)
}

func (c *Client) StateRoot(batchID uint64) (common.Hash, error) {
	response, err := rpc.JSONRPCCall(c.url, "commitment_stateRoot", batchID)
	if err != nil {
		return common.Hash{}, err
	}
	if response.Error != nil {
		return common.Hash{}, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result common.Hash
	return result, json.Unmarshal(response.Result, &result)
}

func (c *Client) IsFinalized(batchID uint64) (bool, error) {
	response, err := rpc.JSONRPCCall(c.url, "commitment_isFinalized", batchID)
	if err != nil {
		return false, err
	}
	if response.Error != nil {
		return false, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result bool
	return result, json.Unmarshal(response.Result, &result)
}

func (c *Client) BatchStatus(batchID uint64) (statecommitment.Status, error) {
	response, err := rpc.JSONRPCCall(c.url, "commitment_status", batchID)
	if err != nil {
		return statecommitment.StatusUnknown, err
	}
	if response.Error != nil {
		return statecommitment.StatusUnknown, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result statecommitment.Status
	return result, json.Unmarshal(response.Result, &result)
}

func (c *Client) LastBatchID() (uint64, error) {
	response, err := rpc.JSONRPCCall(c.url, "commitment_lastBatchID")
	if err != nil {
		return 0, err
	}
	if response.Error != nil {
		return 0, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result uint64
	return result, json.Unmarshal(response.Result, &result)
}

func (c *Client) CommitmentEvents(fromID, limit uint64) ([]eventlog.Event, error) {
	response, err := rpc.JSONRPCCall(c.url, "commitment_events", fromID, limit)
	if err != nil {
		return nil, err
	}
	if response.Error != nil {
		return nil, fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	var result []eventlog.Event
	return result, json.Unmarshal(response.Result, &result)
}

// FinalizeBatch asks the state commitment chain to finalize a batch whose delay has passed
func (c *Client) FinalizeBatch(caller common.Address, batchID uint64) error {
	response, err := rpc.JSONRPCCall(c.url, "commitment_finalizeBatch", caller, batchID)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	return nil
}
