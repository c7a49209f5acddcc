package rpc

import (
	"context"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/obridge/bridgeerrors"
	"github.com/0xPolygon/obridge/log"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/0xPolygon/obridge/rpc"

	zeroHex = "0x0"

	// maxEventsPerCall caps the events returned by one call of the events endpoints
	maxEventsPerCall = 1000
)

// Error codes of rejected operations, by class
const (
	UnauthorizedErrorCode   = -32010
	PreconditionErrorCode   = -32011
	TransferFailedErrorCode = -32012
	ReplayErrorCode         = -32013
)

// toRPCError keeps the class of a rejection visible to the caller
func toRPCError(op string, err error) rpc.Error {
	code := rpc.DefaultErrorCode
	switch bridgeerrors.Class(err) {
	case bridgeerrors.ErrUnauthorized:
		code = UnauthorizedErrorCode
	case bridgeerrors.ErrPrecondition:
		code = PreconditionErrorCode
	case bridgeerrors.ErrTransferFailed:
		code = TransferFailedErrorCode
	case bridgeerrors.ErrReplay:
		code = ReplayErrorCode
	}
	return rpc.NewRPCError(code, fmt.Sprintf("%s failed: %s", op, err))
}

func countCall(ctx context.Context, logger *log.Logger, meter metric.Meter, name string) {
	c, merr := meter.Int64Counter(name)
	if merr != nil {
		logger.Warnf("failed to create %s counter: %s", name, merr)
		return
	}
	c.Add(ctx, 1)
}

func eventsLimit(limit uint64) uint64 {
	if limit == 0 || limit > maxEventsPerCall {
		return maxEventsPerCall
	}
	return limit
}
