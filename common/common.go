package common

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

// NativeAsset identifies the native value of a domain wherever an asset address is expected
var NativeAsset = common.Address{}

// IsNativeAsset reports whether asset designates the native value
func IsNativeAsset(asset common.Address) bool {
	return asset == NativeAsset
}

// Uint64ToBytes converts a uint64 to a byte slice
func Uint64ToBytes(num uint64) []byte {
	const uint64ByteSize = 8

	bytes := make([]byte, uint64ByteSize)
	binary.BigEndian.PutUint64(bytes, num)

	return bytes
}

// BytesToUint64 converts a byte slice to a uint64
func BytesToUint64(bytes []byte) uint64 {
	return binary.BigEndian.Uint64(bytes)
}

// Uint32ToBytes converts a uint32 to a byte slice in big-endian order
func Uint32ToBytes(num uint32) []byte {
	const uint32ByteSize = 4

	key := make([]byte, uint32ByteSize)
	binary.BigEndian.PutUint32(key, num)

	return key
}

// BytesToUint32 converts a byte slice to a uint32
func BytesToUint32(bytes []byte) uint32 {
	return binary.BigEndian.Uint32(bytes)
}

// CalculateWithdrawalID derives the L1 withdrawal id for the L2 withdrawal intent emitted
// with the given nonce. networkID tags the source domain so two L2s never collide.
func CalculateWithdrawalID(networkID uint32, withdrawalNonce uint64) common.Hash {
	return common.BytesToHash(keccak256.Hash(
		[]byte("withdrawal"),
		Uint32ToBytes(networkID),
		Uint64ToBytes(withdrawalNonce),
	))
}
