package sia

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

const (
	// UnlockHashSize is the size of the hash an address commits to
	UnlockHashSize = 32
	// ChecksumSize is the number of checksum bytes appended to the hash
	ChecksumSize = 6
	// AddressLength is the length of a hex encoded address
	AddressLength = 2 * (UnlockHashSize + ChecksumSize)
)

// ValidateAddress checks that address is a well formed hex encoded unlock
// hash with a matching checksum. It does not contact the daemon.
func ValidateAddress(address string) error {
	_, err := ParseAddress(address)
	return err
}

// ParseAddress decodes a hex encoded address and returns its unlock hash
func ParseAddress(address string) ([UnlockHashSize]byte, error) {
	var hash [UnlockHashSize]byte

	if len(address) != AddressLength {
		return hash, fmt.Errorf("invalid address length: got %d chars, expected %d", len(address), AddressLength)
	}

	raw, err := hex.DecodeString(address)
	if err != nil {
		return hash, fmt.Errorf("invalid address encoding: %w", err)
	}

	copy(hash[:], raw[:UnlockHashSize])
	expected := checksum(hash)
	if !bytes.Equal(raw[UnlockHashSize:], expected[:]) {
		return hash, fmt.Errorf("invalid address checksum")
	}

	return hash, nil
}

// AddressFromHash encodes an unlock hash as a hex address with its checksum
func AddressFromHash(hash [UnlockHashSize]byte) string {
	sum := checksum(hash)
	return hex.EncodeToString(hash[:]) + hex.EncodeToString(sum[:])
}

func checksum(hash [UnlockHashSize]byte) [ChecksumSize]byte {
	var sum [ChecksumSize]byte
	full := blake2b.Sum256(hash[:])
	copy(sum[:], full[:ChecksumSize])
	return sum
}
