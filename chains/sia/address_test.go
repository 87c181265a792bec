package sia

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testHash() [UnlockHashSize]byte {
	var hash [UnlockHashSize]byte
	for i := range hash {
		hash[i] = byte(i * 7)
	}
	return hash
}

func TestAddressRoundTrip(t *testing.T) {
	hash := testHash()
	address := AddressFromHash(hash)
	require.Len(t, address, AddressLength)

	parsed, err := ParseAddress(address)
	require.NoError(t, err)
	assert.Equal(t, hash, parsed)
	assert.NoError(t, ValidateAddress(address))
}

func TestValidateAddressRejects(t *testing.T) {
	valid := AddressFromHash(testHash())

	// flip the last checksum nibble
	last := valid[len(valid)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	badChecksum := valid[:len(valid)-1] + string(flipped)

	tests := []struct {
		name    string
		address string
		errMsg  string
	}{
		{name: "empty", address: "", errMsg: "invalid address length"},
		{name: "truncated", address: valid[:AddressLength-2], errMsg: "invalid address length"},
		{name: "not hex", address: strings.Repeat("z", AddressLength), errMsg: "invalid address encoding"},
		{name: "bad checksum", address: badChecksum, errMsg: "invalid address checksum"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
