// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package appconfig

import (
	"errors"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/state"
)

// record discriminator
const recordTag = 0x01

// Config holds the governance parameters of the module. There is
// exactly one instance, stored at the canonical derived address.
type Config struct {
	Admin       edge.Address // the only identity allowed to govern
	FeeWallet   edge.Address // destination of subscription payments
	ValueUnit   edge.Address // identity of the native value-unit asset, zero until bound
	PriceNative uint64       // subscription price in the native asset
	PriceStable uint64       // subscription price in the stable asset
	Duration    uint64       // subscription duration in seconds
	FeeShareBps uint16       // staker share of distributed fees, in basis points
	Proof       uint8        // proof byte of the derived address
}

var (
	_ state.StorageEncoder = (*Config)(nil)
	_ state.StorageDecoder = (*Config)(nil)
)

// Encode implements state.StorageEncoder.
func (c *Config) Encode() ([]byte, error) {
	if c.IsEmpty() {
		return nil, nil
	}
	body, err := rlp.EncodeToBytes(c)
	if err != nil {
		return nil, err
	}
	return append([]byte{recordTag}, body...), nil
}

// Decode implements state.StorageDecoder.
func (c *Config) Decode(data []byte) error {
	if len(data) == 0 {
		*c = Config{}
		return nil
	}
	if data[0] != recordTag {
		return errors.New("bad config record tag")
	}
	return rlp.DecodeBytes(data[1:], c)
}

// IsEmpty returns whether the record can be treated as not created.
func (c *Config) IsEmpty() bool {
	return c.Admin.IsZero()
}
