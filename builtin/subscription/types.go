// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package subscription

import (
	"errors"

	"github.com/ethereum/go-ethereum/rlp"

	"github.com/edgeai-labs/edgeledger/edge"
	"github.com/edgeai-labs/edgeledger/state"
)

// record discriminator
const recordTag = 0x02

// PaymentMethod selects the asset a subscription was paid with.
type PaymentMethod uint8

const (
	PayNative PaymentMethod = iota
	PayStable
)

func (m PaymentMethod) String() string {
	switch m {
	case PayNative:
		return "native"
	case PayStable:
		return "stable"
	default:
		return "unknown"
	}
}

// Subscription is the per-subscriber record. It is created on first
// subscribe and reused in place forever after; lapsing is purely
// time-based.
type Subscription struct {
	User      edge.Address  // the subscriber, key component of the derived address
	ExpiresAt uint64        // unix seconds
	Method    PaymentMethod // asset of the last payment
	Proof     uint8         // proof byte of the derived address
}

var (
	_ state.StorageEncoder = (*Subscription)(nil)
	_ state.StorageDecoder = (*Subscription)(nil)
)

// Encode implements state.StorageEncoder.
func (s *Subscription) Encode() ([]byte, error) {
	if s.IsEmpty() {
		return nil, nil
	}
	body, err := rlp.EncodeToBytes(s)
	if err != nil {
		return nil, err
	}
	return append([]byte{recordTag}, body...), nil
}

// Decode implements state.StorageDecoder.
func (s *Subscription) Decode(data []byte) error {
	if len(data) == 0 {
		*s = Subscription{}
		return nil
	}
	if data[0] != recordTag {
		return errors.New("bad subscription record tag")
	}
	return rlp.DecodeBytes(data[1:], s)
}

// IsEmpty returns whether the record can be treated as not created.
func (s *Subscription) IsEmpty() bool {
	return s.User.IsZero()
}

// IsActive returns whether the subscription covers the given time.
func (s *Subscription) IsActive(now uint64) bool {
	return now < s.ExpiresAt
}
