// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package gateway

import "github.com/edgeai-labs/edgeledger/edge"

// Authority approves a value transfer out of an address. It is either a
// signing caller vouched for by the runtime, or a record acting through
// the same seed material its address was derived from. No secret is
// ever carried; presenting the seeds is the proof of authority.
type Authority interface {
	Address() edge.Address
}

type signerAuthority struct {
	addr edge.Address
}

func (a signerAuthority) Address() edge.Address { return a.addr }

// Signer returns the authority of an external caller whose signature
// the host runtime has already verified.
func Signer(addr edge.Address) Authority {
	return signerAuthority{addr}
}

type derivedAuthority struct {
	tag  string
	keys [][]byte
}

func (a derivedAuthority) Address() edge.Address {
	addr, _ := edge.DeriveAddress(a.tag, a.keys...)
	return addr
}

// Derived returns the authority of a record, reconstructed from the
// seed material of its derived address.
func Derived(tag string, keys ...[]byte) Authority {
	return derivedAuthority{tag, keys}
}
