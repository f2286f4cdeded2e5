// Copyright (c) 2025 The EdgeAI developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package state

// StorageEncoder encodes a value into raw storage bytes.
// Encoding the type's empty value must yield nil, so the entry can be
// reclaimed from storage.
type StorageEncoder interface {
	Encode() ([]byte, error)
}

// StorageDecoder decodes raw storage bytes into a value.
// Decoding empty data must restore the type's empty value.
type StorageDecoder interface {
	Decode([]byte) error
}
