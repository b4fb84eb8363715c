//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

// Package zobrist holds the random numbers used to incrementally hash a
// chess position into a single 64 bit key, used as the lookup key for the
// transposition table and for repetition detection.
package zobrist

import (
	. "github.com/Juules32/sisyphus32-sub000/pkg/types"
)

// Key is a zobrist hash key for a chess position. It needs all 64 bits
// for a good distribution across the transposition table.
type Key uint64

// base holds one random number per (piece, square), one per castling
// rights value, one per en passant file and one for the side to move.
// XOR-ing the relevant entries in and out as the position changes keeps
// the key up to date without rehashing the whole board.
type base struct {
	Pieces         [PieceLength][SqLength]Key
	CastlingRights [CastlingRightsLength]Key
	EnPassantFile  [FileLength]Key
	NextPlayer     Key
}

var Base = base{}

func init() {
	r := newRandom(1070372)
	for pc := WP; pc < PieceLength; pc++ {
		for sq := SqA8; sq <= SqH1; sq++ {
			Base.Pieces[pc][sq] = Key(r.rand64())
		}
	}
	for cr := CastlingNone; cr <= CastlingAny; cr++ {
		Base.CastlingRights[cr] = Key(r.rand64())
	}
	for f := FileA; f <= FileH; f++ {
		Base.EnPassantFile[f] = Key(r.rand64())
	}
	Base.NextPlayer = Key(r.rand64())
}

// random is the xorshift64star PRNG Stockfish and the teacher's position
// package both use to seed zobrist tables: 64-bit output, single word of
// state, no warm-up needed.
type random struct {
	s uint64
}

func newRandom(seed uint64) random {
	if seed == 0 {
		panic("zobrist: seed must not be 0")
	}
	return random{seed}
}

func (r *random) rand64() uint64 {
	r.s ^= r.s >> 12
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	return r.s * uint64(2685821657736338717)
}
