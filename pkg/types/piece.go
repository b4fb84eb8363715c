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

package types

import (
	"strings"
)

// Piece is a concrete, colored chess piece. White pieces occupy 0-5 and the
// matching Black piece always sits exactly 6 slots further on, so
// Piece.TypeOf() is a plain modulo and Piece.ColorOf() a plain comparison.
//  WP = 0   BP = 6
//  WN = 1   BN = 7
//  WB = 2   BB = 8
//  WR = 3   BR = 9
//  WQ = 4   BQ = 10
//  WK = 5   BK = 11
//  PieceNone = 12
type Piece int8

// Pieces are a set of constants to represent the different pieces
// of a chess game.
const (
	WP Piece = iota
	WN
	WB
	WR
	WQ
	WK
	BP
	BN
	BB
	BR
	BQ
	BK
	PieceNone
	PieceLength = PieceNone + 1
)

// MakePiece creates the piece given by color and piece type
func MakePiece(c Color, pt PieceType) Piece {
	if pt == PtNone {
		return PieceNone
	}
	return Piece(int(c)*6 + int(pt))
}

// ColorOf returns the color of the given piece. Must not be called on
// PieceNone.
func (p Piece) ColorOf() Color {
	if p >= BP {
		return Black
	}
	return White
}

// TypeOf returns the piece type of the given piece.
func (p Piece) TypeOf() PieceType {
	if p == PieceNone {
		return PtNone
	}
	return PieceType(int(p) % 6)
}

// ValueOf returns a static value for the piece used in material counting.
func (p Piece) ValueOf() Value {
	return p.TypeOf().ValueOf()
}

// IsValid checks if p represents a valid, concrete piece.
func (p Piece) IsValid() bool {
	return p >= WP && p < PieceNone
}

// PieceFromChar returns the Piece corresponding to the given FEN character.
// If s contains not exactly one character or if the character is invalid this
// will return PieceNone
func PieceFromChar(s string) Piece {
	if len(s) != 1 || s == "-" {
		return PieceNone
	}
	index := strings.Index(pieceToString, s)
	if index == -1 {
		return PieceNone
	}
	return Piece(index)
}

// array of FEN string labels for pieces, White upper case, Black lower case
var pieceToString = "PNBRQK" + "pnbrqk" + "-"

// String returns the FEN character for the piece ("-" for PieceNone)
func (p Piece) String() string {
	return string(pieceToString[p])
}

// array of unicode string labels for pieces
var pieceToUnicode = []string{
	"♙", "♘", "♗", "♖", "♕", "♔",
	"♟", "♞", "♝", "♜", "♛", "♚",
	"-",
}

// UniChar returns a unicode glyph for the piece.
func (p Piece) UniChar() string {
	return pieceToUnicode[p]
}
